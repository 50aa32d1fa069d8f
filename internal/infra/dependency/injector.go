// Package dependency provides dependency injection for the application.
package dependency

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/wealth-planner/backend/config"
	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/application/usecase/asset"
	"github.com/wealth-planner/backend/internal/application/usecase/auth"
	"github.com/wealth-planner/backend/internal/application/usecase/dashboard"
	"github.com/wealth-planner/backend/internal/application/usecase/entry"
	"github.com/wealth-planner/backend/internal/application/usecase/goal"
	"github.com/wealth-planner/backend/internal/application/usecase/recurring"
	infradb "github.com/wealth-planner/backend/internal/infra/db"
	"github.com/wealth-planner/backend/internal/infra/server/router"
	"github.com/wealth-planner/backend/internal/integration/adapters"
	"github.com/wealth-planner/backend/internal/integration/email"
	"github.com/wealth-planner/backend/internal/integration/email/templates"
	"github.com/wealth-planner/backend/internal/integration/entrypoint/controller"
	"github.com/wealth-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/wealth-planner/backend/internal/integration/lock"
	"github.com/wealth-planner/backend/internal/integration/messaging"
	"github.com/wealth-planner/backend/internal/integration/persistence"
	"github.com/wealth-planner/backend/internal/integration/worker"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client // Nil when Redis is not configured
	Router *router.Router

	ProcessDueInstallments *recurring.ProcessDueInstallmentsUseCase
	RecurringWorker        *worker.RecurringWorker

	publisher *messaging.Publisher
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case locks and rate limits stay in process.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	entryRepo := persistence.NewEntryRepository(db)
	recurringRepo := persistence.NewRecurringEntryRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	assetRepo := persistence.NewAssetRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Security.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	var locker adapter.Locker = lock.NewLocalLocker()
	if redisClient != nil {
		locker = lock.NewRedisLocker(redisClient)
	}

	var publisher *messaging.Publisher
	var eventPublisher adapter.EventPublisher
	if cfg.AMQP.Enabled() {
		p, err := messaging.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			// Events are best effort, so a missing broker only disables them.
			slog.Warn("Event publishing disabled", "error", err)
		} else {
			publisher = p
			eventPublisher = p
		}
	}

	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, run reports are not delivered")
		sender = email.NewMockEmailSender()
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create entry use cases
	listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo)
	createEntryUseCase := entry.NewCreateEntryUseCase(entryRepo)
	updateEntryUseCase := entry.NewUpdateEntryUseCase(entryRepo)
	deleteEntryUseCase := entry.NewDeleteEntryUseCase(entryRepo)

	// Create recurring entry use cases
	listRecurringUseCase := recurring.NewListRecurringEntriesUseCase(recurringRepo)
	createRecurringUseCase := recurring.NewCreateRecurringEntryUseCase(recurringRepo)
	cancelRecurringUseCase := recurring.NewCancelRecurringEntryUseCase(recurringRepo)
	processUseCase := recurring.NewProcessDueInstallmentsUseCase(
		recurringRepo,
		entryRepo,
		locker,
		eventPublisher,
		recurring.ProcessOptions{
			Concurrency: cfg.Recurring.Concurrency,
			LockTTL:     cfg.Recurring.LockTTL,
		},
	)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create asset use cases
	listAssetsUseCase := asset.NewListAssetsUseCase(assetRepo)
	createAssetUseCase := asset.NewCreateAssetUseCase(assetRepo)
	updateAssetUseCase := asset.NewUpdateAssetUseCase(assetRepo)
	deleteAssetUseCase := asset.NewDeleteAssetUseCase(assetRepo)

	// Create dashboard use cases
	dashboardOpts := dashboard.Options{
		LookbackMonths:  cfg.Analytics.LookbackMonths,
		DefaultCurrency: cfg.Analytics.DefaultCurrency,
	}
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(entryRepo, goalRepo, assetRepo, userRepo, dashboardOpts)
	getAnalyticsUseCase := dashboard.NewGetAnalyticsUseCase(entryRepo)

	// Create the scheduled worker
	notifier := email.NewRunReportNotifier(sender, renderer, cfg.Email.OperatorRecipients)
	recurringWorker, err := worker.NewRecurringWorker(processUseCase, notifier, worker.Config{
		Schedule:   cfg.Recurring.Schedule,
		RunTimeout: cfg.Recurring.RunTimeout,
	})
	if err != nil {
		return nil, err
	}

	// Create controllers
	redisDep := controller.Dependency{Name: "redis", Optional: true}
	if redisClient != nil {
		redisDep.Check = infradb.RedisHealthCheck(redisClient)
	}
	healthController := controller.NewHealthController(
		controller.Dependency{Name: "database", Check: infradb.PostgresHealthCheck(db)},
		redisDep,
	)

	authController := controller.NewAuthController(registerUseCase, loginUseCase)

	entryController := controller.NewEntryController(
		listEntriesUseCase,
		createEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
	)

	recurringEntryController := controller.NewRecurringEntryController(
		listRecurringUseCase,
		createRecurringUseCase,
		cancelRecurringUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	assetController := controller.NewAssetController(
		listAssetsUseCase,
		createAssetUseCase,
		updateAssetUseCase,
		deleteAssetUseCase,
	)

	dashboardController := controller.NewDashboardController(getDashboardUseCase, getAnalyticsUseCase)

	// Create middleware
	var rateLimitStore redis.UniversalClient
	if redisClient != nil {
		rateLimitStore = redisClient
	}
	loginRateLimiter := middleware.NewRateLimiter(
		cfg.Security.LoginMaxAttempts,
		cfg.Security.LoginAttemptWindow,
		rateLimitStore,
	)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		entryController,
		recurringEntryController,
		goalController,
		assetController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:                 cfg,
		DB:                     db,
		Redis:                  redisClient,
		Router:                 r,
		ProcessDueInstallments: processUseCase,
		RecurringWorker:        recurringWorker,
		publisher:              publisher,
	}, nil
}

// Close releases the broker connection and the Redis client.
func (i *Injector) Close() error {
	var errs []error
	if i.publisher != nil {
		errs = append(errs, i.publisher.Close())
	}
	if i.Redis != nil {
		errs = append(errs, i.Redis.Close())
	}
	return errors.Join(errs...)
}
