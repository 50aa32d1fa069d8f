// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/wealth-planner/backend/config"
	"github.com/wealth-planner/backend/internal/application/usecase/recurring"
	"github.com/wealth-planner/backend/internal/infra/dependency"
	"github.com/wealth-planner/backend/internal/integration/persistence/model"
	"github.com/wealth-planner/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// suite holds the resources shared by every scenario.
type suite struct {
	db       *mock.Db
	injector *dependency.Injector
	server   *httptest.Server
}

var shared suite

// testContext holds the state of one scenario.
type testContext struct {
	client      *http.Client
	timeMock    *mock.Time
	accessToken string
	variables   map[string]string
	response    *response
	lastRun     *recurring.ProcessDueInstallmentsOutput
}

type response struct {
	status int
	body   any
	raw    []byte
}

// InitializeTestSuite sets up the database, Redis and the API server once.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret
		cfg.Security.BcryptCost = bcrypt.MinCost
		cfg.Security.LoginMaxAttempts = 1000
		cfg.Email.ResendAPIKey = ""
		cfg.Email.OperatorRecipients = nil
		cfg.AMQP.URL = ""

		shared.db = mock.NewDb(model.All())
		injector, err := dependency.NewInjector(cfg, shared.db.DbConn, mock.NewRedis())
		if err != nil {
			panic(fmt.Sprintf("failed to wire dependencies: %v", err))
		}
		shared.injector = injector
		shared.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})

	ctx.AfterSuite(func() {
		if shared.server != nil {
			shared.server.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:    &http.Client{Timeout: 10 * time.Second},
		timeMock:  mock.NewTime(),
		variables: map[string]string{},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := shared.db.ClearDB(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am registered as "([^"]*)"$`, test.iAmRegisteredAs)
	ctx.Given(`^the date is "([^"]*)"$`, test.theDateIs)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^the recurring worker runs$`, test.theRecurringWorkerRuns)

	// Assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^I remember the response field "([^"]*)" as "([^"]*)"$`, test.iRememberTheResponseFieldAs)
	ctx.Then(`^the run should report (\d+) created, (\d+) skipped and (\d+) failed$`, test.theRunShouldReport)
	ctx.Then(`^the table "([^"]*)" should contain (\d+) rows$`, test.theTableShouldContainRows)
}
