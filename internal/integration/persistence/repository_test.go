package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
	"github.com/wealth-planner/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEntryRepository_InstallmentUniqueness(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	recurringRepo := NewRecurringEntryRepository(db)
	entryRepo := NewEntryRepository(db)

	userID := uuid.New()
	recurring := entity.NewRecurringEntry(userID, entity.EntryKindExpense, "housing", "Rent", decimal.NewFromInt(100), day(2024, 1, 15), 3)
	if err := recurringRepo.Create(ctx, recurring); err != nil {
		t.Fatalf("create recurring: %v", err)
	}

	first := entity.NewInstallmentEntry(recurring, day(2024, 1, 15))
	if err := entryRepo.Create(ctx, first); err != nil {
		t.Fatalf("create installment: %v", err)
	}

	exists, err := entryRepo.ExistsInstallment(ctx, recurring.ID, day(2024, 1, 15))
	if err != nil || !exists {
		t.Fatalf("ExistsInstallment() = %v, %v; want true", exists, err)
	}
	exists, err = entryRepo.ExistsInstallment(ctx, recurring.ID, day(2024, 2, 15))
	if err != nil || exists {
		t.Fatalf("ExistsInstallment(next month) = %v, %v; want false", exists, err)
	}

	duplicate := entity.NewInstallmentEntry(recurring, day(2024, 1, 15))
	if err := entryRepo.Create(ctx, duplicate); !errors.Is(err, domainerror.ErrDuplicateInstallment) {
		t.Errorf("duplicate Create() error = %v, want ErrDuplicateInstallment", err)
	}

	// Manual entries never collide with each other.
	for i := 0; i < 2; i++ {
		manual := entity.NewEntry(userID, entity.EntryKindExpense, "housing", decimal.NewFromInt(10), day(2024, 1, 15), "Repair")
		if err := entryRepo.Create(ctx, manual); err != nil {
			t.Fatalf("manual Create() error = %v", err)
		}
	}
}

func TestEntryRepository_FindByFilter(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewEntryRepository(db)

	userID := uuid.New()
	otherID := uuid.New()
	seed := []*entity.Entry{
		entity.NewEntry(userID, entity.EntryKindIncome, "salary", decimal.NewFromInt(5000), day(2024, 3, 1), "Salary"),
		entity.NewEntry(userID, entity.EntryKindExpense, "food", decimal.NewFromInt(300), day(2024, 3, 10), "Groceries"),
		entity.NewEntry(userID, entity.EntryKindExpense, "food", decimal.NewFromInt(200), day(2024, 3, 31), "Restaurant"),
		entity.NewEntry(userID, entity.EntryKindExpense, "transport", decimal.NewFromInt(100), day(2024, 4, 1), "Fuel"),
		entity.NewEntry(otherID, entity.EntryKindExpense, "food", decimal.NewFromInt(999), day(2024, 3, 10), "Other user"),
	}
	for _, e := range seed {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	start, end := day(2024, 3, 1), day(2024, 3, 31)
	expense := entity.EntryKindExpense

	tests := []struct {
		name   string
		filter adapter.EntryFilter
		want   []string
	}{
		{name: "all entries of the owner newest first", filter: adapter.EntryFilter{UserID: userID}, want: []string{"Fuel", "Restaurant", "Groceries", "Salary"}},
		{name: "inclusive date range", filter: adapter.EntryFilter{UserID: userID, StartDate: &start, EndDate: &end}, want: []string{"Restaurant", "Groceries", "Salary"}},
		{name: "kind and category", filter: adapter.EntryFilter{UserID: userID, Kind: &expense, Category: "food"}, want: []string{"Restaurant", "Groceries"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindByFilter(ctx, tt.filter)
			if err != nil {
				t.Fatalf("FindByFilter() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("FindByFilter() returned %d entries, want %d", len(got), len(tt.want))
			}
			for i, e := range got {
				if e.Description != tt.want[i] {
					t.Errorf("entry %d = %q, want %q", i, e.Description, tt.want[i])
				}
			}
		})
	}
}

func TestRecurringEntryRepository_Progress(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRecurringEntryRepository(db)

	userID := uuid.New()
	first := entity.NewRecurringEntry(userID, entity.EntryKindIncome, "salary", "Salary", decimal.NewFromInt(5000), day(2024, 1, 5), 2)
	second := entity.NewRecurringEntry(userID, entity.EntryKindExpense, "housing", "Rent", decimal.NewFromInt(1200), day(2024, 1, 10), 12)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	for _, r := range []*entity.RecurringEntry{first, second} {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	first.RecordInstallment()
	first.RecordInstallment()
	if err := repo.UpdateProgress(ctx, first); err != nil {
		t.Fatalf("UpdateProgress() error = %v", err)
	}

	stored, err := repo.FindByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if stored.GeneratedInstallments != 2 || stored.Active {
		t.Errorf("stored progress = %d active=%v, want 2 inactive", stored.GeneratedInstallments, stored.Active)
	}

	active, err := repo.FindActive(ctx)
	if err != nil {
		t.Fatalf("FindActive() error = %v", err)
	}
	if len(active) != 1 || active[0].ID != second.ID {
		t.Errorf("FindActive() = %v, want only the rent definition", active)
	}
	if !active[0].StartDate.Equal(day(2024, 1, 10)) || !active[0].Amount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("round trip = %s %s", active[0].StartDate, active[0].Amount)
	}

	missing := entity.NewRecurringEntry(userID, entity.EntryKindIncome, "x", "Missing", decimal.NewFromInt(1), day(2024, 1, 1), 1)
	if err := repo.UpdateProgress(ctx, missing); !errors.Is(err, domainerror.ErrRecurringEntryNotFound) {
		t.Errorf("UpdateProgress(missing) error = %v", err)
	}
}

func TestRecurringEntryRepository_Deactivate(t *testing.T) {
	ctx := context.Background()
	repo := NewRecurringEntryRepository(newTestDB(t))

	rent := entity.NewRecurringEntry(uuid.New(), entity.EntryKindExpense, "housing", "Rent", decimal.NewFromInt(1200), day(2024, 1, 10), 12)
	if err := repo.Create(ctx, rent); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Progress stored after the caller read the row must survive the cancel.
	stale := *rent
	rent.RecordInstallment()
	rent.RecordInstallment()
	if err := repo.UpdateProgress(ctx, rent); err != nil {
		t.Fatalf("UpdateProgress() error = %v", err)
	}
	if err := repo.Deactivate(ctx, stale.ID); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}

	stored, err := repo.FindByID(ctx, rent.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if stored.Active || stored.GeneratedInstallments != 2 {
		t.Errorf("stored = active=%v generated=%d, want inactive with 2", stored.Active, stored.GeneratedInstallments)
	}

	if err := repo.Deactivate(ctx, uuid.New()); !errors.Is(err, domainerror.ErrRecurringEntryNotFound) {
		t.Errorf("Deactivate(missing) error = %v", err)
	}
}

func TestGoalAndAssetRepositories(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	goalRepo := NewGoalRepository(db)
	assetRepo := NewAssetRepository(db)
	userID := uuid.New()

	low := entity.NewGoal(userID, "Travel", decimal.NewFromInt(5000), decimal.Zero, 2, day(2025, 1, 1), "leisure", "plane")
	high := entity.NewGoal(userID, "Emergency reserve", decimal.NewFromInt(30000), decimal.NewFromInt(12000), 9, day(2025, 6, 1), "emergency", "shield")
	for _, g := range []*entity.Goal{low, high} {
		if err := goalRepo.Create(ctx, g); err != nil {
			t.Fatalf("create goal: %v", err)
		}
	}

	goals, err := goalRepo.ListByUser(ctx, userID, adapter.GoalFilter{})
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(goals) != 2 || goals[0].ID != high.ID {
		t.Fatalf("goals not ordered by priority: %v", goals)
	}
	if !goals[0].CurrentAmount.Equal(decimal.NewFromInt(12000)) {
		t.Errorf("current amount = %s", goals[0].CurrentAmount)
	}

	completed := entity.GoalStatusCompleted
	if done, _ := goalRepo.ListByUser(ctx, userID, adapter.GoalFilter{Status: &completed}); len(done) != 0 {
		t.Errorf("completed filter returned %d goals", len(done))
	}

	if err := goalRepo.Delete(ctx, uuid.New(), low.ID); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("Delete(foreign owner) error = %v", err)
	}
	if err := goalRepo.Delete(ctx, userID, low.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := goalRepo.FindByID(ctx, low.ID); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("FindByID(deleted) error = %v", err)
	}

	asset := entity.NewAsset(userID, entity.AssetKindInvestment, "Treasury bonds", "", decimal.NewFromInt(20000), entity.AssetLiquidityLiquid,
		map[string]any{entity.MetadataAnnualYield: 11.5})
	if err := assetRepo.Create(ctx, asset); err != nil {
		t.Fatalf("create asset: %v", err)
	}
	stored, err := assetRepo.FindByID(ctx, asset.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	yield, ok := stored.AnnualYield()
	if !ok || !yield.Equal(decimal.NewFromFloat(11.5)) {
		t.Errorf("AnnualYield() after round trip = %s, %v", yield, ok)
	}

	if err := assetRepo.Delete(ctx, userID, asset.ID); err != nil {
		t.Fatalf("Delete(asset) error = %v", err)
	}
	if left, err := assetRepo.ListByUser(ctx, userID); err != nil || len(left) != 0 {
		t.Errorf("ListByUser() after delete = %d, %v", len(left), err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	if err := repo.Create(ctx, entity.NewUser("ana@example.com", "Ana", "hash")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(ctx, entity.NewUser("ana@example.com", "Ana", "hash")); !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
		t.Errorf("duplicate Create() error = %v", err)
	}

	exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
	if err != nil || !exists {
		t.Errorf("ExistsByEmail() = %v, %v", exists, err)
	}
}
