package recurring

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

type fakeRecurringRepo struct {
	mu          sync.Mutex
	items       map[uuid.UUID]*entity.RecurringEntry
	order       []uuid.UUID
	progressErr map[uuid.UUID]error
}

func newFakeRecurringRepo(defs ...*entity.RecurringEntry) *fakeRecurringRepo {
	r := &fakeRecurringRepo{
		items:       map[uuid.UUID]*entity.RecurringEntry{},
		progressErr: map[uuid.UUID]error{},
	}
	for _, d := range defs {
		_ = r.Create(context.Background(), d)
	}
	return r
}

func (r *fakeRecurringRepo) Create(_ context.Context, rec *entity.RecurringEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *rec
	r.items[rec.ID] = &clone
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *fakeRecurringRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RecurringEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrRecurringEntryNotFound
	}
	clone := *rec
	return &clone, nil
}

func (r *fakeRecurringRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.RecurringEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.RecurringEntry
	for _, id := range r.order {
		if rec := r.items[id]; rec.UserID == userID {
			clone := *rec
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeRecurringRepo) FindActive(_ context.Context) ([]*entity.RecurringEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.RecurringEntry
	for _, id := range r.order {
		if rec := r.items[id]; rec.Active {
			clone := *rec
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeRecurringRepo) UpdateProgress(_ context.Context, rec *entity.RecurringEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.progressErr[rec.ID]; err != nil {
		return err
	}
	stored := r.items[rec.ID]
	stored.GeneratedInstallments = rec.GeneratedInstallments
	stored.Active = rec.Active
	return nil
}

func (r *fakeRecurringRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[id]
	if !ok {
		return domainerror.ErrRecurringEntryNotFound
	}
	stored.Active = false
	return nil
}

// advancingRecurringRepo records one installment of every entry right after
// it is read, like a materializer run landing between a read and a write.
type advancingRecurringRepo struct {
	*fakeRecurringRepo
}

func (r advancingRecurringRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringEntry, error) {
	rec, err := r.fakeRecurringRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.items[id].GeneratedInstallments++
	r.mu.Unlock()
	return rec, nil
}

func (r *fakeRecurringRepo) get(id uuid.UUID) entity.RecurringEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.items[id]
}

type fakeEntryRepo struct {
	mu        sync.Mutex
	entries   []*entity.Entry
	createErr map[uuid.UUID]error
	// hideExisting makes ExistsInstallment always report false, as a racing
	// writer would observe before the other insert commits.
	hideExisting bool
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{createErr: map[uuid.UUID]error{}}
}

func (r *fakeEntryRepo) Create(_ context.Context, e *entity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.RecurringEntryID != nil {
		if err := r.createErr[*e.RecurringEntryID]; err != nil {
			return err
		}
		if r.existsLocked(*e.RecurringEntryID, e.Date) {
			return domainerror.ErrDuplicateInstallment
		}
	}
	clone := *e
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *fakeEntryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.ID == id {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domainerror.ErrEntryNotFound
}

func (r *fakeEntryRepo) FindByFilter(_ context.Context, filter adapter.EntryFilter) ([]*entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Entry
	for _, e := range r.entries {
		if e.UserID == filter.UserID {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) ExistsInstallment(_ context.Context, recurringID uuid.UUID, date time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hideExisting {
		return false, nil
	}
	return r.existsLocked(recurringID, date), nil
}

func (r *fakeEntryRepo) existsLocked(recurringID uuid.UUID, date time.Time) bool {
	for _, e := range r.entries {
		if e.RecurringEntryID != nil && *e.RecurringEntryID == recurringID && e.Date.Equal(date) {
			return true
		}
	}
	return false
}

func (r *fakeEntryRepo) Update(_ context.Context, _ *entity.Entry) error { return nil }

func (r *fakeEntryRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

// forDefinition returns the installments of a recurring entry ordered by date.
func (r *fakeEntryRepo) forDefinition(id uuid.UUID) []entity.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Entry
	for _, e := range r.entries {
		if e.RecurringEntryID != nil && *e.RecurringEntryID == id {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (r *fakeEntryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

type fakeLocker struct {
	mu   sync.Mutex
	held map[string]bool
	deny bool
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: map[string]bool{}}
}

func (l *fakeLocker) TryLock(_ context.Context, key string, _ time.Duration) (adapter.Unlocker, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.deny || l.held[key] {
		return nil, false, nil
	}
	l.held[key] = true
	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
		return nil
	}, true, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []adapter.InstallmentGeneratedEvent
	err    error
	onPub  func()
}

func (p *fakePublisher) PublishInstallmentGenerated(_ context.Context, event adapter.InstallmentGeneratedEvent) error {
	p.mu.Lock()
	p.events = append(p.events, event)
	hook := p.onPub
	p.mu.Unlock()
	if hook != nil {
		hook()
	}
	return p.err
}
