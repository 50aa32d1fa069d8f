package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InstallmentGeneratedEvent is emitted after an installment entry has been created.
type InstallmentGeneratedEvent struct {
	RecurringEntryID  uuid.UUID       `json:"recurring_entry_id"`
	EntryID           uuid.UUID       `json:"entry_id"`
	UserID            uuid.UUID       `json:"user_id"`
	Kind              string          `json:"kind"`
	Amount            decimal.Decimal `json:"amount"`
	Date              string          `json:"date"`
	InstallmentNumber int             `json:"installment_number"`
	TotalInstallments int             `json:"total_installments"`
	Completed         bool            `json:"completed"`
	OccurredAt        time.Time       `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing domain events to a broker.
type EventPublisher interface {
	// PublishInstallmentGenerated publishes an installment.generated event.
	PublishInstallmentGenerated(ctx context.Context, event InstallmentGeneratedEvent) error
}
