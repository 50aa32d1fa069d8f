package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/application/usecase/recurring"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
	"github.com/wealth-planner/backend/internal/domain/valueobject"
	"github.com/wealth-planner/backend/internal/integration/email/templates"
)

// RunReportNotifier emails operators a summary of materialization runs that had failures.
type RunReportNotifier struct {
	sender     adapter.EmailSender
	renderer   *templates.Renderer
	recipients []string
}

// NewRunReportNotifier creates a new notifier. With no recipients every call is a no-op.
func NewRunReportNotifier(sender adapter.EmailSender, renderer *templates.Renderer, recipients []string) *RunReportNotifier {
	return &RunReportNotifier{
		sender:     sender,
		renderer:   renderer,
		recipients: recipients,
	}
}

// NotifyRun emails the report of a run when at least one entry failed.
func (n *RunReportNotifier) NotifyRun(ctx context.Context, runDate time.Time, output *recurring.ProcessDueInstallmentsOutput) error {
	if output == nil || output.Failed == 0 || len(n.recipients) == 0 {
		return nil
	}

	data := templates.RunReportData{
		RunDate: runDate.Format(valueobject.DateLayout),
		Created: output.Created,
		Skipped: output.Skipped,
		Failed:  output.Failed,
	}
	for _, outcome := range output.Failures() {
		failure := templates.RunReportFailure{
			RecurringEntryID: outcome.RecurringEntryID.String(),
		}
		var recErr *domainerror.RecurringError
		if errors.As(outcome.Err, &recErr) {
			failure.Code = string(recErr.Code)
			failure.Message = recErr.Message
		} else if outcome.Err != nil {
			failure.Message = outcome.Err.Error()
		}
		data.Failures = append(data.Failures, failure)
	}

	rendered, err := n.renderer.Render(templates.RunReportTemplate, data)
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render run report",
			fmt.Errorf("%w: %v", domainerror.ErrTemplateRenderFailed, err),
		)
	}

	messageID, err := n.sender.Send(ctx, adapter.EmailMessage{
		To:      n.recipients,
		Subject: fmt.Sprintf("Recurring entries run %s: %d failed", data.RunDate, data.Failed),
		HTML:    rendered.HTML,
		Text:    rendered.Text,
		Tags: map[string]string{
			"category": "recurring_run_report",
			"run_date": data.RunDate,
		},
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to send run report", "recipients", len(n.recipients), "error", err)
		return err
	}

	slog.InfoContext(ctx, "Run report sent", "recipients", len(n.recipients), "message_id", messageID)
	return nil
}
