package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodedError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantText string
		wantCode string
		sentinel error
	}{
		{
			name:     "wrapped sentinel",
			err:      NewGoalError(ErrCodeGoalNotFound, "goal not found", ErrGoalNotFound),
			wantText: "goal not found: goal not found",
			wantCode: "GOL-010001",
			sentinel: ErrGoalNotFound,
		},
		{
			name:     "message only",
			err:      NewAuthError(ErrCodeRateLimited, "Too many attempts", nil),
			wantText: "Too many attempts",
			wantCode: "AUTH-020003",
		},
		{
			name:     "found through fmt wrapping",
			err:      fmt.Errorf("update: %w", NewAssetError(ErrCodeAssetNotFound, "asset not found", ErrAssetNotFound)),
			wantText: "update: asset not found: asset not found",
			wantCode: "AST-010001",
			sentinel: ErrAssetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantText {
				t.Errorf("Error() = %q, want %q", got, tt.wantText)
			}

			var c interface{ Coded() (string, string) }
			if !errors.As(tt.err, &c) {
				t.Fatal("errors.As did not find a coded error")
			}
			if code, _ := c.Coded(); code != tt.wantCode {
				t.Errorf("code = %q, want %q", code, tt.wantCode)
			}

			if tt.sentinel != nil && !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v) = false", tt.sentinel)
			}
		})
	}
}
