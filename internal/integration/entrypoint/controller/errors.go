// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/wealth-planner/backend/internal/domain/error"
	"github.com/wealth-planner/backend/internal/integration/entrypoint/dto"
	"github.com/wealth-planner/backend/internal/integration/entrypoint/middleware"
)

// handleError writes the HTTP response for an error returned by a use case.
// Coded domain errors keep their code; anything else is logged and hidden behind a 500.
func handleError(ctx *gin.Context, err error) {
	code, message, ok := codedError(err)
	if !ok {
		slog.ErrorContext(ctx.Request.Context(), "Unhandled request error",
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	status := statusForCode(code)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(ctx.Request.Context(), "Request failed",
			"path", ctx.FullPath(),
			"code", code,
			"error", err,
		)
		message = "An internal error occurred"
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// coded is implemented by every domainerror.CodedError instantiation.
type coded interface {
	Coded() (code, message string)
}

func codedError(err error) (code, message string, ok bool) {
	var c coded
	if !errors.As(err, &c) {
		return "", "", false
	}
	code, message = c.Coded()
	return code, message, true
}

// statusForCode maps an error code to an HTTP status.
func statusForCode(code string) int {
	switch code {
	case string(domainerror.ErrCodeEntryNotFound),
		string(domainerror.ErrCodeRecurringEntryNotFound),
		string(domainerror.ErrCodeGoalNotFound),
		string(domainerror.ErrCodeAssetNotFound):
		return http.StatusNotFound
	case string(domainerror.ErrCodeUnauthorizedEntryAccess),
		string(domainerror.ErrCodeUnauthorizedRecurringAccess),
		string(domainerror.ErrCodeUnauthorizedGoalAccess),
		string(domainerror.ErrCodeUnauthorizedAssetAccess):
		return http.StatusForbidden
	case string(domainerror.ErrCodeEmailExists),
		string(domainerror.ErrCodeRecurringEntryInactive):
		return http.StatusConflict
	case string(domainerror.ErrCodeInvalidCredentials),
		string(domainerror.ErrCodeInvalidToken),
		string(domainerror.ErrCodeExpiredToken),
		string(domainerror.ErrCodeMissingToken):
		return http.StatusUnauthorized
	case string(domainerror.ErrCodeRateLimited):
		return http.StatusTooManyRequests
	}

	// The middle segment of XXX-CCYYYY is the category; 99 marks internal failures.
	if _, rest, ok := strings.Cut(code, "-"); ok && strings.HasPrefix(rest, "99") {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// requireUserID reads the authenticated user, answering 401 when it is missing.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the :id path parameter, answering 400 when it is not a UUID.
func pathID(ctx *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + resource + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// badRequest answers 400 for a request that failed binding.
func badRequest(ctx *gin.Context, code string, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
		Code:  code,
	})
}
