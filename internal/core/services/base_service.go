package services

import (
	"context"
	"log/slog"

	"github.com/clearbrook/fund_admin_app/internal/apperrors"
	portssvc "github.com/clearbrook/fund_admin_app/internal/core/ports/services"
	"github.com/clearbrook/fund_admin_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	AuthScope portssvc.AuthScopeSvcFacade
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// EnsureCanMutate verifies the actor holds a mutating role (Manager,
// Director, Admin). Returns ErrForbidden otherwise, or ErrNotFound when the
// actor does not resolve to a live account.
func (s *BaseService) EnsureCanMutate(ctx context.Context, actorID string) error {
	if s.AuthScope == nil {
		s.LogDebug(ctx, "No authorization scope provided, access granted by default",
			slog.String("actor_id", actorID))
		return nil
	}
	can, err := s.AuthScope.CanMutate(ctx, actorID)
	if err != nil {
		return err
	}
	if !can {
		return apperrors.ErrForbidden
	}
	return nil
}
