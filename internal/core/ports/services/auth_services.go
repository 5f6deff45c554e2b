package services

import (
	"context"

	"github.com/clearbrook/fund_admin_app/internal/core/domain"
)

// AuthSvcFacade verifies login credentials. Token issuance lives in the
// handler layer; OTP/2FA and password-reset flows are out of scope here.
type AuthSvcFacade interface {
	// Authenticate checks the email/password pair and returns the matching
	// live account. Returns ErrNotFound for unknown email or bad password to
	// avoid leaking which one was wrong.
	Authenticate(ctx context.Context, email string, password string) (*domain.Account, error)
}
