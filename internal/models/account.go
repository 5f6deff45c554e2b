package models

import (
	"github.com/shopspring/decimal"
)

// AccountRole defines where an account sits in the fund's hierarchy.
type AccountRole string

const (
	Client   AccountRole = "CLIENT"
	Manager  AccountRole = "MANAGER"
	Director AccountRole = "DIRECTOR"
	Admin    AccountRole = "ADMIN"
)

// Account represents a row in the accounts table.
type Account struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	Email          string          `db:"email"`
	PasswordHash   string          `db:"password_hash"` // Never mapped to domain
	Role           AccountRole     `db:"role"`
	ManagerID      *string         `db:"manager_id"` // Nullable self-reference
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	OpeningMonth   int             `db:"opening_month"`
	OpeningYear    int             `db:"opening_year"`
	Deleted        bool            `db:"deleted"`
	AuditFields
}

// AccessGrant represents a row in the access_grants table.
type AccessGrant struct {
	GrantID          string `db:"grant_id"`
	GrantorAccountID string `db:"grantor_account_id"`
	GranteeAccountID string `db:"grantee_account_id"`
	AuditFields
}
