package domain

import (
	"github.com/shopspring/decimal"
)

// AccountRole defines where an account sits in the fund's hierarchy.
type AccountRole string

const (
	RoleClient   AccountRole = "CLIENT"
	RoleManager  AccountRole = "MANAGER"
	RoleDirector AccountRole = "DIRECTOR"
	RoleAdmin    AccountRole = "ADMIN"
)

// CanMutate reports whether the role may perform state-changing operations
// (posting requests, regenerating statements). Clients are read-only actors.
func (r AccountRole) CanMutate() bool {
	switch r {
	case RoleManager, RoleDirector, RoleAdmin:
		return true
	default:
		return false
	}
}

// Account represents a fund participant: a client account holding money, or
// a staff account (manager/director/admin) administering client accounts.
// ManagerID forms a forest: clients point at a manager, managers at a
// director or nothing.
type Account struct {
	AccountID      string          `json:"accountID"` // Primary Key (UUID)
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           AccountRole     `json:"role"`
	ManagerID      *string         `json:"managerID"` // Nullable FK -> accounts.account_id
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpeningMonth   int             `json:"openingMonth"`
	OpeningYear    int             `json:"openingYear"`
	Deleted        bool            `json:"deleted"` // Soft delete flag
	AuditFields
}

// OpeningPeriod returns the first month the account holds a balance.
func (a Account) OpeningPeriod() Period {
	return Period{Month: a.OpeningMonth, Year: a.OpeningYear}
}

// AccessGrant records that one account has delegated read access to another.
// A client granted access to a spouse's account is the typical case.
type AccessGrant struct {
	GrantID          string `json:"grantID"`
	GrantorAccountID string `json:"grantorAccountID"` // Account being shared
	GranteeAccountID string `json:"granteeAccountID"` // Account receiving visibility
	AuditFields
}
