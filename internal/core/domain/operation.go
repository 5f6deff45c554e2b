package domain

import (
	"github.com/shopspring/decimal"
)

// Operation is a ledger entry recording money actually moved, created when a
// request is posted. Operations are append-only: a wrong entry is soft-deleted
// and recreated, never edited, so the audit trail stays intact.
type Operation struct {
	OperationID string          `json:"operationID"` // Primary Key (UUID)
	AccountID   string          `json:"accountID"`   // FK -> accounts.account_id
	RequestID   *string         `json:"requestID"`   // Nullable FK; nil for manual adjustments
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Day         int             `json:"day"`
	Deleted     bool            `json:"deleted"` // Soft delete flag
	AuditFields
}

// Period returns the calendar month the operation belongs to.
func (o Operation) Period() Period {
	return Period{Month: o.Month, Year: o.Year}
}
