package domain

import (
	"github.com/shopspring/decimal"
)

// Statement is a per-account, per-month balance snapshot. For two
// chronologically adjacent non-deleted statements of the same account the
// opening balance of the later equals the end balance of the earlier.
type Statement struct {
	StatementID    string          `json:"statementID"` // Primary Key (UUID)
	AccountID      string          `json:"accountID"`   // FK -> accounts.account_id
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	GainLoss       decimal.Decimal `json:"gainLoss"`
	NetOperations  decimal.Decimal `json:"netOperations"`
	EndBalance     decimal.Decimal `json:"endBalance"`
	Deleted        bool            `json:"deleted"` // Soft delete flag; regeneration tombstones old rows
	AuditFields
}

// Period returns the calendar month the statement covers.
func (s Statement) Period() Period {
	return Period{Month: s.Month, Year: s.Year}
}
