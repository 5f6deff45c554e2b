package models

import (
	"github.com/shopspring/decimal"
)

// Operation represents a row in the operations table.
type Operation struct {
	OperationID string          `db:"operation_id"`
	AccountID   string          `db:"account_id"`
	RequestID   *string         `db:"request_id"` // Nullable; nil for manual adjustments
	Amount      decimal.Decimal `db:"amount"`
	Month       int             `db:"month"`
	Year        int             `db:"year"`
	Day         int             `db:"day"`
	Deleted     bool            `db:"deleted"`
	AuditFields
}
