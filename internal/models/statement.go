package models

import (
	"github.com/shopspring/decimal"
)

// Statement represents a row in the statements table.
type Statement struct {
	StatementID    string          `db:"statement_id"`
	AccountID      string          `db:"account_id"`
	Month          int             `db:"month"`
	Year           int             `db:"year"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	GainLoss       decimal.Decimal `db:"gain_loss"`
	NetOperations  decimal.Decimal `db:"net_operations"`
	EndBalance     decimal.Decimal `db:"end_balance"`
	Deleted        bool            `db:"deleted"`
	AuditFields
}
