package models

import (
	"github.com/shopspring/decimal"
)

// TradeInterest represents a row in the trade_interest table.
type TradeInterest struct {
	TradeInterestID string          `db:"trade_interest_id"`
	Month           int             `db:"month"`
	Year            int             `db:"year"`
	Rate            decimal.Decimal `db:"rate"`
	Published       bool            `db:"published"`
	AuditFields
}
