package domain

import (
	"github.com/shopspring/decimal"
)

// TradeInterest is the externally supplied interest figure for one calendar
// month, expressed as a percentage. Statement generation only consumes months
// whose rate has been published.
type TradeInterest struct {
	TradeInterestID string          `json:"tradeInterestID"` // Primary Key (UUID)
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	Rate            decimal.Decimal `json:"rate"` // Percentage, e.g. 5 means 5%
	Published       bool            `json:"published"`
	AuditFields
}

// Period returns the calendar month the rate applies to.
func (t TradeInterest) Period() Period {
	return Period{Month: t.Month, Year: t.Year}
}
