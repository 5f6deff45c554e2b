package domain

import (
	"fmt"
	"time"
)

// Period identifies a calendar month. Statements, operations, and trade
// interest rates are all keyed by it.
type Period struct {
	Month int `json:"month"` // 1..12
	Year  int `json:"year"`
}

// NewPeriod validates and builds a Period.
func NewPeriod(month, year int) (Period, error) {
	p := Period{Month: month, Year: year}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// Validate checks that the period describes a real calendar month.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", p.Month)
	}
	if p.Year < 1900 || p.Year > 9999 {
		return fmt.Errorf("year out of range: %d", p.Year)
	}
	return nil
}

// Next returns the following calendar month.
func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Month: 1, Year: p.Year + 1}
	}
	return Period{Month: p.Month + 1, Year: p.Year}
}

// Prev returns the preceding calendar month.
func (p Period) Prev() Period {
	if p.Month == 1 {
		return Period{Month: 12, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}

// Compare returns -1, 0, or 1 depending on chronological order.
func (p Period) Compare(other Period) int {
	switch {
	case p.Year < other.Year:
		return -1
	case p.Year > other.Year:
		return 1
	case p.Month < other.Month:
		return -1
	case p.Month > other.Month:
		return 1
	default:
		return 0
	}
}

// Before reports whether p is chronologically earlier than other.
func (p Period) Before(other Period) bool {
	return p.Compare(other) < 0
}

// After reports whether p is chronologically later than other.
func (p Period) After(other Period) bool {
	return p.Compare(other) > 0
}

// LastDay returns the number of the last day of the month (28..31).
func (p Period) LastDay() int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// String renders the period as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// MaxPeriod returns the later of two periods.
func MaxPeriod(a, b Period) Period {
	if a.Before(b) {
		return b
	}
	return a
}

// PeriodRange returns every period from 'from' to 'to' inclusive, ascending.
// Returns an empty slice when from is after to.
func PeriodRange(from, to Period) []Period {
	var out []Period
	for p := from; !p.After(to); p = p.Next() {
		out = append(out, p)
	}
	return out
}
