package models

import (
	"github.com/shopspring/decimal"
)

// RequestStatus indicates where a money-movement request sits in its lifecycle.
type RequestStatus string

const (
	Pending   RequestStatus = "PENDING"
	Recurring RequestStatus = "RECURRING"
	Approved  RequestStatus = "APPROVED"
	Declined  RequestStatus = "DECLINED"
	Voided    RequestStatus = "VOIDED"
	Deleted   RequestStatus = "DELETED"
)

// Request represents a row in the requests table.
type Request struct {
	RequestID        string          `db:"request_id"`
	AccountID        string          `db:"account_id"`
	Amount           decimal.Decimal `db:"amount"`
	Status           RequestStatus   `db:"status"`
	WireConfirmation *string         `db:"wire_confirmation"` // Nullable
	BankAccountRef   *string         `db:"bank_account_ref"`  // Nullable
	AuditFields
}
