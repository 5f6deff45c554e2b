package domain

import (
	"github.com/shopspring/decimal"
)

// RequestStatus indicates where a money-movement request sits in its lifecycle.
type RequestStatus string

const (
	// StatusPending is a one-shot request awaiting posting.
	StatusPending RequestStatus = "PENDING"
	// StatusRecurring is a standing debit postable once per calendar month.
	StatusRecurring RequestStatus = "RECURRING"
	// StatusApproved means the request was posted and its operation recorded.
	StatusApproved RequestStatus = "APPROVED"
	// StatusDeclined means staff rejected the request.
	StatusDeclined RequestStatus = "DECLINED"
	// StatusVoided means the request was cancelled before resolution.
	StatusVoided RequestStatus = "VOIDED"
	// StatusDeleted is a tombstone. Requests are never physically deleted.
	StatusDeleted RequestStatus = "DELETED"
)

// requestTransitions lists the statuses reachable from each status.
// Voided and Declined are terminal; Deleted is a tombstone set out of band.
var requestTransitions = map[RequestStatus][]RequestStatus{
	StatusPending:   {StatusRecurring, StatusApproved, StatusDeclined, StatusVoided},
	StatusRecurring: {StatusVoided},
	StatusApproved:  {StatusRecurring},
	StatusDeclined:  {},
	StatusVoided:    {},
	StatusDeleted:   {},
}

// CanTransitionTo reports whether the status machine allows moving from s to next.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsPostable reports whether a request in this status may be posted.
func (s RequestStatus) IsPostable() bool {
	return s == StatusPending || s == StatusRecurring
}

// IsTerminal reports whether the status admits no further transitions.
func (s RequestStatus) IsTerminal() bool {
	return len(requestTransitions[s]) == 0
}

// Request is a client instruction to move money in or out of an account.
// Amount is signed: positive is a credit into the fund, negative a debit out.
type Request struct {
	RequestID        string          `json:"requestID"` // Primary Key (UUID)
	AccountID        string          `json:"accountID"` // FK -> accounts.account_id
	Amount           decimal.Decimal `json:"amount"`
	Status           RequestStatus   `json:"status"`
	WireConfirmation *string         `json:"wireConfirmation"` // Nullable wire reference
	BankAccountRef   *string         `json:"bankAccountRef"`   // Nullable external bank account reference
	AuditFields
}

// IsDebit reports whether the request moves money out of the fund.
func (r Request) IsDebit() bool {
	return r.Amount.IsNegative()
}
