package dto

import (
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateStatementsRequest defines the data needed to regenerate statements.
type GenerateStatementsRequest struct {
	AccountIDs []string `json:"accountIDs" binding:"required,min=1"`
	FromMonth  int      `json:"fromMonth" binding:"required,min=1,max=12"`
	FromYear   int      `json:"fromYear" binding:"required,min=1900"`
}

// StatementResponse defines the data returned for a statement row.
type StatementResponse struct {
	StatementID    string          `json:"statementID"`
	AccountID      string          `json:"accountID"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	GainLoss       decimal.Decimal `json:"gainLoss"`
	NetOperations  decimal.Decimal `json:"netOperations"`
	EndBalance     decimal.Decimal `json:"endBalance"`
}

// ToStatementResponse converts a domain.Statement to a StatementResponse DTO.
func ToStatementResponse(s *domain.Statement) StatementResponse {
	return StatementResponse{
		StatementID:    s.StatementID,
		AccountID:      s.AccountID,
		Month:          s.Month,
		Year:           s.Year,
		OpeningBalance: s.OpeningBalance,
		GainLoss:       s.GainLoss,
		NetOperations:  s.NetOperations,
		EndBalance:     s.EndBalance,
	}
}

// ToStatementResponses converts a slice of domain statements to response DTOs.
func ToStatementResponses(ss []domain.Statement) []StatementResponse {
	out := make([]StatementResponse, len(ss))
	for i := range ss {
		out[i] = ToStatementResponse(&ss[i])
	}
	return out
}

// GenerationErrorResponse reports one account whose regeneration stopped early.
type GenerationErrorResponse struct {
	AccountID string `json:"accountID"`
	Error     string `json:"error"`
}

// GenerateStatementsResponse carries the statements that were persisted and
// the per-account errors for sequences that stopped early.
type GenerateStatementsResponse struct {
	Statements []StatementResponse       `json:"statements"`
	Errors     []GenerationErrorResponse `json:"errors,omitempty"`
}
