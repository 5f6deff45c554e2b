package dto

import (
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required"`
	Email          string             `json:"email" binding:"required,email"`
	Password       string             `json:"password" binding:"required,min=8"`
	Role           domain.AccountRole `json:"role" binding:"required,oneof=CLIENT MANAGER DIRECTOR ADMIN"`
	ManagerID      *string            `json:"managerID"` // Optional, use pointer for nullability
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	OpeningMonth   int                `json:"openingMonth" binding:"required,min=1,max=12"`
	OpeningYear    int                `json:"openingYear" binding:"required,min=1900"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Role           domain.AccountRole `json:"role"`
	ManagerID      *string            `json:"managerID,omitempty"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	OpeningMonth   int                `json:"openingMonth"`
	OpeningYear    int                `json:"openingYear"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Name:           a.Name,
		Email:          a.Email,
		Role:           a.Role,
		ManagerID:      a.ManagerID,
		OpeningBalance: a.OpeningBalance,
		OpeningMonth:   a.OpeningMonth,
		OpeningYear:    a.OpeningYear,
	}
}

// ToAccountResponses converts a slice of domain accounts to response DTOs.
func ToAccountResponses(as []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(as))
	for i := range as {
		out[i] = ToAccountResponse(&as[i])
	}
	return out
}

// GrantAccessRequest defines the data needed to delegate account visibility.
type GrantAccessRequest struct {
	GranteeAccountID string `json:"granteeAccountID" binding:"required"`
}
