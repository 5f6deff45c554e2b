package mapping

import (
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	"github.com/clearbrook/fund_admin_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account.
// PasswordHash is storage-only and must be set separately.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Name:           d.Name,
		Email:          d.Email,
		Role:           models.AccountRole(d.Role),
		ManagerID:      d.ManagerID,
		OpeningBalance: d.OpeningBalance,
		OpeningMonth:   d.OpeningMonth,
		OpeningYear:    d.OpeningYear,
		Deleted:        d.Deleted,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		Email:          m.Email,
		Role:           domain.AccountRole(m.Role),
		ManagerID:      m.ManagerID,
		OpeningBalance: m.OpeningBalance,
		OpeningMonth:   m.OpeningMonth,
		OpeningYear:    m.OpeningYear,
		Deleted:        m.Deleted,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToDomainAccessGrant converts a model AccessGrant to a domain AccessGrant.
func ToDomainAccessGrant(m models.AccessGrant) domain.AccessGrant {
	return domain.AccessGrant{
		GrantID:          m.GrantID,
		GrantorAccountID: m.GrantorAccountID,
		GranteeAccountID: m.GranteeAccountID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
