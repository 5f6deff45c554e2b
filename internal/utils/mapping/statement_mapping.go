package mapping

import (
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	"github.com/clearbrook/fund_admin_app/internal/models"
)

// ToModelStatement converts a domain Statement to a model Statement.
func ToModelStatement(d domain.Statement) models.Statement {
	return models.Statement{
		StatementID:    d.StatementID,
		AccountID:      d.AccountID,
		Month:          d.Month,
		Year:           d.Year,
		OpeningBalance: d.OpeningBalance,
		GainLoss:       d.GainLoss,
		NetOperations:  d.NetOperations,
		EndBalance:     d.EndBalance,
		Deleted:        d.Deleted,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStatement converts a model Statement to a domain Statement.
func ToDomainStatement(m models.Statement) domain.Statement {
	return domain.Statement{
		StatementID:    m.StatementID,
		AccountID:      m.AccountID,
		Month:          m.Month,
		Year:           m.Year,
		OpeningBalance: m.OpeningBalance,
		GainLoss:       m.GainLoss,
		NetOperations:  m.NetOperations,
		EndBalance:     m.EndBalance,
		Deleted:        m.Deleted,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStatementSlice converts a slice of model Statements to domain Statements.
func ToDomainStatementSlice(ms []models.Statement) []domain.Statement {
	ds := make([]domain.Statement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStatement(m)
	}
	return ds
}
