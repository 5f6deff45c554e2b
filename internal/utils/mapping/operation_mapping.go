package mapping

import (
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	"github.com/clearbrook/fund_admin_app/internal/models"
)

// ToModelOperation converts a domain Operation to a model Operation.
func ToModelOperation(d domain.Operation) models.Operation {
	return models.Operation{
		OperationID: d.OperationID,
		AccountID:   d.AccountID,
		RequestID:   d.RequestID,
		Amount:      d.Amount,
		Month:       d.Month,
		Year:        d.Year,
		Day:         d.Day,
		Deleted:     d.Deleted,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOperation converts a model Operation to a domain Operation.
func ToDomainOperation(m models.Operation) domain.Operation {
	return domain.Operation{
		OperationID: m.OperationID,
		AccountID:   m.AccountID,
		RequestID:   m.RequestID,
		Amount:      m.Amount,
		Month:       m.Month,
		Year:        m.Year,
		Day:         m.Day,
		Deleted:     m.Deleted,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOperationSlice converts a slice of model Operations to domain Operations.
func ToDomainOperationSlice(ms []models.Operation) []domain.Operation {
	ds := make([]domain.Operation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOperation(m)
	}
	return ds
}
