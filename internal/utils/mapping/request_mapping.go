package mapping

import (
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	"github.com/clearbrook/fund_admin_app/internal/models"
)

// ToModelRequest converts a domain Request to a model Request.
func ToModelRequest(d domain.Request) models.Request {
	return models.Request{
		RequestID:        d.RequestID,
		AccountID:        d.AccountID,
		Amount:           d.Amount,
		Status:           models.RequestStatus(d.Status),
		WireConfirmation: d.WireConfirmation,
		BankAccountRef:   d.BankAccountRef,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRequest converts a model Request to a domain Request.
func ToDomainRequest(m models.Request) domain.Request {
	return domain.Request{
		RequestID:        m.RequestID,
		AccountID:        m.AccountID,
		Amount:           m.Amount,
		Status:           domain.RequestStatus(m.Status),
		WireConfirmation: m.WireConfirmation,
		BankAccountRef:   m.BankAccountRef,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRequestSlice converts a slice of model Requests to domain Requests.
func ToDomainRequestSlice(ms []models.Request) []domain.Request {
	ds := make([]domain.Request, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRequest(m)
	}
	return ds
}
