package mapping

import (
	"github.com/clearbrook/fund_admin_app/internal/core/domain"
	"github.com/clearbrook/fund_admin_app/internal/models"
)

// ToModelTradeInterest converts a domain TradeInterest to a model TradeInterest.
func ToModelTradeInterest(d domain.TradeInterest) models.TradeInterest {
	return models.TradeInterest{
		TradeInterestID: d.TradeInterestID,
		Month:           d.Month,
		Year:            d.Year,
		Rate:            d.Rate,
		Published:       d.Published,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTradeInterest converts a model TradeInterest to a domain TradeInterest.
func ToDomainTradeInterest(m models.TradeInterest) domain.TradeInterest {
	return domain.TradeInterest{
		TradeInterestID: m.TradeInterestID,
		Month:           m.Month,
		Year:            m.Year,
		Rate:            m.Rate,
		Published:       m.Published,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTradeInterestSlice converts a slice of model TradeInterest rows to domain values.
func ToDomainTradeInterestSlice(ms []models.TradeInterest) []domain.TradeInterest {
	ds := make([]domain.TradeInterest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTradeInterest(m)
	}
	return ds
}
