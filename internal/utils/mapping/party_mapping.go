package mapping

import (
	"github.com/SscSPs/billing_ledger_app/internal/core/domain"
	"github.com/SscSPs/billing_ledger_app/internal/models"
)

// ToDomainParty converts a model Party to a domain Party.
// A missing orientation defaults to debit.
func ToDomainParty(m models.Party) domain.Party {
	orientation := domain.Orientation(m.OpeningBalanceOrientation)
	if orientation != domain.Credit {
		orientation = domain.Debit
	}
	return domain.Party{
		PartyID:                   m.PartyID,
		CompanyID:                 m.CompanyID,
		Kind:                      domain.PartyKind(m.PartyKind),
		Name:                      m.Name,
		OpeningBalance:            m.OpeningBalance.Abs(),
		OpeningBalanceOrientation: orientation,
		AuditFields:               ToDomainAuditFields(m.AuditFields),
	}
}
