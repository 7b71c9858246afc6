package services

import (
	portsrepo "github.com/SscSPs/billing_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/billing_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/billing_ledger_app/internal/platform/calendar"
	"github.com/SscSPs/billing_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// publisher may be nil, in which case aging summaries are not forwarded anywhere.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cal calendar.CivilCalendar, publisher portssvc.AgingPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos, cal)

	agingOptions := []AgingServiceOption{}
	if publisher != nil {
		agingOptions = append(agingOptions, WithAgingPublisher(publisher))
		if cfg != nil {
			agingOptions = append(agingOptions, WithPublishTimeout(cfg.AgingPublishTimeout))
		}
	}
	container.Aging = NewAgingService(repos, cal, agingOptions...)

	return container
}
