package services

import (
	portsrepo "github.com/ratewise/currency_rates_app/internal/core/ports/repositories"
	portssvc "github.com/ratewise/currency_rates_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency service first since the rate and conversion services depend on it
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Rate = NewRateService(repos.RateRepo, container.Currency)
	container.Conversion = NewConversionService(repos.RateRepo, container.Currency)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade   = (*CurrencyService)(nil)
	_ portssvc.RateSvcFacade       = (*RateService)(nil)
	_ portssvc.ConversionSvcFacade = (*ConversionService)(nil)
)
