package repositories

// RepositoryProvider aggregates the repositories the service layer needs.
type RepositoryProvider struct {
	CurrencyRepo CurrencyRepositoryFacade
	RateRepo     RateRepositoryFacade
}
