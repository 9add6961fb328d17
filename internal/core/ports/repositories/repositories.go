package repositories

// RepositoryProvider holds instances of all repositories, wired once in
// main and handed to the service container.
type RepositoryProvider struct {
	Expense   ExpenseRepository
	Reporting ReportingRepository
}
