package database

// DataStore defines the unified interface for all data operations.
// Consumers can depend on the smaller interfaces (UserRepository,
// PostRepository, ReportRepository) for clearer dependencies.
type DataStore interface {
	UserRepository
	PostRepository
	ReportRepository
}
