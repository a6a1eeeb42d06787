package unitofwork

import "context"

// RepositoryFactory hands out units of work bound to one request context.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork

	// WithinTransaction runs fn inside a transaction. fn's error, or a failed
	// commit, rolls everything back.
	WithinTransaction(ctx context.Context, fn func(uow UnitOfWork) error) error
}
