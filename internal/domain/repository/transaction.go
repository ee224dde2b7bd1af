package repository

import "context"

// TransactionManager runs a unit of work atomically. Returning an error from
// fn rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share the caller's transaction.
type RepositoryFactory interface {
	NewAccountRepository() AccountRepository
	NewProfileRepository() ProfileRepository
	NewProductRepository() ProductRepository
	NewOrderRepository() OrderRepository
}
