package postgres

import (
	"context"

	"marketplace/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is provided to fx for checkout and order transitions.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute hands fn repositories bound to one transaction. gorm rolls back
// when fn returns an error or panics, and commits otherwise.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
}

// txRepositories builds repositories on a transaction handle.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewAccountRepository() repository.AccountRepository {
	return NewAccountRepository(r.tx)
}

func (r txRepositories) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(r.tx)
}

func (r txRepositories) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(r.tx)
}

func (r txRepositories) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(r.tx)
}
