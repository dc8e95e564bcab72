package memory

import (
	"context"

	"locator/internal/domain/repository"
)

// transactionManager runs the callback against the shared store. Each
// repository call is atomic on its own; there is no rollback.
type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
}

// NewTransactionManager creates a transaction manager over the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn with repositories bound to the store.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := checkContext(ctx, "failed to begin transaction"); err != nil {
		return err
	}

	return fn(&repositoryFactory{store: tm.store})
}

// NewProviderRepository returns the store's provider repository.
func (f *repositoryFactory) NewProviderRepository() repository.ProviderRepository {
	return NewProviderRepository(f.store)
}

// NewAppointmentRepository returns the store's appointment repository.
func (f *repositoryFactory) NewAppointmentRepository() repository.AppointmentRepository {
	return NewAppointmentRepository(f.store)
}
