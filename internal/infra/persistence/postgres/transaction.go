package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"addrbook/config"
	domainerrors "addrbook/internal/domain/errors"
	"addrbook/internal/domain/repository"
	"addrbook/internal/domain/service"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db       *gorm.DB
	cfg      *config.Config
	geocoder service.Geocoder
	logger   *slog.Logger
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx      *gorm.DB // In GORM, a transaction object is also a *gorm.DB
	manager *gormTransactionManager
}

// NewAddressRepository creates an address repository bound to the transaction.
func (f *gormRepositoryFactory) NewAddressRepository() repository.AddressRepository {
	repo, err := NewAddressRepository(f.tx, f.manager.cfg, f.manager.geocoder, f.manager.logger)
	if err != nil {
		// The configuration was validated when the manager was built, so a
		// failure here cannot happen outside programmer error.
		panic(err)
	}

	return repo
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, cfg *config.Config, geocoder service.Geocoder, logger *slog.Logger) (repository.TransactionManager, error) {
	// Fail early on a flag set the schema cannot hold.
	if _, err := NewAddressRepository(db, cfg, geocoder, logger); err != nil {
		return nil, err
	}

	return &gormTransactionManager{
		db:       db,
		cfg:      cfg,
		geocoder: geocoder,
		logger:   logger,
	}, nil
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("%w: begin: %v", domainerrors.ErrTransactionFailed, tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx, manager: tm}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Log the rollback error, but return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("%w: commit: %v", domainerrors.ErrTransactionFailed, err)
	}

	return nil
}
