package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"addrbook/config"
	"addrbook/internal/domain/entity"
	"addrbook/internal/domain/repository"
	"addrbook/internal/infra/persistence/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const integrationTableName = "addresses_itest"

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

// setupIntegrationDB connects to the test database, or skips the test when
// none is reachable.
func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5432"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "addrbook_test"),
		getEnv("TEST_DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("skipping integration test: cannot connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("skipping integration test: cannot ping database: %v", err)
	}

	return db
}

// newIntegrationRepo prepares a fresh table and returns a repository over it.
func newIntegrationRepo(t *testing.T) (repository.AddressRepository, *gorm.DB, *config.Config) {
	t.Helper()

	db := setupIntegrationDB(t)

	addressCfg := config.DefaultAddressConfig()
	addressCfg.TableName = integrationTableName
	cfg := &config.Config{Address: addressCfg}

	require.NoError(t, db.Exec("DROP TABLE IF EXISTS "+integrationTableName).Error)
	require.NoError(t, schema.Apply(db, addressCfg))
	t.Cleanup(func() {
		db.Exec("DROP TABLE IF EXISTS " + integrationTableName)
	})

	repo, err := NewAddressRepository(db, cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return repo, db, cfg
}

func integrationAddress(owner entity.OwnerRef, street string) *entity.Address {
	return &entity.Address{
		OwnerType:   owner.Type,
		OwnerID:     owner.ID,
		Street:      street,
		City:        "Portland",
		Province:    "Oregon",
		PostCode:    "97201",
		CountryCode: "US",
	}
}

func TestIntegrationAddressRepository_SoftDeleteVisibility(t *testing.T) {
	repo, _, _ := newIntegrationRepo(t)

	ctx := context.Background()
	owner := entity.OwnerRef{Type: "user", ID: 7}

	first := integrationAddress(owner, "123 Main St")
	second := integrationAddress(owner, "456 Oak Ave")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NotZero(t, first.ID)
	require.NotEqual(t, uuid.Nil, first.ExternalID)

	require.NoError(t, repo.SoftDelete(ctx, first.ID))

	live, err := repo.ListForOwner(ctx, owner, false)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, second.ID, live[0].ID)

	// The deleted row stays in storage and is visible with includeDeleted.
	all, err := repo.ListForOwner(ctx, owner, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.NotNil(t, all[0].DeletedAt)
	assert.Nil(t, all[1].DeletedAt)

	_, err = repo.FindByID(ctx, first.ID, false)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)

	deleted, err := repo.FindByID(ctx, first.ID, true)
	require.NoError(t, err)
	assert.NotNil(t, deleted.DeletedAt)

	// A second delete finds no live row.
	assert.ErrorIs(t, repo.SoftDelete(ctx, first.ID), repository.ErrAddressNotFound)
}

func TestIntegrationAddressRepository_UpdateSoftDeletedRow(t *testing.T) {
	repo, _, _ := newIntegrationRepo(t)

	ctx := context.Background()
	owner := entity.OwnerRef{Type: "user", ID: 7}

	address := integrationAddress(owner, "123 Main St")
	require.NoError(t, repo.Create(ctx, address))
	require.NoError(t, repo.SoftDelete(ctx, address.ID))

	address.Label = "Home"
	address.DeletedAt = nil
	assert.ErrorIs(t, repo.Update(ctx, address), repository.ErrAddressNotFound)
}

func TestIntegrationAddressRepository_UpdateOrCreate(t *testing.T) {
	repo, _, _ := newIntegrationRepo(t)

	ctx := context.Background()
	owner := entity.OwnerRef{Type: "user", ID: 7}
	match := repository.AddressMatch{
		Street:      "123 Main St",
		City:        "Portland",
		Province:    "Oregon",
		PostCode:    "97201",
		CountryCode: "US",
	}

	created, err := repo.UpdateOrCreate(ctx, owner, match, integrationAddress(owner, "123 Main St"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	// Same descriptive fields update the matched row in place.
	updated := integrationAddress(owner, "123 Main St")
	updated.Label = "Home"
	updated.SetFlag("primary", true)

	upserted, err := repo.UpdateOrCreate(ctx, owner, match, updated)
	require.NoError(t, err)
	assert.Equal(t, created.ID, upserted.ID)
	assert.Equal(t, created.ExternalID, upserted.ExternalID)

	live, err := repo.ListForOwner(ctx, owner, false)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, "Home", live[0].Label)
	assert.True(t, live[0].Flag("primary"))

	// A different street is a different address.
	otherMatch := match
	otherMatch.Street = "456 Oak Ave"
	other, err := repo.UpdateOrCreate(ctx, owner, otherMatch, integrationAddress(owner, "456 Oak Ave"))
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)

	live, err = repo.ListForOwner(ctx, owner, false)
	require.NoError(t, err)
	assert.Len(t, live, 2)
}

func TestIntegrationAddressRepository_SoftDeleteAllScopesToOwner(t *testing.T) {
	repo, _, _ := newIntegrationRepo(t)

	ctx := context.Background()
	ownerA := entity.OwnerRef{Type: "user", ID: 7}
	ownerB := entity.OwnerRef{Type: "company", ID: 3}

	require.NoError(t, repo.Create(ctx, integrationAddress(ownerA, "123 Main St")))
	require.NoError(t, repo.Create(ctx, integrationAddress(ownerA, "456 Oak Ave")))
	require.NoError(t, repo.Create(ctx, integrationAddress(ownerB, "789 Pine Rd")))

	count, err := repo.SoftDeleteAll(ctx, ownerA)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	liveA, err := repo.ListForOwner(ctx, ownerA, false)
	require.NoError(t, err)
	assert.Empty(t, liveA)

	liveB, err := repo.ListForOwner(ctx, ownerB, false)
	require.NoError(t, err)
	assert.Len(t, liveB, 1)
}

func TestIntegrationAddressRepository_FindWithinDistance(t *testing.T) {
	repo, _, _ := newIntegrationRepo(t)

	ctx := context.Background()
	owner := entity.OwnerRef{Type: "user", ID: 7}

	coords := func(lat, lng float64) (*float64, *float64) { return &lat, &lng }

	near := integrationAddress(owner, "123 Main St")
	near.Latitude, near.Longitude = coords(45.5152, -122.6784)

	alsoNear := integrationAddress(owner, "456 Oak Ave")
	alsoNear.Latitude, alsoNear.Longitude = coords(45.5202, -122.6742)

	far := integrationAddress(owner, "1 Liberty Plaza")
	far.City = "New York"
	far.Province = "New York"
	far.Latitude, far.Longitude = coords(40.7089, -74.0132)

	noCoords := integrationAddress(owner, "789 Pine Rd")

	deletedNear := integrationAddress(owner, "321 Elm St")
	deletedNear.Latitude, deletedNear.Longitude = coords(45.5160, -122.6800)

	for _, address := range []*entity.Address{near, alsoNear, far, noCoords, deletedNear} {
		require.NoError(t, repo.Create(ctx, address))
	}
	require.NoError(t, repo.SoftDelete(ctx, deletedNear.ID))

	found, err := repo.FindWithinDistance(ctx, 25.0, entity.UnitMiles, 45.5152, -122.6784)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, near.ID, found[0].ID)
	assert.Equal(t, alsoNear.ID, found[1].ID)

	// The same radius in kilometers still excludes the far coast.
	found, err = repo.FindWithinDistance(ctx, 25.0, entity.UnitKilometers, 45.5152, -122.6784)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestIntegrationTransactionManager_Execute(t *testing.T) {
	repo, db, cfg := newIntegrationRepo(t)

	ctx := context.Background()
	owner := entity.OwnerRef{Type: "user", ID: 7}

	txManager, err := NewTransactionManager(db, cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	// A failing callback rolls the write back.
	boom := errors.New("abort")
	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if createErr := factory.NewAddressRepository().Create(ctx, integrationAddress(owner, "123 Main St")); createErr != nil {
			return createErr
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	live, err := repo.ListForOwner(ctx, owner, false)
	require.NoError(t, err)
	assert.Empty(t, live)

	// A clean callback commits.
	require.NoError(t, txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewAddressRepository().Create(ctx, integrationAddress(owner, "456 Oak Ave"))
	}))

	live, err = repo.ListForOwner(ctx, owner, false)
	require.NoError(t, err)
	assert.Len(t, live, 1)
}
