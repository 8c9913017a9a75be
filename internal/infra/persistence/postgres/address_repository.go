// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"

	"addrbook/config"
	"addrbook/internal/domain/entity"
	domainerrors "addrbook/internal/domain/errors"
	"addrbook/internal/domain/repository"
	"addrbook/internal/domain/service"
	"addrbook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// greatCircleExpr computes the great-circle distance between a row and a
// point. The acos argument is clamped against rounding drift on antipodal or
// identical points. Parameters: radius, lat, lng, lat.
const greatCircleExpr = `(? * acos(least(1.0, greatest(-1.0, ` +
	`cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) + ` +
	`sin(radians(?)) * sin(radians(latitude))))))`

// addressRepository implements the domain's AddressRepository on GORM.
// It also runs the best-effort geocoding hook before every save.
type addressRepository struct {
	db        *gorm.DB
	tableName string
	geoCfg    config.GeocodingConfig
	geocoder  service.Geocoder
	logger    *slog.Logger
}

// NewAddressRepository is the constructor for addressRepository. It fails
// when the configured flag set names a flag the schema has no column for;
// that situation needs a migration, not a runtime workaround.
func NewAddressRepository(db *gorm.DB, cfg *config.Config, geocoder service.Geocoder, logger *slog.Logger) (repository.AddressRepository, error) {
	addressCfg := cfg.Address
	if addressCfg == nil {
		addressCfg = config.DefaultAddressConfig()
	}

	for _, flag := range addressCfg.Flags {
		if !model.SupportedFlag(flag) {
			return nil, errors.Errorf("configured flag %q has no schema column; add it to the address model and migrate", flag)
		}
	}

	return &addressRepository{
		db:        db,
		tableName: addressCfg.TableName,
		geoCfg:    addressCfg.Geocoding,
		geocoder:  geocoder,
		logger:    logger,
	}, nil
}

func (repo *addressRepository) base(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Table(repo.tableName)
}

// Create persists a new address and assigns its identifiers.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := model.FromDomain(address)
	if addressM.ExternalID == uuid.Nil {
		addressM.ExternalID = uuid.New()
	}

	repo.geocode(ctx, addressM)

	if err := repo.base(ctx).Create(addressM).Error; err != nil {
		return repo.classifyWriteError(err, "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.ExternalID = addressM.ExternalID
	address.Latitude = addressM.Latitude
	address.Longitude = addressM.Longitude
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// Update writes back the full state of an existing address.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	addressM := model.FromDomain(address)

	repo.geocode(ctx, addressM)

	result := repo.base(ctx).Save(addressM)
	if result.Error != nil {
		return repo.classifyWriteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.Latitude = addressM.Latitude
	address.Longitude = addressM.Longitude
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// SoftDelete marks one address deleted.
func (repo *addressRepository) SoftDelete(ctx context.Context, id uint64) error {
	result := repo.base(ctx).Where("id = ?", id).Delete(&model.AddressModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	// If no rows were affected, the address was absent or already deleted.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// SoftDeleteAll marks every live address of the owner deleted.
func (repo *addressRepository) SoftDeleteAll(ctx context.Context, owner entity.OwnerRef) (int64, error) {
	result := repo.base(ctx).
		Where("owner_type = ? AND owner_id = ?", owner.Type.String(), owner.ID).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete addresses for owner")
	}

	return result.RowsAffected, nil
}

// FindByID retrieves one address by its row identifier.
func (repo *addressRepository) FindByID(ctx context.Context, id uint64, includeDeleted bool) (*entity.Address, error) {
	query := repo.base(ctx)
	if includeDeleted {
		query = query.Unscoped()
	}

	var addressM model.AddressModel
	if err := query.Where("id = ?", id).First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return addressM.ToDomain(), nil
}

// ListForOwner retrieves the owner's addresses in insertion order.
func (repo *addressRepository) ListForOwner(ctx context.Context, owner entity.OwnerRef, includeDeleted bool) ([]*entity.Address, error) {
	query := repo.base(ctx)
	if includeDeleted {
		query = query.Unscoped()
	}

	var addressModels []*model.AddressModel
	err := query.
		Where("owner_type = ? AND owner_id = ?", owner.Type.String(), owner.ID).
		Order("id ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses for owner")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, addressM.ToDomain())
	}

	return addresses, nil
}

// UpdateOrCreate finds the owner's address matching match and updates it, or
// creates a new row when nothing matched.
func (repo *addressRepository) UpdateOrCreate(ctx context.Context, owner entity.OwnerRef, match repository.AddressMatch, address *entity.Address) (*entity.Address, error) {
	var existing model.AddressModel
	err := repo.base(ctx).
		Where("owner_type = ? AND owner_id = ?", owner.Type.String(), owner.ID).
		Where(map[string]any{
			"street":       match.Street,
			"street_extra": match.StreetExtra,
			"city":         match.City,
			"province":     match.Province,
			"post_code":    match.PostCode,
			"country_code": match.CountryCode,
		}).
		Order("id ASC").
		First(&existing).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created := *address
			created.OwnerType = owner.Type
			created.OwnerID = owner.ID
			if createErr := repo.Create(ctx, &created); createErr != nil {
				return nil, createErr
			}

			return &created, nil
		}

		return nil, errors.Wrap(err, "failed to match address for upsert")
	}

	// Update path: the matched row keeps its identity, the incoming state
	// replaces the rest.
	merged := *address
	merged.ID = existing.ID
	merged.ExternalID = existing.ExternalID
	merged.OwnerType = owner.Type
	merged.OwnerID = owner.ID
	merged.CreatedAt = existing.CreatedAt

	if updateErr := repo.Update(ctx, &merged); updateErr != nil {
		return nil, updateErr
	}

	return &merged, nil
}

// FindWithinDistance returns all live addresses with coordinates inside the
// radius, in insertion order. Rows without coordinates never match.
func (repo *addressRepository) FindWithinDistance(ctx context.Context, distance float64, unit entity.DistanceUnit, latitude, longitude float64) ([]*entity.Address, error) {
	radius := unit.EarthRadius()

	var addressModels []*model.AddressModel
	err := repo.base(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where(greatCircleExpr+" <= ?", radius, latitude, longitude, latitude, distance).
		Order("id ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search addresses by distance")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, addressM.ToDomain())
	}

	return addresses, nil
}

// geocode runs the best-effort geocoding hook before a save. It never fails
// the write: provider errors and timeouts are logged and the prior
// coordinates are kept.
func (repo *addressRepository) geocode(ctx context.Context, addressM *model.AddressModel) {
	if !repo.geoCfg.Enabled || repo.geocoder == nil {
		return
	}

	query := addressM.ToDomain().GeocodeQuery()
	if query == "" && repo.geoCfg.APIKey == "" {
		return
	}

	hookCtx := ctx
	if repo.geoCfg.Timeout > 0 {
		var cancel context.CancelFunc
		hookCtx, cancel = context.WithTimeout(ctx, repo.geoCfg.Timeout)
		defer cancel()
	}

	result, found, err := repo.geocoder.Geocode(hookCtx, query)
	if err != nil {
		repo.logger.WarnContext(ctx, "geocoding failed, keeping prior coordinates",
			slog.Uint64("addressId", addressM.ID),
			slog.String("error", err.Error()),
		)

		return
	}
	if !found {
		return
	}

	latitude := result.Latitude
	longitude := result.Longitude
	addressM.Latitude = &latitude
	addressM.Longitude = &longitude
}

// classifyWriteError converts PostgreSQL errors to domain errors.
func (repo *addressRepository) classifyWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("address conflicts with an existing row")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
	}

	// For other database errors, return a generic database error
	return domainerrors.NewDatabaseExecuteError(err, details)
}
