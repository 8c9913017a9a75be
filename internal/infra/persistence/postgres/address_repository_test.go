package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"addrbook/config"
	domainerrors "addrbook/internal/domain/errors"
	"addrbook/internal/domain/service"
	"addrbook/internal/infra/persistence/model"
	mockService "addrbook/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newHookRepository(t *testing.T, geoCfg config.GeocodingConfig, geocoder service.Geocoder) *addressRepository {
	t.Helper()

	return &addressRepository{
		tableName: "addresses",
		geoCfg:    geoCfg,
		geocoder:  geocoder,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func geocodableModel() *model.AddressModel {
	return &model.AddressModel{
		ID:          5,
		Street:      "123 Main St",
		City:        "Portland",
		Province:    "Oregon",
		CountryCode: "US",
	}
}

func TestNewAddressRepository_RejectsUnsupportedFlag(t *testing.T) {
	cfg := &config.Config{Address: config.DefaultAddressConfig()}
	cfg.Address.Flags = append(cfg.Address.Flags, "preferred")

	repo, err := NewAddressRepository(nil, cfg, nil, slog.Default())
	assert.Nil(t, repo)
	assert.ErrorContains(t, err, `"preferred"`)
}

func TestNewAddressRepository_DefaultsAddressConfig(t *testing.T) {
	repo, err := NewAddressRepository(nil, &config.Config{}, nil, slog.Default())
	require.NoError(t, err)
	assert.Equal(t, "addresses", repo.(*addressRepository).tableName)
}

func TestGeocodeHook_SetsCoordinates(t *testing.T) {
	geocoder := mockService.NewMockGeocoder(t)
	repo := newHookRepository(t, config.GeocodingConfig{Enabled: true, Timeout: time.Second}, geocoder)

	addressM := geocodableModel()
	geocoder.EXPECT().
		Geocode(mock.Anything, addressM.ToDomain().GeocodeQuery()).
		Return(service.GeocodeResult{Latitude: 45.5152, Longitude: -122.6784}, true, nil)

	repo.geocode(context.Background(), addressM)

	require.NotNil(t, addressM.Latitude)
	require.NotNil(t, addressM.Longitude)
	assert.InDelta(t, 45.5152, *addressM.Latitude, 0.0001)
	assert.InDelta(t, -122.6784, *addressM.Longitude, 0.0001)
}

func TestGeocodeHook_DisabledIsNoop(t *testing.T) {
	geocoder := mockService.NewMockGeocoder(t)
	repo := newHookRepository(t, config.GeocodingConfig{Enabled: false}, geocoder)

	addressM := geocodableModel()
	repo.geocode(context.Background(), addressM)

	assert.Nil(t, addressM.Latitude)
	assert.Nil(t, addressM.Longitude)
}

func TestGeocodeHook_KeepsPriorCoordinatesOnError(t *testing.T) {
	geocoder := mockService.NewMockGeocoder(t)
	repo := newHookRepository(t, config.GeocodingConfig{Enabled: true, Timeout: time.Second}, geocoder)

	prior := 40.0
	addressM := geocodableModel()
	addressM.Latitude = &prior
	addressM.Longitude = &prior

	geocoder.EXPECT().
		Geocode(mock.Anything, mock.AnythingOfType("string")).
		Return(service.GeocodeResult{}, false, errors.New("provider unavailable"))

	repo.geocode(context.Background(), addressM)

	assert.Equal(t, prior, *addressM.Latitude)
	assert.Equal(t, prior, *addressM.Longitude)
}

func TestGeocodeHook_NoResultKeepsCoordinates(t *testing.T) {
	geocoder := mockService.NewMockGeocoder(t)
	repo := newHookRepository(t, config.GeocodingConfig{Enabled: true, Timeout: time.Second}, geocoder)

	addressM := geocodableModel()
	geocoder.EXPECT().
		Geocode(mock.Anything, mock.AnythingOfType("string")).
		Return(service.GeocodeResult{}, false, nil)

	repo.geocode(context.Background(), addressM)

	assert.Nil(t, addressM.Latitude)
	assert.Nil(t, addressM.Longitude)
}

func TestGeocodeHook_SkipsEmptyQueryWithoutKey(t *testing.T) {
	geocoder := mockService.NewMockGeocoder(t)
	repo := newHookRepository(t, config.GeocodingConfig{Enabled: true}, geocoder)

	addressM := &model.AddressModel{ID: 5}
	repo.geocode(context.Background(), addressM)

	assert.Nil(t, addressM.Latitude)
}

func TestClassifyWriteError(t *testing.T) {
	repo := newHookRepository(t, config.GeocodingConfig{}, nil)

	err := repo.classifyWriteError(gorm.ErrDuplicatedKey, "create")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = repo.classifyWriteError(errors.New(`pq: duplicate key value violates unique constraint "idx_addresses_external_id"`), "create")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = repo.classifyWriteError(errors.New(`pq: null value in column "street" violates not-null constraint`), "create")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = repo.classifyWriteError(errors.New("connection reset"), "create")
	var dbErr *domainerrors.DatabaseExecuteError
	assert.ErrorAs(t, err, &dbErr)
}
