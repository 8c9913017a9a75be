// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addrbook/internal/domain/entity"
	"addrbook/internal/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressMatch narrows UpdateOrCreate to an existing row of an owner. All
// fields take part in the match; empty values match empty columns.
type AddressMatch struct {
	Street      string
	StreetExtra string
	City        string
	Province    string
	PostCode    string
	CountryCode string
}

// AddressRepository defines the interface for address persistence.
// Addresses are soft-deleted: deleted rows stay in storage but are excluded
// from every lookup unless includeDeleted is set.
type AddressRepository interface {
	// Create persists a new address and assigns its identifiers.
	Create(ctx context.Context, address *entity.Address) error

	// Update writes back the full state of an existing address.
	// Returns ErrAddressNotFound if the row is absent or already deleted.
	Update(ctx context.Context, address *entity.Address) error

	// SoftDelete marks one address deleted.
	// Returns ErrAddressNotFound if no live row matched.
	SoftDelete(ctx context.Context, id uint64) error

	// SoftDeleteAll marks every live address of the owner deleted and
	// reports how many rows were affected.
	SoftDeleteAll(ctx context.Context, owner entity.OwnerRef) (int64, error)

	// FindByID retrieves one address by its row identifier.
	FindByID(ctx context.Context, id uint64, includeDeleted bool) (*entity.Address, error)

	// ListForOwner retrieves the owner's addresses in insertion order.
	ListForOwner(ctx context.Context, owner entity.OwnerRef, includeDeleted bool) ([]*entity.Address, error)

	// UpdateOrCreate finds the owner's address matching match and updates it
	// with the given state, or creates a new row when nothing matched.
	UpdateOrCreate(ctx context.Context, owner entity.OwnerRef, match AddressMatch, address *entity.Address) (*entity.Address, error)

	// FindWithinDistance returns all live addresses whose coordinates lie
	// within distance of the given point. Rows without coordinates never
	// match. The boundary is inclusive.
	FindWithinDistance(ctx context.Context, distance float64, unit entity.DistanceUnit, latitude, longitude float64) ([]*entity.Address, error)
}
