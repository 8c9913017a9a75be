// Package usecase defines the application-facing contracts of the address book.
package usecase

import (
	"context"
	"sync"

	"addrbook/internal/domain/entity"
)

// Owner is the capability an entity needs to hold addresses: a stable
// polymorphic key. A zero-ID reference marks an owner that has not been
// persisted yet.
type Owner interface {
	// AddressOwner returns the owner's polymorphic key.
	AddressOwner() entity.OwnerRef
}

// PendingAddressHolder is implemented by owners that accept addresses before
// they are persisted. StoreAddress queues attributes on the holder and
// OwnerCreated flushes them once the owner exists.
type PendingAddressHolder interface {
	Owner

	// PendingAddresses returns the owner's deferred-creation queue.
	PendingAddresses() *PendingAddresses
}

// PendingAddresses is the deferred-creation queue embedded into owner types.
// The zero value is ready to use.
type PendingAddresses struct {
	mu     sync.Mutex
	queued []AddressAttributes
}

// Len returns the number of queued attribute sets.
func (p *PendingAddresses) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.queued)
}

// Queue appends an attribute set to the deferred queue.
func (p *PendingAddresses) Queue(attrs AddressAttributes) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queued = append(p.queued, attrs)
}

// Drain removes and returns every queued attribute set.
func (p *PendingAddresses) Drain() []AddressAttributes {
	p.mu.Lock()
	defer p.mu.Unlock()
	queued := p.queued
	p.queued = nil

	return queued
}

// AddressAttributes is the attribute set for creating or updating an address.
// Nil fields are left untouched on update, so a partial set merges onto the
// stored record before re-validation.
type AddressAttributes struct {
	Label        *string `json:"label,omitempty"`
	GivenName    *string `json:"given_name,omitempty"`
	FamilyName   *string `json:"family_name,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Street       *string `json:"street,omitempty"`
	StreetExtra  *string `json:"street_extra,omitempty"`
	City         *string `json:"city,omitempty"`
	Province     *string `json:"province,omitempty"`
	PostCode     *string `json:"post_code,omitempty"`
	CountryCode  *string `json:"country_code,omitempty"`

	Extra map[string]any `json:"extra,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// Flags sets individual flag states; absent flags keep their value.
	Flags map[string]bool `json:"flags,omitempty"`
}

// ApplyTo merges the non-nil attributes onto the address.
func (a *AddressAttributes) ApplyTo(address *entity.Address) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&address.Label, a.Label)
	setString(&address.GivenName, a.GivenName)
	setString(&address.FamilyName, a.FamilyName)
	setString(&address.Organization, a.Organization)
	setString(&address.Street, a.Street)
	setString(&address.StreetExtra, a.StreetExtra)
	setString(&address.City, a.City)
	setString(&address.Province, a.Province)
	setString(&address.PostCode, a.PostCode)
	setString(&address.CountryCode, a.CountryCode)

	if a.Extra != nil {
		address.Extra = a.Extra
	}
	if a.Latitude != nil {
		address.Latitude = a.Latitude
	}
	if a.Longitude != nil {
		address.Longitude = a.Longitude
	}

	for name, value := range a.Flags {
		address.SetFlag(name, value)
	}
}

// AddressRef identifies an address either by its numeric identifier or by the
// record itself.
type AddressRef struct {
	id     uint64
	record *entity.Address
}

// ByID references an address by its row identifier.
func ByID(id uint64) AddressRef {
	return AddressRef{id: id}
}

// ByRecord references an address by an already loaded record.
func ByRecord(address *entity.Address) AddressRef {
	return AddressRef{record: address}
}

// ID returns the referenced row identifier.
func (r AddressRef) ID() uint64 {
	if r.record != nil {
		return r.record.ID
	}

	return r.id
}

// Record returns the referenced record, nil for an ID-only reference.
func (r AddressRef) Record() *entity.Address {
	return r.record
}

// OwnerMatch is one distance-search hit: the distinct owner key and the
// entity it resolved to.
type OwnerMatch struct {
	Ref   entity.OwnerRef
	Owner any
}

// AddressBookUsecase is the owner-scoped address capability: validation,
// persistence, flag-based selection, lifecycle cascading and distance search.
type AddressBookUsecase interface {
	// Addresses returns the owner's live addresses in insertion order.
	Addresses(ctx context.Context, owner Owner) ([]*entity.Address, error)

	// HasAddresses reports whether the owner holds any live address.
	HasAddresses(ctx context.Context, owner Owner) (bool, error)

	// StoreAddress validates the attributes and upserts them for the owner,
	// matching on the descriptive fields. When the owner is not yet
	// persisted the attributes are queued and the returned record is nil.
	StoreAddress(ctx context.Context, owner Owner, attrs AddressAttributes) (*entity.Address, error)

	// UpdateAddress merges the attributes onto the referenced address,
	// re-validates the full set and writes it back. It reports false when
	// the address does not exist or belongs to a different owner.
	UpdateAddress(ctx context.Context, owner Owner, ref AddressRef, attrs AddressAttributes) (bool, error)

	// DestroyAddress soft-deletes the address, scoped to the owner's
	// collection. It reports false for a foreign owner's address.
	DestroyAddress(ctx context.Context, owner Owner, address *entity.Address) (bool, error)

	// FlushAddresses soft-deletes all of the owner's addresses.
	FlushAddresses(ctx context.Context, owner Owner) (bool, error)

	// GetAddress picks the owner's best address for a flag. The flag may be
	// given with or without the "is_" prefix; direction is "desc" (prefer
	// flagged) or "asc" (prefer unflagged). A result is guaranteed whenever
	// the owner has any address.
	GetAddress(ctx context.Context, owner Owner, flag, direction string) (*entity.Address, error)

	// OwnerCreated flushes the owner's pending address queue. Owner
	// lifecycles call it from their post-create hook.
	OwnerCreated(ctx context.Context, owner Owner) error

	// OwnerDeleted cascades the owner's deletion to its addresses inside a
	// transaction, so the flush rolls back with the owner's own delete.
	OwnerDeleted(ctx context.Context, owner Owner) error

	// FindByDistance returns the distinct owners having at least one live,
	// geocoded address within distance of the point.
	FindByDistance(ctx context.Context, distance float64, unit entity.DistanceUnit, latitude, longitude float64) ([]OwnerMatch, error)
}
