package entity

import (
	"context"
	"fmt"
	"sync"
)

// OwnerType is the stable discriminator for the kind of entity that can own
// addresses, e.g. "user", "company", "order".
type OwnerType string

// String returns the string representation of the OwnerType.
func (t OwnerType) String() string {
	return string(t)
}

// OwnerRef is the polymorphic foreign key of an address: a discriminator plus
// an opaque identifier within that kind. Both fields are set together or not
// at all.
type OwnerRef struct {
	Type OwnerType
	ID   uint64
}

// IsZero reports whether the reference is unset.
func (r OwnerRef) IsZero() bool {
	return r.Type == "" && r.ID == 0
}

// Valid reports whether the reference is either fully set or fully unset.
// A half-set reference is never valid.
func (r OwnerRef) Valid() bool {
	return r.IsZero() || (r.Type != "" && r.ID != 0)
}

// String formats the reference as "type:id".
func (r OwnerRef) String() string {
	return fmt.Sprintf("%s:%d", r.Type, r.ID)
}

// OwnerLoader resolves an owner identifier to the owning entity itself.
type OwnerLoader func(ctx context.Context, id uint64) (any, error)

// OwnerRegistry maps owner discriminators to entity loaders. Distance search
// uses it to dereference the distinct owner keys of matching addresses back
// into real entities.
type OwnerRegistry struct {
	mu      sync.RWMutex
	loaders map[OwnerType]OwnerLoader
}

// NewOwnerRegistry creates an empty registry.
func NewOwnerRegistry() *OwnerRegistry {
	return &OwnerRegistry{loaders: make(map[OwnerType]OwnerLoader)}
}

// Register binds a loader to an owner discriminator, replacing any previous
// binding for that discriminator.
func (r *OwnerRegistry) Register(ownerType OwnerType, loader OwnerLoader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[ownerType] = loader
}

// Known reports whether a loader is registered for the discriminator.
func (r *OwnerRegistry) Known(ownerType OwnerType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.loaders[ownerType]

	return ok
}

// Resolve loads the owning entity behind a reference. The boolean result is
// false when no loader is registered for the reference's discriminator.
func (r *OwnerRegistry) Resolve(ctx context.Context, ref OwnerRef) (any, bool, error) {
	r.mu.RLock()
	loader, ok := r.loaders[ref.Type]
	r.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	owner, err := loader(ctx, ref.ID)
	if err != nil {
		return nil, true, err
	}

	return owner, true, nil
}
