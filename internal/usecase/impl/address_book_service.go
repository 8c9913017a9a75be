package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"addrbook/config"
	"addrbook/internal/domain/entity"
	domainerrors "addrbook/internal/domain/errors"
	"addrbook/internal/domain/repository"
	"addrbook/internal/usecase"
	"addrbook/internal/validation"
)

const (
	defaultFlag      = "primary"
	defaultDirection = "desc"
)

// ErrUnknownUnit is returned when a distance search names an unsupported unit.
var ErrUnknownUnit = errors.New("unknown distance unit")

type addressBookService struct {
	addressRepo repository.AddressRepository
	txManager   repository.TransactionManager
	registry    *entity.OwnerRegistry
	rules       *validation.Rules
	addressCfg  *config.AddressConfig
	logger      *slog.Logger
}

// NewAddressBookService creates the owner-scoped address book service.
func NewAddressBookService(
	addressRepo repository.AddressRepository,
	txManager repository.TransactionManager,
	registry *entity.OwnerRegistry,
	rules *validation.Rules,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AddressBookUsecase {
	addressCfg := cfg.Address
	if addressCfg == nil {
		addressCfg = config.DefaultAddressConfig()
	}

	return &addressBookService{
		addressRepo: addressRepo,
		txManager:   txManager,
		registry:    registry,
		rules:       rules,
		addressCfg:  addressCfg,
		logger:      logger,
	}
}

// Addresses returns the owner's live addresses in insertion order.
func (s *addressBookService) Addresses(ctx context.Context, owner usecase.Owner) ([]*entity.Address, error) {
	ref := owner.AddressOwner()
	if ref.ID == 0 {
		return nil, nil
	}

	addresses, err := s.addressRepo.ListForOwner(ctx, ref, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses for owner: %w", err)
	}

	return addresses, nil
}

// HasAddresses reports whether the owner holds any live address.
func (s *addressBookService) HasAddresses(ctx context.Context, owner usecase.Owner) (bool, error) {
	addresses, err := s.Addresses(ctx, owner)
	if err != nil {
		return false, err
	}

	return len(addresses) > 0, nil
}

// StoreAddress validates and upserts the attributes for the owner. For an
// owner that is not yet persisted the validated attributes are queued and a
// nil record is returned; OwnerCreated flushes the queue.
func (s *addressBookService) StoreAddress(ctx context.Context, owner usecase.Owner, attrs usecase.AddressAttributes) (*entity.Address, error) {
	ref := owner.AddressOwner()

	if ref.ID == 0 {
		holder, ok := owner.(usecase.PendingAddressHolder)
		if !ok {
			return nil, domainerrors.ErrOwnerNotPersisted
		}

		// Validate against an unowned candidate so bad attributes fail at
		// call time, not at flush time.
		candidate := &entity.Address{}
		attrs.ApplyTo(candidate)
		if err := s.rules.Validate(candidate); err != nil {
			return nil, err
		}

		holder.PendingAddresses().Queue(attrs)

		return nil, nil
	}

	return s.store(ctx, ref, attrs)
}

func (s *addressBookService) store(ctx context.Context, ref entity.OwnerRef, attrs usecase.AddressAttributes) (*entity.Address, error) {
	address := &entity.Address{OwnerType: ref.Type, OwnerID: ref.ID}
	attrs.ApplyTo(address)

	if err := s.rules.Validate(address); err != nil {
		return nil, err
	}

	match := repository.AddressMatch{
		Street:      address.Street,
		StreetExtra: address.StreetExtra,
		City:        address.City,
		Province:    address.Province,
		PostCode:    address.PostCode,
		CountryCode: address.CountryCode,
	}

	stored, err := s.addressRepo.UpdateOrCreate(ctx, ref, match, address)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert address: %w", err)
	}

	return stored, nil
}

// UpdateAddress merges the attributes onto the referenced address and writes
// it back. A missing address or one held by a different owner reports false.
func (s *addressBookService) UpdateAddress(ctx context.Context, owner usecase.Owner, ref usecase.AddressRef, attrs usecase.AddressAttributes) (bool, error) {
	address := ref.Record()
	if address == nil {
		var err error
		address, err = s.addressRepo.FindByID(ctx, ref.ID(), false)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return false, nil
			}

			return false, fmt.Errorf("failed to find address by ID: %w", err)
		}
	}

	if address.OwnerRef() != owner.AddressOwner() {
		return false, nil
	}

	merged := cloneAddress(address)
	attrs.ApplyTo(merged)

	if err := s.rules.Validate(merged); err != nil {
		return false, err
	}

	if err := s.addressRepo.Update(ctx, merged); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("failed to update address: %w", err)
	}

	*address = *merged

	return true, nil
}

// DestroyAddress soft-deletes the address when it belongs to the owner.
func (s *addressBookService) DestroyAddress(ctx context.Context, owner usecase.Owner, address *entity.Address) (bool, error) {
	if address == nil || address.OwnerRef() != owner.AddressOwner() {
		return false, nil
	}

	if err := s.addressRepo.SoftDelete(ctx, address.ID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("failed to delete address: %w", err)
	}

	return true, nil
}

// FlushAddresses soft-deletes all of the owner's addresses. It reports true
// when at least one row was removed.
func (s *addressBookService) FlushAddresses(ctx context.Context, owner usecase.Owner) (bool, error) {
	ref := owner.AddressOwner()
	if ref.ID == 0 {
		return false, nil
	}

	count, err := s.addressRepo.SoftDeleteAll(ctx, ref)
	if err != nil {
		return false, fmt.Errorf("failed to flush addresses: %w", err)
	}

	return count > 0, nil
}

// GetAddress picks the owner's best address for a flag.
//
// Selection tiers: a single address always wins; an unrecognized flag or a
// flag no address carries falls back to the first address by insertion
// order; otherwise the flag state at the extreme of direction decides, ties
// broken by insertion order.
func (s *addressBookService) GetAddress(ctx context.Context, owner usecase.Owner, flag, direction string) (*entity.Address, error) {
	if flag == "" {
		flag = defaultFlag
	}
	flag = entity.NormalizeFlag(flag)
	if direction == "" {
		direction = defaultDirection
	}

	addresses, err := s.Addresses(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(addresses) == 0 {
		return nil, nil
	}
	if len(addresses) == 1 {
		return addresses[0], nil
	}

	if !s.addressCfg.HasFlag(flag) {
		return addresses[0], nil
	}

	want := direction != "asc"
	for _, address := range addresses {
		if address.Flag(flag) == want {
			// The asc extreme only exists when some address is flagged at
			// all; otherwise the first-address fallback applies.
			if want || anyFlagged(addresses, flag) {
				return address, nil
			}

			break
		}
	}

	return addresses[0], nil
}

func anyFlagged(addresses []*entity.Address, flag string) bool {
	for _, address := range addresses {
		if address.Flag(flag) {
			return true
		}
	}

	return false
}

// OwnerCreated flushes the pending address queue of a freshly persisted
// owner. Owner lifecycles call it from their post-create hook.
func (s *addressBookService) OwnerCreated(ctx context.Context, owner usecase.Owner) error {
	ref := owner.AddressOwner()
	if ref.ID == 0 {
		return domainerrors.ErrOwnerNotPersisted
	}

	holder, ok := owner.(usecase.PendingAddressHolder)
	if !ok {
		return nil
	}

	for _, attrs := range holder.PendingAddresses().Drain() {
		if _, err := s.store(ctx, ref, attrs); err != nil {
			return fmt.Errorf("failed to flush pending address: %w", err)
		}
	}

	return nil
}

// OwnerDeleted cascades the owner's deletion to its addresses. The flush runs
// in a transaction so it commits or rolls back with the owner's own delete.
func (s *addressBookService) OwnerDeleted(ctx context.Context, owner usecase.Owner) error {
	ref := owner.AddressOwner()
	if ref.ID == 0 {
		return nil
	}

	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewAddressRepository().SoftDeleteAll(ctx, ref); err != nil {
			return fmt.Errorf("failed to flush addresses for deleted owner: %w", err)
		}

		return nil
	})
}

// FindByDistance returns the distinct owners with at least one live, geocoded
// address within distance of the point.
func (s *addressBookService) FindByDistance(ctx context.Context, distance float64, unit entity.DistanceUnit, latitude, longitude float64) ([]usecase.OwnerMatch, error) {
	normalized, err := entity.ParseDistanceUnit(string(unit))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	if distance < 0 {
		return nil, errors.New("distance must not be negative")
	}

	addresses, err := s.addressRepo.FindWithinDistance(ctx, distance, normalized, latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to search addresses by distance: %w", err)
	}

	seen := make(map[entity.OwnerRef]bool, len(addresses))
	matches := make([]usecase.OwnerMatch, 0, len(addresses))

	for _, address := range addresses {
		if !address.HasOwner() {
			continue
		}

		ref := address.OwnerRef()
		if seen[ref] {
			continue
		}
		seen[ref] = true

		resolved, known, err := s.registry.Resolve(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve owner %s: %w", ref, err)
		}
		if !known {
			s.logger.WarnContext(ctx, "no owner loader registered, skipping distance match",
				slog.String("ownerType", ref.Type.String()),
				slog.Uint64("ownerId", ref.ID),
			)

			continue
		}

		matches = append(matches, usecase.OwnerMatch{Ref: ref, Owner: resolved})
	}

	return matches, nil
}

func cloneAddress(address *entity.Address) *entity.Address {
	clone := *address

	if address.Extra != nil {
		clone.Extra = make(map[string]any, len(address.Extra))
		for k, v := range address.Extra {
			clone.Extra[k] = v
		}
	}
	if address.Flags != nil {
		clone.Flags = make(map[string]bool, len(address.Flags))
		for k, v := range address.Flags {
			clone.Flags[k] = v
		}
	}

	return &clone
}
