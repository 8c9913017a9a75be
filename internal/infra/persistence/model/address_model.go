package model

import (
	"time"

	"addrbook/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AddressModel is the GORM-specific struct for the addresses table.
//
// The owner pair is nullable so an address can exist unattached; when set,
// both columns are set together. One boolean column exists per supported
// flag; adding a flag means adding a field here and migrating the schema.
type AddressModel struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	ExternalID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	OwnerType *string `gorm:"type:varchar(255);index:idx_addresses_on_owner"`
	OwnerID   *uint64 `gorm:"index:idx_addresses_on_owner"`

	Label        string `gorm:"type:varchar(150)"`
	GivenName    string `gorm:"type:varchar(150)"`
	FamilyName   string `gorm:"type:varchar(150)"`
	Organization string `gorm:"type:varchar(150)"`

	Street      string `gorm:"type:varchar(255)"`
	StreetExtra string `gorm:"type:varchar(255)"`
	City        string `gorm:"type:varchar(150)"`
	Province    string `gorm:"type:varchar(150)"`
	PostCode    string `gorm:"type:varchar(150)"`
	CountryCode string `gorm:"type:varchar(2)"`

	Extra datatypes.JSONMap `gorm:"type:jsonb"`

	Latitude  *float64 `gorm:"type:decimal(10,7)"`
	Longitude *float64 `gorm:"type:decimal(10,7)"`

	IsPrimary  bool `gorm:"not null;default:false;index"`
	IsBilling  bool `gorm:"not null;default:false;index"`
	IsShipping bool `gorm:"not null;default:false;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the default table name for GORM. Repositories
// override it with the configured name.
func (AddressModel) TableName() string {
	return "addresses"
}

// SupportedFlags maps the flag names this schema can persist to their
// columns, in schema order.
var SupportedFlags = []string{"primary", "billing", "shipping"}

// SupportedFlag reports whether the schema has a column for the flag.
func SupportedFlag(name string) bool {
	for _, flag := range SupportedFlags {
		if flag == name {
			return true
		}
	}

	return false
}

// Flag reads a flag column by name.
func (m *AddressModel) Flag(name string) bool {
	switch name {
	case "primary":
		return m.IsPrimary
	case "billing":
		return m.IsBilling
	case "shipping":
		return m.IsShipping
	default:
		return false
	}
}

// SetFlag writes a flag column by name. Unknown names are ignored; the
// validation layer rejects them before a write reaches the store.
func (m *AddressModel) SetFlag(name string, value bool) {
	switch name {
	case "primary":
		m.IsPrimary = value
	case "billing":
		m.IsBilling = value
	case "shipping":
		m.IsShipping = value
	}
}

// ToDomain converts the GORM model to a domain Address entity.
func (m *AddressModel) ToDomain() *entity.Address {
	if m == nil {
		return nil
	}

	address := &entity.Address{
		ID:           m.ID,
		ExternalID:   m.ExternalID,
		Label:        m.Label,
		GivenName:    m.GivenName,
		FamilyName:   m.FamilyName,
		Organization: m.Organization,
		Street:       m.Street,
		StreetExtra:  m.StreetExtra,
		City:         m.City,
		Province:     m.Province,
		PostCode:     m.PostCode,
		CountryCode:  m.CountryCode,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	if m.OwnerType != nil && m.OwnerID != nil {
		address.OwnerType = entity.OwnerType(*m.OwnerType)
		address.OwnerID = *m.OwnerID
	}

	if m.Extra != nil {
		address.Extra = map[string]any(m.Extra)
	}

	address.Flags = make(map[string]bool, len(SupportedFlags))
	for _, flag := range SupportedFlags {
		address.Flags[flag] = m.Flag(flag)
	}

	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		address.DeletedAt = &deletedAt
	}

	return address
}

// FromDomain converts a domain Address entity to a GORM model.
func FromDomain(address *entity.Address) *AddressModel {
	if address == nil {
		return nil
	}

	m := &AddressModel{
		ID:           address.ID,
		ExternalID:   address.ExternalID,
		Label:        address.Label,
		GivenName:    address.GivenName,
		FamilyName:   address.FamilyName,
		Organization: address.Organization,
		Street:       address.Street,
		StreetExtra:  address.StreetExtra,
		City:         address.City,
		Province:     address.Province,
		PostCode:     address.PostCode,
		CountryCode:  address.CountryCode,
		Latitude:     address.Latitude,
		Longitude:    address.Longitude,
		CreatedAt:    address.CreatedAt,
		UpdatedAt:    address.UpdatedAt,
	}

	if address.HasOwner() {
		ownerType := address.OwnerType.String()
		ownerID := address.OwnerID
		m.OwnerType = &ownerType
		m.OwnerID = &ownerID
	}

	if address.Extra != nil {
		m.Extra = datatypes.JSONMap(address.Extra)
	}

	for name, value := range address.Flags {
		m.SetFlag(entity.NormalizeFlag(name), value)
	}

	if address.DeletedAt != nil {
		m.DeletedAt = gorm.DeletedAt{Time: *address.DeletedAt, Valid: true}
	}

	return m
}
