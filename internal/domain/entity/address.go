// Package entity contains the core business objects of the project.
package entity

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address is the core entity for a postal address. It can be attached to
// different kinds of owners (a user, a company, an order) through the
// polymorphic OwnerType/OwnerID pair, or exist unattached.
type Address struct {
	ID         uint64    // Store-assigned row identifier.
	ExternalID uuid.UUID // Globally unique token, assigned at creation.

	OwnerType OwnerType // The kind of the owning entity; empty when unattached.
	OwnerID   uint64    // The owner's identifier within its kind; zero when unattached.

	Label        string // A user-defined label, e.g. "Home", "Office".
	GivenName    string
	FamilyName   string
	Organization string

	Street      string
	StreetExtra string
	City        string
	Province    string
	PostCode    string
	CountryCode string // ISO 3166-1 alpha-2, upper or lower case.

	Extra map[string]any // Open-ended caller metadata.

	Latitude  *float64 // Decimal degrees, nil when not geocoded.
	Longitude *float64

	Flags map[string]bool // Flag name (without "is_" prefix) to state.

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete marker; set means logically absent.
}

// NormalizeFlag strips the "is_" column prefix so that "primary" and
// "is_primary" name the same flag.
func NormalizeFlag(name string) string {
	return strings.TrimPrefix(name, "is_")
}

// FlagColumn returns the boolean column name for a flag.
func FlagColumn(name string) string {
	if strings.HasPrefix(name, "is_") {
		return name
	}

	return "is_" + name
}

// Flag reports whether the named flag is set on the address.
func (a *Address) Flag(name string) bool {
	return a.Flags[NormalizeFlag(name)]
}

// SetFlag toggles the named flag.
func (a *Address) SetFlag(name string, value bool) {
	if a.Flags == nil {
		a.Flags = make(map[string]bool)
	}
	a.Flags[NormalizeFlag(name)] = value
}

// OwnerRef returns the polymorphic owner reference of the address.
func (a *Address) OwnerRef() OwnerRef {
	return OwnerRef{Type: a.OwnerType, ID: a.OwnerID}
}

// HasOwner reports whether the address is attached to an owner.
func (a *Address) HasOwner() bool {
	return !a.OwnerRef().IsZero()
}

// HasCoordinates reports whether both latitude and longitude are present.
func (a *Address) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// FullName joins the given and family names.
func (a *Address) FullName() string {
	return strings.TrimSpace(a.GivenName + " " + a.FamilyName)
}

// CountryName returns the display name for the address country, or "" when
// the country code is absent or unknown.
func (a *Address) CountryName() string {
	if a.CountryCode == "" {
		return ""
	}

	return CountryName(a.CountryCode)
}

// GeocodeQuery builds the URL-encoded query string handed to the geocoding
// provider. Empty when no addressable fields are set.
func (a *Address) GeocodeQuery() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{a.Street, a.City, a.Province, a.PostCode, a.CountryName()} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return url.QueryEscape(strings.TrimSpace(strings.Join(parts, ",")))
}

// Lines renders the address as a 2-3 line block: street with its extra,
// "city, province", and the country name. Empty lines are omitted.
func (a *Address) Lines() []string {
	street := make([]string, 0, 2)
	if a.Street != "" {
		street = append(street, a.Street)
	}
	if a.StreetExtra != "" {
		street = append(street, a.StreetExtra)
	}

	locality := make([]string, 0, 2)
	if a.City != "" {
		locality = append(locality, a.City+",")
	}
	if a.Province != "" {
		locality = append(locality, a.Province)
	}

	lines := make([]string, 0, 3)
	if len(street) > 0 {
		lines = append(lines, strings.Join(street, ", "))
	}
	if len(locality) > 0 {
		lines = append(lines, strings.Join(locality, " "))
	}
	if name := a.CountryName(); name != "" {
		lines = append(lines, name)
	}

	return lines
}

// Line joins the address block into a single line using the separator.
func (a *Address) Line(separator string) string {
	return strings.Join(a.Lines(), separator)
}

// HTML renders the address block wrapped in an <address> tag, with lines
// separated by <br />. The country line can be left out.
func (a *Address) HTML(withCountry bool) string {
	lines := a.Lines()
	if len(lines) == 0 {
		return ""
	}

	if !withCountry && len(lines) == 3 {
		lines = lines[:len(lines)-1]
	}

	return "<address>" + strings.Join(lines, "<br />") + "</address>"
}
