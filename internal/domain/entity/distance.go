package entity

import "fmt"

// DistanceUnit selects the unit for geo-radius queries.
type DistanceUnit string

const (
	// UnitMiles measures distance in statute miles.
	UnitMiles DistanceUnit = "mi"
	// UnitKilometers measures distance in kilometers.
	UnitKilometers DistanceUnit = "km"
)

// Mean earth radius in each supported unit, used by the great-circle formula.
const (
	earthRadiusMiles      = 3959.0
	earthRadiusKilometers = 6371.0
)

// EarthRadius returns the mean earth radius expressed in the unit.
func (u DistanceUnit) EarthRadius() float64 {
	if u == UnitKilometers {
		return earthRadiusKilometers
	}

	return earthRadiusMiles
}

// IsValid reports whether the unit is one of the supported values.
func (u DistanceUnit) IsValid() bool {
	return u == UnitMiles || u == UnitKilometers
}

// ParseDistanceUnit accepts the short and long spellings of both units.
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	switch s {
	case "mile", "miles":
		return UnitMiles, nil
	case "kilometer", "kilometers":
		return UnitKilometers, nil
	}

	if unit := DistanceUnit(s); unit.IsValid() {
		return unit, nil
	}

	return "", fmt.Errorf("unknown distance unit: %q", s)
}
