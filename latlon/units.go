package latlon

import (
	"fmt"
	"strings"

	"github.com/a-bouts/geodesy/dms"
)

// Unit is a length unit; its value is the number of metres it holds.
type Unit float64

const (
	Metre        Unit = 1
	Kilometre    Unit = 1000
	Mile         Unit = 1609.344
	NauticalMile Unit = 1852
)

// ToMetres converts v from u to metres.
func (u Unit) ToMetres(v float64) float64 {
	return v * float64(u)
}

// FromMetres converts v from metres to u.
func (u Unit) FromMetres(v float64) float64 {
	return v / float64(u)
}

func (u Unit) String() string {
	switch u {
	case Metre:
		return "m"
	case Kilometre:
		return "km"
	case Mile:
		return "mi"
	case NauticalMile:
		return "nm"
	}
	return fmt.Sprintf("%gm", float64(u))
}

// ParseUnit reads a unit symbol; the empty string is metres.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "m", "metre", "meter", "metres", "meters":
		return Metre, nil
	case "km", "kilometre", "kilometer", "kilometres", "kilometers":
		return Kilometre, nil
	case "mi", "mile", "miles":
		return Mile, nil
	case "nm", "nmi", "nautical-mile", "nautical-miles":
		return NauticalMile, nil
	}
	return 0, fmt.Errorf("%w: unit '%s'", dms.ErrInvalidFormat, s)
}
