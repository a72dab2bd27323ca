package tensor

import "github.com/pkg/errors"

// InterpMode selects the spatial resampling rule used by Interpolate.
type InterpMode int

// Supported interpolation modes.
const (
	Nearest InterpMode = iota
	Bilinear
)

// String returns the mode name as accepted by ParseInterpMode.
func (m InterpMode) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}

// ParseInterpMode maps a mode name to an InterpMode.
func ParseInterpMode(name string) (InterpMode, error) {
	switch name {
	case "nearest":
		return Nearest, nil
	case "bilinear":
		return Bilinear, nil
	default:
		return 0, errors.Errorf("interpolation mode should be one of [nearest bilinear], got %q", name)
	}
}
