package nn

import "github.com/pkg/errors"

// Configuration errors returned by the constructors in this package.
// Callers match them with errors.Is; the wrapped message carries the detail.
var (
	ErrInvalidConfig     = errors.New("invalid network configuration")
	ErrInvalidActivation = errors.New("invalid activation")
	ErrInvalidNorm       = errors.New("invalid normalization layer")
)

func requirePositive(what string, v int) error {
	if v <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "%s should be a positive integer, got %d", what, v)
	}
	return nil
}

func requireLength(what string, n, depth int) error {
	if n != depth {
		return errors.Wrapf(ErrInvalidConfig, "%s should have depth=%d entries, got %d", what, depth, n)
	}
	return nil
}
