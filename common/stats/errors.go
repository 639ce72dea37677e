package stats

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfiguration is returned on construction with a capacity below 1.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrEmptyWindow is returned by window queries while the window holds no sample.
	ErrEmptyWindow = errors.New("empty window")
	// ErrInsufficientSamples is returned by running queries below the required count.
	ErrInsufficientSamples = errors.New("insufficient samples")
)

func validateCapacity(capacity int) error {
	if capacity < 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "capacity must be at least 1, got %d", capacity)
	}
	return nil
}
