package effect

import "errors"

// Sentinel errors for effect execution.
var (
	// ErrConsumed is returned when Run is called on an effect that has
	// already executed. Effects are single-use; reconstruct via the factory
	// or constructor to run the computation again.
	ErrConsumed = errors.New("effect: already consumed")

	// ErrNilEffect is returned when Run is called on a nil effect or an
	// effect built around a nil function.
	ErrNilEffect = errors.New("effect: nil effect")
)
