package bracket

import (
	"github.com/jonwraymond/effectops/effect"
)

// Bracket2 acquires two resources in order and exposes them together to the
// use phase. Releases run in strict LIFO order: the second resource is
// released first, and the first resource's release is attempted even when
// the second one's failed.
//
// Bracket2 is the composition of two single-resource brackets, so the error
// shapes compose too: a failure anywhere inside the inner bracket (acquiring
// or releasing the second resource, or the use phase itself) reaches the
// caller as the use failure of the outer bracket. Walk the *Error chain with
// errors.As to recover the individual phase failures.
func Bracket2[Env, R1, R2, T any](
	acquire1 *effect.Effect[Env, R1], release1 Release[R1],
	acquire2 *effect.Effect[Env, R2], release2 Release[R2],
	use func(R1, R2) *effect.Effect[Env, T],
) *effect.Effect[Env, T] {
	return Bracket(acquire1, release1, func(r1 R1) *effect.Effect[Env, T] {
		return Bracket(acquire2, release2, func(r2 R2) *effect.Effect[Env, T] {
			return use(r1, r2)
		})
	})
}

// Bracket3 acquires three resources in order and releases them in strict
// LIFO order, with the same composition semantics as Bracket2.
func Bracket3[Env, R1, R2, R3, T any](
	acquire1 *effect.Effect[Env, R1], release1 Release[R1],
	acquire2 *effect.Effect[Env, R2], release2 Release[R2],
	acquire3 *effect.Effect[Env, R3], release3 Release[R3],
	use func(R1, R2, R3) *effect.Effect[Env, T],
) *effect.Effect[Env, T] {
	return Bracket(acquire1, release1, func(r1 R1) *effect.Effect[Env, T] {
		return Bracket(acquire2, release2, func(r2 R2) *effect.Effect[Env, T] {
			return Bracket(acquire3, release3, func(r3 R3) *effect.Effect[Env, T] {
				return use(r1, r2, r3)
			})
		})
	})
}
