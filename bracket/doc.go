// Package bracket implements the acquire/use/release resource-safety
// protocol for effects.
//
// A bracket runs an acquire effect, lends the acquired resource to a use
// phase, and always runs the release function afterwards, on every exit path
// of the use phase. The two failure channels stay distinguishable: a use
// failure, a cleanup failure, and the dual-failure case each map to a
// distinct shape of [*Error], so a cleanup failure can never silently mask a
// use failure or vice versa.
//
// # Phases
//
//   - Acquire fails: neither use nor release runs, and the acquire error is
//     returned directly — there is no resource to clean up, so it is not
//     wrapped in [*Error].
//   - Use fails: release still runs exactly once, then [*Error] reports the
//     use failure (and the cleanup failure too, if release also failed).
//   - Use succeeds: release runs; a release failure surfaces as a cleanup
//     [*Error].
//
// # Multiple resources
//
// [Bracket2] and [Bracket3] nest single-resource brackets: acquisitions
// proceed outer-to-inner and releases strictly inner-to-outer (LIFO). Every
// release is attempted even when a later-acquired resource's release has
// already failed; failures accumulate through the nested [*Error] chain
// rather than short-circuiting mid-teardown.
//
// [Builder] accumulates any number of same-typed resources fluently and
// releases them all in LIFO order, joining teardown failures.
//
// # Usage
//
//	eff := bracket.Bracket(
//	    openFile,
//	    func(ctx context.Context, f *os.File) error { return f.Close() },
//	    func(f *os.File) *effect.Effect[Deps, []byte] {
//	        return readAll(f)
//	    },
//	)
//	data, err := eff.Run(ctx, deps)
package bracket
