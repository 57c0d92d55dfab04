// Package effect defines the execution contract for deferred, fallible
// computations.
//
// An [Effect] is a description of work that may fail, depends on an injected
// environment, and is evaluated exactly once. Nothing happens when an effect
// is constructed; the computation runs when [Effect.Run] is called with an
// environment, and a given effect instance runs at most once.
//
// The package deliberately carries only the small combinator surface the
// resilience layers (retry, bracket) need: pure success/failure constructors,
// [Map]/[MapErr] for transforming outcomes, [Then] for sequencing, and
// [Factory] for producing a fresh effect per retry attempt.
//
// # Environment
//
// The environment is borrowed read-only for the duration of execution. An
// effect must not mutate the environment value itself; mutable state, if
// needed, lives behind the environment (for example a connection pool the
// environment points to) and synchronizes itself.
//
// # Usage
//
//	dial := effect.New(func(ctx context.Context, env *Deps) (*Conn, error) {
//	    return env.Dialer.Dial(ctx, env.Addr)
//	})
//
//	conn, err := dial.Run(ctx, deps)
package effect
