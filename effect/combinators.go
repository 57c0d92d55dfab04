package effect

import "context"

// Value returns an effect that succeeds immediately with v.
func Value[Env, T any](v T) *Effect[Env, T] {
	return New(func(context.Context, Env) (T, error) {
		return v, nil
	})
}

// Error returns an effect that fails immediately with err.
func Error[Env, T any](err error) *Effect[Env, T] {
	return New(func(context.Context, Env) (T, error) {
		var zero T
		return zero, err
	})
}

// Map returns an effect that runs e and transforms a successful value with fn.
// Errors pass through unchanged.
func Map[Env, T, U any](e *Effect[Env, T], fn func(T) U) *Effect[Env, U] {
	return New(func(ctx context.Context, env Env) (U, error) {
		v, err := e.Run(ctx, env)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v), nil
	})
}

// MapErr returns an effect that runs e and transforms a failure with fn.
// Successful values pass through unchanged.
func MapErr[Env, T any](e *Effect[Env, T], fn func(error) error) *Effect[Env, T] {
	return New(func(ctx context.Context, env Env) (T, error) {
		v, err := e.Run(ctx, env)
		if err != nil {
			return v, fn(err)
		}
		return v, nil
	})
}

// Then sequences two effects: it runs e and, on success, runs the effect
// produced from its value. A failure in e short-circuits.
func Then[Env, T, U any](e *Effect[Env, T], fn func(T) *Effect[Env, U]) *Effect[Env, U] {
	return New(func(ctx context.Context, env Env) (U, error) {
		v, err := e.Run(ctx, env)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v).Run(ctx, env)
	})
}
