package bracket

import (
	"context"
	"testing"

	"github.com/jonwraymond/effectops/effect"
)

func BenchmarkBracket(b *testing.B) {
	ctx := context.Background()
	for b.Loop() {
		eff := Bracket(
			effect.Value[testEnv](res{id: "a"}),
			func(ctx context.Context, r res) error { return nil },
			func(r res) *effect.Effect[testEnv, string] {
				return effect.Value[testEnv](r.id)
			},
		)
		if _, err := eff.Run(ctx, testEnv{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuilder_ThreeResources(b *testing.B) {
	ctx := context.Background()
	release := func(ctx context.Context, r res) error { return nil }
	for b.Loop() {
		eff := UseAll(
			NewBuilder(effect.Value[testEnv](res{id: "a"}), release).
				And(effect.Value[testEnv](res{id: "b"}), release).
				And(effect.Value[testEnv](res{id: "c"}), release),
			func(rs []res) *effect.Effect[testEnv, int] {
				return effect.Value[testEnv](len(rs))
			},
		)
		if _, err := eff.Run(ctx, testEnv{}); err != nil {
			b.Fatal(err)
		}
	}
}
