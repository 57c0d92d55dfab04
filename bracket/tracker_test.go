package bracket

import (
	"context"
	"testing"

	"github.com/jonwraymond/effectops/effect"
)

func TestTracker_BalancedIsClean(t *testing.T) {
	tr := NewTracker(nil)

	tr.Acquired("conn-1")
	tr.Acquired("conn-2")
	tr.Released("conn-1")
	tr.Released("conn-2")

	if leaked := tr.Leaked(); len(leaked) != 0 {
		t.Errorf("Leaked() = %v, want empty", leaked)
	}
	if n := tr.Report(context.Background()); n != 0 {
		t.Errorf("Report() = %d, want 0", n)
	}
}

func TestTracker_LeakDetected(t *testing.T) {
	tr := NewTracker(nil)

	tr.Acquired("conn-1")
	tr.Acquired("conn-2")
	tr.Released("conn-1")

	leaked := tr.Leaked()
	if len(leaked) != 1 || leaked[0] != "conn-2" {
		t.Errorf("Leaked() = %v, want [conn-2]", leaked)
	}
}

func TestTracker_DoubleReleaseDetected(t *testing.T) {
	tr := NewTracker(nil)

	tr.Acquired("conn-1")
	tr.Released("conn-1")
	tr.Released("conn-1")

	leaked := tr.Leaked()
	if len(leaked) != 1 || leaked[0] != "conn-1" {
		t.Errorf("Leaked() = %v, want [conn-1]", leaked)
	}
}

func TestTracker_LeakedIsSorted(t *testing.T) {
	tr := NewTracker(nil)

	tr.Acquired("z")
	tr.Acquired("a")
	tr.Acquired("m")

	leaked := tr.Leaked()
	want := []string{"a", "m", "z"}
	if len(leaked) != len(want) {
		t.Fatalf("Leaked() = %v, want %v", leaked, want)
	}
	for i := range want {
		if leaked[i] != want[i] {
			t.Fatalf("Leaked() = %v, want %v", leaked, want)
		}
	}
}

func TestTracker_ReportLogsEachLeak(t *testing.T) {
	logger := &recordingLogger{}
	tr := NewTracker(logger)

	tr.Acquired("conn-1")
	tr.Acquired("conn-2")

	if n := tr.Report(context.Background()); n != 2 {
		t.Errorf("Report() = %d, want 2", n)
	}
	if len(logger.msgs) != 2 {
		t.Errorf("logged %d messages, want 2", len(logger.msgs))
	}
}

func TestTracker_WiredIntoBracket(t *testing.T) {
	tr := NewTracker(nil)

	eff := Bracket(
		effect.New(func(ctx context.Context, env testEnv) (res, error) {
			tr.Acquired("conn-1")
			return res{id: "conn-1"}, nil
		}),
		func(ctx context.Context, r res) error {
			tr.Released(r.id)
			return nil
		},
		func(r res) *effect.Effect[testEnv, string] {
			return effect.Value[testEnv]("ok")
		},
	)

	if _, err := eff.Run(context.Background(), testEnv{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if leaked := tr.Leaked(); len(leaked) != 0 {
		t.Errorf("Leaked() = %v, want empty", leaked)
	}
}
