package bracket

import (
	"context"
	"sort"
	"sync"

	"github.com/jonwraymond/effectops/observe"
)

// Tracker records acquired-but-unreleased resource identifiers. It is a
// runtime discipline for call sites that must keep acquires and releases
// balanced: wire Acquired/Released into the bracket's acquire and release
// phases and assert Leaked is empty in tests or shutdown paths.
//
// The tracker observes, it does not enforce: an unbalanced call site still
// runs, and the imbalance shows up in Leaked and the report log.
type Tracker struct {
	mu     sync.Mutex
	open   map[string]int
	logger observe.Logger
}

// NewTracker creates a tracker. The logger may be nil.
func NewTracker(logger observe.Logger) *Tracker {
	return &Tracker{
		open:   make(map[string]int),
		logger: logger,
	}
}

// Acquired records one acquisition of the identified resource.
func (t *Tracker) Acquired(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.open[id]++
}

// Released records one release of the identified resource. Releasing more
// often than acquiring counts negative and is reported by Leaked as well.
func (t *Tracker) Released(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.open[id]--
	if t.open[id] == 0 {
		delete(t.open, id)
	}
}

// Leaked returns the identifiers whose acquire/release counts are
// unbalanced, sorted for stable assertions.
func (t *Tracker) Leaked() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]string, 0, len(t.open))
	for id := range t.open {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Report logs every unbalanced resource and returns how many there were.
// Best-effort: with a nil logger it only counts.
func (t *Tracker) Report(ctx context.Context) int {
	leaked := t.Leaked()
	if t.logger != nil {
		for _, id := range leaked {
			t.logger.Warn(ctx, "resource acquired but never released",
				observe.Field{Key: "resource", Value: id},
			)
		}
	}
	return len(leaked)
}
