package imagetext

import (
	"math"
	"sync"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
)

// progressGate serializes progress callbacks, drops regressions and stops
// forwarding once the extraction has settled.
type progressGate struct {
	mu     sync.Mutex
	fn     domain.ProgressFunc
	last   float64
	closed bool
}

func newProgressGate(fn domain.ProgressFunc) *progressGate {
	return &progressGate{fn: fn, last: -1}
}

func (g *progressGate) report(stage string, fraction float64) {
	if g.fn == nil || math.IsNaN(fraction) {
		return
	}
	fraction = min(max(fraction, 0), 1)

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || fraction < g.last {
		return
	}
	g.last = fraction

	defer func() {
		_ = recover()
	}()
	g.fn(stage, fraction)
}

func (g *progressGate) close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
}
