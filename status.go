package primecount

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/VividCortex/ewma"
	"github.com/jedisct1/dlog"
)

// Progress printing is off by default; the phi escape hatch and the
// library entrypoints that feed other terms keep it off so that only
// the outermost computation reports.
var printStatus atomic.Bool

// SetPrint enables or disables progress reporting on standard error.
func SetPrint(enabled bool) {
	printStatus.Store(enabled)
}

func isPrint() bool {
	return printStatus.Load()
}

const statusInterval = 2 * time.Second

// status reports the percentage of processed outer-loop indices of a
// parallel region. Workers call Tick; a single goroutine-independent
// rate estimate is kept with an exponentially weighted moving average,
// and at most one line is printed per interval.
type status struct {
	name    string
	total   int64
	done    atomic.Int64
	mu      sync.Mutex
	last    time.Time
	lastN   int64
	rate    ewma.MovingAverage
	started time.Time
}

func newStatus(name string, total int64) *status {
	return &status{
		name:    name,
		total:   max(total, 1),
		rate:    ewma.NewMovingAverage(),
		last:    time.Now(),
		started: time.Now(),
	}
}

// Tick records n finished indices and occasionally prints progress.
// Printing failures are ignored; reporting is best effort.
func (s *status) Tick(n int64) {
	done := s.done.Add(n)
	if !isPrint() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	elapsed := now.Sub(s.last)
	if elapsed < statusInterval {
		return
	}
	s.rate.Add(float64(done-s.lastN) / elapsed.Seconds())
	s.last = now
	s.lastN = done
	pct := 100 * float64(done) / float64(s.total)
	if rate := s.rate.Value(); rate > 0 {
		eta := time.Duration(float64(s.total-done)/rate) * time.Second
		dlog.Noticef("%s: %.1f%% (eta %s)", s.name, pct, eta.Round(time.Second))
	} else {
		dlog.Noticef("%s: %.1f%%", s.name, pct)
	}
}
