package game

import (
	"sync"
	"time"
)

// Progress walks a level item by item. It owns the engine of the current
// item and every timer scheduled against it.
type Progress struct {
	count     int
	newEngine func(index int) *Engine
	scheduler Scheduler

	index  int
	engine *Engine

	// guards the fields below, which timers read from their own goroutine
	mu         sync.Mutex
	generation uint64
	pending    map[uint64]Timer
	nextTimer  uint64
	closed     bool
}

// NewProgress starts at item 0. newEngine builds the engine for an index.
func NewProgress(count int, newEngine func(index int) *Engine, scheduler Scheduler) *Progress {
	if scheduler == nil {
		scheduler = ClockScheduler{}
	}
	p := &Progress{
		count:     count,
		newEngine: newEngine,
		scheduler: scheduler,
		pending:   make(map[uint64]Timer),
	}
	p.engine = newEngine(0)
	return p
}

// Index returns the position of the current item
func (p *Progress) Index() int { return p.index }

// Count returns the number of items in the level
func (p *Progress) Count() int { return p.count }

// Engine returns the engine of the current item
func (p *Progress) Engine() *Engine { return p.engine }

// Generation identifies the current item traversal. It changes whenever the
// item changes or pending work is cancelled.
func (p *Progress) Generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}

// Advance moves to the next item. After the last item it wraps to item 0 and
// reports levelComplete.
func (p *Progress) Advance() (levelComplete bool) {
	p.CancelPending()

	if p.index < p.count-1 {
		p.index++
	} else {
		p.index = 0
		levelComplete = true
	}
	p.engine = p.newEngine(p.index)
	return levelComplete
}

// AdvanceIfCurrent advances only if generation still matches, so a timer
// that fires after the item changed does nothing.
func (p *Progress) AdvanceIfCurrent(generation uint64) (advanced, levelComplete bool) {
	p.mu.Lock()
	stale := p.closed || generation != p.generation
	p.mu.Unlock()
	if stale {
		return false, false
	}
	return true, p.Advance()
}

// ScheduleAdvance arranges for run to be called after d with the generation
// current at scheduling time. run is expected to call AdvanceIfCurrent under
// the caller's own lock.
func (p *Progress) ScheduleAdvance(d time.Duration, run func(generation uint64)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	gen := p.generation
	p.nextTimer++
	id := p.nextTimer
	p.pending[id] = p.scheduler.AfterFunc(d, func() {
		p.mu.Lock()
		delete(p.pending, id)
		p.mu.Unlock()
		run(gen)
	})
}

// Pending returns the number of timers that have not fired or been cancelled
func (p *Progress) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// CancelPending stops every scheduled timer and invalidates the current
// generation
func (p *Progress) CancelPending() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelLocked()
}

// Close cancels pending work. A closed Progress never advances from a timer.
func (p *Progress) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelLocked()
	p.closed = true
}

func (p *Progress) cancelLocked() {
	for id, t := range p.pending {
		t.Stop()
		delete(p.pending, id)
	}
	p.generation++
}
