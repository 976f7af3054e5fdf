package game

import (
	"fmt"
	"time"
)

// The round timer is one goroutine per playing stretch, delivering ticks
// through the same mutex as every other intent. A guess racing a
// zero-crossing tick is therefore ordered by lock acquisition, never by
// wall-clock simultaneity. The generation counter fences goroutines left
// over from a previous round or a closed room.

func (r *Room) startTimerLocked() {
	r.timerGen++
	go r.runTimer(r.timerGen)
}

func (r *Room) runTimer(gen int) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		if !r.tick(gen) {
			return
		}
	}
}

// tick applies one second of countdown. It reports whether the timer
// goroutine should keep running.
func (r *Room) tick(gen int) bool {
	r.mu.Lock()
	if r.closed || r.timerGen != gen || r.status != StatusPlaying {
		r.mu.Unlock()
		return false
	}
	r.applyTickLocked()
	keep := r.status == StatusPlaying
	r.mu.Unlock()
	r.notifyAll()
	return keep
}

// Tick applies a single externally-driven countdown step. Exposed so the
// transition can be driven deterministically; a tick against a room that
// is not playing, or already at zero, is a no-op.
func (r *Room) Tick() (Snapshot, bool) {
	r.mu.Lock()
	if r.closed || r.status != StatusPlaying || r.timeLeft == 0 {
		snap := r.snapshotLocked("")
		r.mu.Unlock()
		return snap, false
	}
	r.applyTickLocked()
	snap := r.snapshotLocked("")
	r.mu.Unlock()
	r.notifyAll()
	return snap, true
}

func (r *Room) applyTickLocked() {
	if r.timeLeft > 0 {
		r.timeLeft--
	}
	if r.timeLeft == 0 {
		r.status = StatusRoundEnded
		r.appendSystemLocked(fmt.Sprintf("Time's up! The word was %q", r.currentWord))
	}
}
