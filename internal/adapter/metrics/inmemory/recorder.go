package inmemory

import (
	"sync"

	"mealmax/internal/domain/meals"
)

type Snapshot struct {
	BattlesTotal    uint64            `json:"battles_total"`
	BattlesRejected uint64            `json:"battles_rejected"`
	WinsByTier      map[string]uint64 `json:"wins_by_difficulty"`
}

// Recorder counts resolved and rejected battles in process memory.
type Recorder struct {
	mu         sync.Mutex
	resolved   uint64
	rejected   uint64
	winsByTier map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		winsByTier: map[string]uint64{},
	}
}

func (r *Recorder) RecordResolved(winnerDifficulty meals.Difficulty) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved++
	r.winsByTier[string(winnerDifficulty)]++
}

func (r *Recorder) RecordRejected() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		BattlesTotal:    r.resolved,
		BattlesRejected: r.rejected,
		WinsByTier:      make(map[string]uint64, len(r.winsByTier)),
	}
	for k, v := range r.winsByTier {
		out.WinsByTier[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
