package memory

import (
	"context"
	"sort"

	"mealmax/internal/app/ports"
)

type BattleResultRepo struct {
	store *Store
}

func NewBattleResultRepo(store *Store) BattleResultRepo {
	return BattleResultRepo{store: store}
}

func (r BattleResultRepo) Save(_ context.Context, result ports.BattleResultRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.results = append(r.store.results, result)
	return nil
}

func (r BattleResultRepo) ListRecent(_ context.Context, limit int) ([]ports.BattleResultRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.BattleResultRecord, len(r.store.results))
	copy(out, r.store.results)
	sort.Slice(out, func(i, j int) bool {
		return out[i].FoughtAt.After(out[j].FoughtAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
