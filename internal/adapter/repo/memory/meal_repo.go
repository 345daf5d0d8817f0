package memory

import (
	"context"
	"sort"

	"mealmax/internal/app/ports"
	"mealmax/internal/domain/meals"
)

type MealRepo struct {
	store *Store
}

func NewMealRepo(store *Store) MealRepo {
	return MealRepo{store: store}
}

func (r MealRepo) Create(_ context.Context, meal *meals.Meal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, row := range r.store.meals {
		if !row.deleted && row.meal.Name == meal.Name {
			return ports.ErrConflict
		}
	}
	meal.ID = r.store.nextID
	r.store.nextID++
	r.store.meals[meal.ID] = mealRow{meal: *meal}
	return nil
}

func (r MealRepo) GetByID(_ context.Context, id int64) (meals.Meal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	row, ok := r.store.meals[id]
	if !ok {
		return meals.Meal{}, ports.ErrNotFound
	}
	if row.deleted {
		return meals.Meal{}, ports.ErrDeleted
	}
	return row.meal, nil
}

func (r MealRepo) GetByName(_ context.Context, name string) (meals.Meal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	deleted := false
	for _, row := range r.store.meals {
		if row.meal.Name != name {
			continue
		}
		if row.deleted {
			deleted = true
			continue
		}
		return row.meal, nil
	}
	if deleted {
		return meals.Meal{}, ports.ErrDeleted
	}
	return meals.Meal{}, ports.ErrNotFound
}

func (r MealRepo) SoftDelete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	row, ok := r.store.meals[id]
	if !ok {
		return ports.ErrNotFound
	}
	if row.deleted {
		return ports.ErrDeleted
	}
	row.deleted = true
	r.store.meals[id] = row
	return nil
}

func (r MealRepo) DeleteAll(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.meals = make(map[int64]mealRow)
	r.store.nextID = 1
	return nil
}

func (r MealRepo) UpdateStats(_ context.Context, id int64, result string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	row, ok := r.store.meals[id]
	if !ok {
		return ports.ErrNotFound
	}
	if row.deleted {
		return ports.ErrDeleted
	}
	row.battles++
	if result == ports.StatsWin {
		row.wins++
	}
	r.store.meals[id] = row
	return nil
}

func (r MealRepo) Leaderboard(_ context.Context, sortBy string) ([]ports.LeaderboardEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.LeaderboardEntry, 0, len(r.store.meals))
	for _, row := range r.store.meals {
		if row.deleted || row.battles == 0 {
			continue
		}
		out = append(out, ports.LeaderboardEntry{
			Meal:    row.meal,
			Battles: row.battles,
			Wins:    row.wins,
			WinPct:  winPct(row.wins, row.battles),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if sortBy == "win_pct" {
			return out[i].WinPct > out[j].WinPct
		}
		return out[i].Wins > out[j].Wins
	})
	return out, nil
}

func winPct(wins, battles int64) float64 {
	if battles == 0 {
		return 0
	}
	pct := float64(wins) / float64(battles) * 1000
	return float64(int64(pct+0.5)) / 10
}
