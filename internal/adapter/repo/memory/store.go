package memory

import (
	"sync"

	"mealmax/internal/app/ports"
	"mealmax/internal/domain/meals"
)

// mealRow keeps the persistence-only bits (stats, soft-delete flag) next to
// the meal attributes, mirroring the meals table.
type mealRow struct {
	meal    meals.Meal
	battles int64
	wins    int64
	deleted bool
}

type Store struct {
	mu      sync.RWMutex
	nextID  int64
	meals   map[int64]mealRow
	results []ports.BattleResultRecord
}

func NewStore() *Store {
	return &Store{
		nextID: 1,
		meals:  make(map[int64]mealRow),
	}
}

func (s *Store) SeedMeal(meal meals.Meal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meals[meal.ID] = mealRow{meal: meal}
	if meal.ID >= s.nextID {
		s.nextID = meal.ID + 1
	}
}
