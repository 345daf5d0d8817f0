package leaderboard

import (
	"context"
	"fmt"

	"mealmax/internal/app/ports"
)

const (
	SortByWins   = "wins"
	SortByWinPct = "win_pct"
)

type InvalidSortByError struct {
	SortBy string
}

func (e *InvalidSortByError) Error() string {
	return fmt.Sprintf("Invalid sort_by parameter: %s", e.SortBy)
}

type Entry struct {
	ID         int64   `json:"id"`
	Meal       string  `json:"meal"`
	Cuisine    string  `json:"cuisine"`
	Price      float64 `json:"price"`
	Difficulty string  `json:"difficulty"`
	Battles    int64   `json:"battles"`
	Wins       int64   `json:"wins"`
	WinPct     float64 `json:"win_pct"`
}

type UseCase struct {
	Meals ports.MealRepository
}

// Get returns battle-tested meals ranked by wins or win percentage. Meals
// that never fought are omitted. An empty sortBy defaults to wins.
func (u UseCase) Get(ctx context.Context, sortBy string) ([]Entry, error) {
	if sortBy == "" {
		sortBy = SortByWins
	}
	if sortBy != SortByWins && sortBy != SortByWinPct {
		return nil, &InvalidSortByError{SortBy: sortBy}
	}

	rows, err := u.Meals.Leaderboard(ctx, sortBy)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, Entry{
			ID:         row.Meal.ID,
			Meal:       row.Meal.Name,
			Cuisine:    row.Meal.Cuisine,
			Price:      row.Meal.Price,
			Difficulty: string(row.Meal.Difficulty),
			Battles:    row.Battles,
			Wins:       row.Wins,
			WinPct:     row.WinPct,
		})
	}
	return out, nil
}
