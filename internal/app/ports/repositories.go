package ports

import (
	"context"
	"time"

	"mealmax/internal/domain/meals"
)

// Stats outcomes accepted by MealRepository.UpdateStats.
const (
	StatsWin  = "win"
	StatsLoss = "loss"
)

// MealRepository persists meals and their battle statistics. Lookups never
// return soft-deleted rows: GetByID/GetByName report ErrDeleted for them,
// every other path behaves as if the row does not exist.
type MealRepository interface {
	Create(ctx context.Context, meal *meals.Meal) error
	GetByID(ctx context.Context, id int64) (meals.Meal, error)
	GetByName(ctx context.Context, name string) (meals.Meal, error)
	SoftDelete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	UpdateStats(ctx context.Context, id int64, result string) error
	Leaderboard(ctx context.Context, sortBy string) ([]LeaderboardEntry, error)
}

type LeaderboardEntry struct {
	Meal    meals.Meal
	Battles int64
	Wins    int64
	WinPct  float64
}

type BattleResultRecord struct {
	ID          string
	WinnerID    int64
	WinnerName  string
	WinnerScore float64
	LoserID     int64
	LoserName   string
	LoserScore  float64
	Draw        float64
	FoughtAt    time.Time
}

type BattleResultRepository interface {
	Save(ctx context.Context, result BattleResultRecord) error
	ListRecent(ctx context.Context, limit int) ([]BattleResultRecord, error)
}
