package gormrepo

import (
	"context"
	"errors"
	"math"
	"strings"

	"mealmax/internal/adapter/repo/gorm/model"
	"mealmax/internal/app/ports"
	"mealmax/internal/domain/meals"

	"gorm.io/gorm"
)

type MealRepo struct {
	db *gorm.DB
}

func NewMealRepo(db *gorm.DB) MealRepo {
	return MealRepo{db: db}
}

func (r MealRepo) Create(ctx context.Context, meal *meals.Meal) error {
	row := model.Meal{
		Meal:       meal.Name,
		Cuisine:    meal.Cuisine,
		Price:      meal.Price,
		Difficulty: string(meal.Difficulty),
	}
	if err := getDBFromCtx(ctx, r.db).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	meal.ID = row.ID
	return nil
}

func (r MealRepo) GetByID(ctx context.Context, id int64) (meals.Meal, error) {
	var row model.Meal
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return meals.Meal{}, ports.ErrNotFound
		}
		return meals.Meal{}, err
	}
	if row.Deleted {
		return meals.Meal{}, ports.ErrDeleted
	}
	return toDomainMeal(row), nil
}

func (r MealRepo) GetByName(ctx context.Context, name string) (meals.Meal, error) {
	var row model.Meal
	if err := getDBFromCtx(ctx, r.db).Where("meal = ?", name).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return meals.Meal{}, ports.ErrNotFound
		}
		return meals.Meal{}, err
	}
	if row.Deleted {
		return meals.Meal{}, ports.ErrDeleted
	}
	return toDomainMeal(row), nil
}

func (r MealRepo) SoftDelete(ctx context.Context, id int64) error {
	db := getDBFromCtx(ctx, r.db)
	var row model.Meal
	if err := db.Select("id", "deleted").Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ErrNotFound
		}
		return err
	}
	if row.Deleted {
		return ports.ErrDeleted
	}
	return db.Model(&model.Meal{}).Where("id = ?", id).Update("deleted", true).Error
}

func (r MealRepo) DeleteAll(ctx context.Context) error {
	// CASCADE also clears battle_results, which reference meals.
	return getDBFromCtx(ctx, r.db).Exec("TRUNCATE TABLE meals RESTART IDENTITY CASCADE").Error
}

func (r MealRepo) UpdateStats(ctx context.Context, id int64, result string) error {
	db := getDBFromCtx(ctx, r.db)
	var row model.Meal
	if err := db.Select("id", "deleted").Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ErrNotFound
		}
		return err
	}
	if row.Deleted {
		return ports.ErrDeleted
	}

	updates := map[string]any{"battles": gorm.Expr("battles + 1")}
	if result == ports.StatsWin {
		updates["wins"] = gorm.Expr("wins + 1")
	}
	return db.Model(&model.Meal{}).Where("id = ?", id).Updates(updates).Error
}

func (r MealRepo) Leaderboard(ctx context.Context, sortBy string) ([]ports.LeaderboardEntry, error) {
	order := "wins DESC"
	if sortBy == "win_pct" {
		order = "(wins * 1.0 / battles) DESC"
	}

	rows := []model.Meal{}
	err := getDBFromCtx(ctx, r.db).
		Where("deleted = ? AND battles > 0", false).
		Order(order).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ports.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.LeaderboardEntry{
			Meal:    toDomainMeal(row),
			Battles: row.Battles,
			Wins:    row.Wins,
			WinPct:  winPct(row.Wins, row.Battles),
		})
	}
	return out, nil
}

func toDomainMeal(row model.Meal) meals.Meal {
	return meals.Meal{
		ID:         row.ID,
		Name:       row.Meal,
		Cuisine:    row.Cuisine,
		Price:      row.Price,
		Difficulty: meals.Difficulty(row.Difficulty),
	}
}

// winPct is the win rate as a percentage rounded to one decimal.
func winPct(wins, battles int64) float64 {
	if battles == 0 {
		return 0
	}
	return math.Round(float64(wins)/float64(battles)*1000) / 10
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
