package kitchen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mealmax/internal/app/ports"
	"mealmax/internal/domain/meals"
)

var ErrInvalidRequest = errors.New("invalid meal request")

type MealNotFoundError struct {
	ID   int64
	Name string
}

func (e *MealNotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("Meal with name %s not found", e.Name)
	}
	return fmt.Sprintf("Meal with ID %d not found", e.ID)
}

func (e *MealNotFoundError) Unwrap() error {
	return ports.ErrNotFound
}

type MealDeletedError struct {
	ID   int64
	Name string
}

func (e *MealDeletedError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("Meal with name %s has been deleted", e.Name)
	}
	return fmt.Sprintf("Meal with ID %d has been deleted", e.ID)
}

func (e *MealDeletedError) Unwrap() error {
	return ports.ErrNotFound
}

type DuplicateMealError struct {
	Name string
}

func (e *DuplicateMealError) Error() string {
	return fmt.Sprintf("Meal with name '%s' already exists", e.Name)
}

func (e *DuplicateMealError) Unwrap() error {
	return ports.ErrConflict
}

type InvalidStatsResultError struct {
	Result string
}

func (e *InvalidStatsResultError) Error() string {
	return fmt.Sprintf("Invalid result: %s. Expected 'win' or 'loss'.", e.Result)
}

func (e *InvalidStatsResultError) Unwrap() error {
	return ErrInvalidRequest
}

type CreateRequest struct {
	Name       string
	Cuisine    string
	Price      float64
	Difficulty string
}

type UseCase struct {
	Meals ports.MealRepository
}

// CreateMeal validates the request and inserts a new meal. The meal name is
// unique among non-deleted rows; a clash surfaces as DuplicateMealError.
func (u UseCase) CreateMeal(ctx context.Context, req CreateRequest) (meals.Meal, error) {
	if strings.TrimSpace(req.Name) == "" {
		return meals.Meal{}, ErrInvalidRequest
	}
	if err := meals.ValidatePrice(req.Price); err != nil {
		return meals.Meal{}, err
	}
	difficulty, err := meals.ParseDifficulty(req.Difficulty)
	if err != nil {
		return meals.Meal{}, err
	}

	meal := meals.Meal{
		Name:       req.Name,
		Cuisine:    req.Cuisine,
		Price:      req.Price,
		Difficulty: difficulty,
	}
	if err := u.Meals.Create(ctx, &meal); err != nil {
		if errors.Is(err, ports.ErrConflict) {
			return meals.Meal{}, &DuplicateMealError{Name: req.Name}
		}
		return meals.Meal{}, err
	}
	return meal, nil
}

func (u UseCase) GetMealByID(ctx context.Context, id int64) (meals.Meal, error) {
	meal, err := u.Meals.GetByID(ctx, id)
	switch {
	case errors.Is(err, ports.ErrDeleted):
		return meals.Meal{}, &MealDeletedError{ID: id}
	case errors.Is(err, ports.ErrNotFound):
		return meals.Meal{}, &MealNotFoundError{ID: id}
	case err != nil:
		return meals.Meal{}, err
	}
	return meal, nil
}

func (u UseCase) GetMealByName(ctx context.Context, name string) (meals.Meal, error) {
	if strings.TrimSpace(name) == "" {
		return meals.Meal{}, ErrInvalidRequest
	}
	meal, err := u.Meals.GetByName(ctx, name)
	switch {
	case errors.Is(err, ports.ErrDeleted):
		return meals.Meal{}, &MealDeletedError{Name: name}
	case errors.Is(err, ports.ErrNotFound):
		return meals.Meal{}, &MealNotFoundError{Name: name}
	case err != nil:
		return meals.Meal{}, err
	}
	return meal, nil
}

// DeleteMeal marks a meal deleted. The row stays in place so battle history
// keeps resolving ids, but no lookup returns it afterwards.
func (u UseCase) DeleteMeal(ctx context.Context, id int64) error {
	err := u.Meals.SoftDelete(ctx, id)
	switch {
	case errors.Is(err, ports.ErrDeleted):
		return &MealDeletedError{ID: id}
	case errors.Is(err, ports.ErrNotFound):
		return &MealNotFoundError{ID: id}
	}
	return err
}

// ClearMeals wipes every meal, deleted or not.
func (u UseCase) ClearMeals(ctx context.Context) error {
	return u.Meals.DeleteAll(ctx)
}

// UpdateMealStats bumps battle counters for one meal: a win increments
// battles and wins, a loss increments battles only.
func (u UseCase) UpdateMealStats(ctx context.Context, id int64, result string) error {
	if result != ports.StatsWin && result != ports.StatsLoss {
		return &InvalidStatsResultError{Result: result}
	}
	err := u.Meals.UpdateStats(ctx, id, result)
	switch {
	case errors.Is(err, ports.ErrDeleted):
		return &MealDeletedError{ID: id}
	case errors.Is(err, ports.ErrNotFound):
		return &MealNotFoundError{ID: id}
	}
	return err
}
