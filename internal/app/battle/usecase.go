package battle

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"mealmax/internal/app/ports"
	"mealmax/internal/domain/meals"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid battle request")

// UseCase drives one battle session. The arena is plain in-memory state
// with no locking; concurrent sessions need their own UseCase each.
type UseCase struct {
	Arena   *meals.Arena
	Meals   ports.MealRepository
	Results ports.BattleResultRepository
	Metrics ports.BattleMetrics
	Tx      ports.TxManager
	Random  func() float64
	Now     func() time.Time
}

// PrepCombatant stages a meal looked up by id for the next battle.
func (u UseCase) PrepCombatant(ctx context.Context, mealID int64) (meals.Meal, error) {
	if mealID <= 0 {
		return meals.Meal{}, ErrInvalidRequest
	}
	meal, err := u.Meals.GetByID(ctx, mealID)
	if err != nil {
		return meals.Meal{}, err
	}
	if err := u.Arena.Stage(meal); err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordRejected()
		}
		return meals.Meal{}, err
	}
	return meal, nil
}

// PrepCombatantByName stages a meal looked up by its unique name.
func (u UseCase) PrepCombatantByName(ctx context.Context, name string) (meals.Meal, error) {
	if name == "" {
		return meals.Meal{}, ErrInvalidRequest
	}
	meal, err := u.Meals.GetByName(ctx, name)
	if err != nil {
		return meals.Meal{}, err
	}
	if err := u.Arena.Stage(meal); err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordRejected()
		}
		return meals.Meal{}, err
	}
	return meal, nil
}

func (u UseCase) ClearCombatants(_ context.Context) {
	u.Arena.Clear()
}

func (u UseCase) GetCombatants(_ context.Context) []meals.Meal {
	return u.Arena.Combatants()
}

// Battle resolves the staged pair: one random draw, winner decided by the
// normalized score gap, stats reported for both sides and the loser evicted
// from the arena. Returns the winner's name. Stats or history errors
// propagate as-is; the arena mutation is not rolled back.
func (u UseCase) Battle(ctx context.Context) (string, error) {
	randFn := u.Random
	if randFn == nil {
		randFn = rand.Float64
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	out, err := u.Arena.Resolve(randFn)
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordRejected()
		}
		return "", err
	}

	report := func(txCtx context.Context) error {
		if err := u.Meals.UpdateStats(txCtx, out.Winner.ID, ports.StatsWin); err != nil {
			return err
		}
		if err := u.Meals.UpdateStats(txCtx, out.Loser.ID, ports.StatsLoss); err != nil {
			return err
		}
		if u.Results == nil {
			return nil
		}
		record := ports.BattleResultRecord{
			ID:          uuid.NewString(),
			WinnerID:    out.Winner.ID,
			WinnerName:  out.Winner.Name,
			WinnerScore: out.WinnerScore,
			LoserID:     out.Loser.ID,
			LoserName:   out.Loser.Name,
			LoserScore:  out.LoserScore,
			Draw:        out.Draw,
			FoughtAt:    nowFn(),
		}
		if err := u.Results.Save(txCtx, record); err != nil {
			return fmt.Errorf("save battle result: %w", err)
		}
		return nil
	}

	if u.Tx != nil {
		err = u.Tx.RunInTx(ctx, report)
	} else {
		err = report(ctx)
	}
	if err != nil {
		return "", err
	}

	if u.Metrics != nil {
		u.Metrics.RecordResolved(out.Winner.Difficulty)
	}
	return out.Winner.Name, nil
}

// History lists recently resolved battles, newest first.
func (u UseCase) History(ctx context.Context, limit int) ([]ports.BattleResultRecord, error) {
	if u.Results == nil {
		return nil, nil
	}
	return u.Results.ListRecent(ctx, limit)
}
