package ports

import "mealmax/internal/domain/meals"

type BattleMetrics interface {
	RecordResolved(winnerDifficulty meals.Difficulty)
	RecordRejected()
}
