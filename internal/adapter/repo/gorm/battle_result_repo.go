package gormrepo

import (
	"context"

	"mealmax/internal/adapter/repo/gorm/model"
	"mealmax/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BattleResultRepo struct {
	db *gorm.DB
}

func NewBattleResultRepo(db *gorm.DB) BattleResultRepo {
	return BattleResultRepo{db: db}
}

func (r BattleResultRepo) Save(ctx context.Context, result ports.BattleResultRecord) error {
	row := model.BattleResult{
		ID:          result.ID,
		WinnerID:    result.WinnerID,
		WinnerName:  result.WinnerName,
		WinnerScore: result.WinnerScore,
		LoserID:     result.LoserID,
		LoserName:   result.LoserName,
		LoserScore:  result.LoserScore,
		Draw:        result.Draw,
		FoughtAt:    result.FoughtAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&row).Error
}

func (r BattleResultRepo) ListRecent(ctx context.Context, limit int) ([]ports.BattleResultRecord, error) {
	rows := []model.BattleResult{}
	query := getDBFromCtx(ctx, r.db).Clauses(clause.OrderBy{
		Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "fought_at"}, Desc: true}},
	})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ports.BattleResultRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.BattleResultRecord{
			ID:          row.ID,
			WinnerID:    row.WinnerID,
			WinnerName:  row.WinnerName,
			WinnerScore: row.WinnerScore,
			LoserID:     row.LoserID,
			LoserName:   row.LoserName,
			LoserScore:  row.LoserScore,
			Draw:        row.Draw,
			FoughtAt:    row.FoughtAt,
		})
	}
	return out, nil
}
