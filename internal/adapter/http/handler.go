package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"mealmax/internal/app/battle"
	"mealmax/internal/app/kitchen"
	"mealmax/internal/app/leaderboard"
	"mealmax/internal/app/ports"
	"mealmax/internal/domain/meals"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"
)

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

type Handler struct {
	KitchenUC kitchen.UseCase
	BattleUC  battle.UseCase
	BoardUC   leaderboard.UseCase
	KPI       kpiSnapshotProvider
	DBCheck   func(ctx context.Context) error
	Log       *zap.Logger
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())
	if h.Log != nil {
		s.Use(requestLogger(h.Log))
	}

	api := s.Group("/api")
	api.GET("/health", h.health)
	api.GET("/db-check", h.dbCheck)

	api.POST("/create-meal", h.createMeal)
	api.DELETE("/delete-meal/:id", h.deleteMeal)
	api.DELETE("/clear-meals", h.clearMeals)
	api.GET("/get-meal-by-id/:id", h.getMealByID)
	api.GET("/get-meal-by-name/:name", h.getMealByName)

	api.POST("/prep-combatant", h.prepCombatant)
	api.GET("/get-combatants", h.getCombatants)
	api.POST("/clear-combatants", h.clearCombatants)
	api.GET("/battle", h.battle)
	api.GET("/battle-history", h.battleHistory)

	api.GET("/leaderboard", h.leaderboardGet)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) health(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "healthy"})
}

func (h Handler) dbCheck(c context.Context, ctx *app.RequestContext) {
	if h.DBCheck == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "database check not configured")
		return
	}
	if err := h.DBCheck(c); err != nil {
		writeErrorBody(ctx, consts.StatusInternalServerError, "database_unreachable", err.Error())
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"database_status": "healthy"})
}

type createMealRequest struct {
	Meal       string  `json:"meal"`
	Cuisine    string  `json:"cuisine"`
	Price      float64 `json:"price"`
	Difficulty string  `json:"difficulty"`
}

func (h Handler) createMeal(c context.Context, ctx *app.RequestContext) {
	var body createMealRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	meal, err := h.KitchenUC.CreateMeal(c, kitchen.CreateRequest{
		Name:       body.Meal,
		Cuisine:    body.Cuisine,
		Price:      body.Price,
		Difficulty: body.Difficulty,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, map[string]any{
		"status": "success",
		"meal":   meal,
	})
}

func (h Handler) deleteMeal(c context.Context, ctx *app.RequestContext) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_meal_id", "meal id must be an integer")
		return
	}
	if err := h.KitchenUC.DeleteMeal(c, id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"status":  "meal deleted",
		"meal_id": id,
	})
}

func (h Handler) clearMeals(c context.Context, ctx *app.RequestContext) {
	if err := h.KitchenUC.ClearMeals(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"status": "meals cleared"})
}

func (h Handler) getMealByID(c context.Context, ctx *app.RequestContext) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_meal_id", "meal id must be an integer")
		return
	}
	meal, err := h.KitchenUC.GetMealByID(c, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"meal": meal})
}

func (h Handler) getMealByName(c context.Context, ctx *app.RequestContext) {
	meal, err := h.KitchenUC.GetMealByName(c, ctx.Param("name"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"meal": meal})
}

type prepCombatantRequest struct {
	Meal   string `json:"meal,omitempty"`
	MealID int64  `json:"meal_id,omitempty"`
}

func (h Handler) prepCombatant(c context.Context, ctx *app.RequestContext) {
	var body prepCombatantRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	var staged meals.Meal
	var err error
	switch {
	case body.MealID > 0:
		staged, err = h.BattleUC.PrepCombatant(c, body.MealID)
	case strings.TrimSpace(body.Meal) != "":
		staged, err = h.BattleUC.PrepCombatantByName(c, body.Meal)
	default:
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "meal or meal_id is required")
		return
	}
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, map[string]any{
		"status":     "combatant prepped",
		"combatant":  staged.Name,
		"combatants": combatantNames(h.BattleUC.GetCombatants(c)),
	})
}

func (h Handler) getCombatants(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{
		"combatants": h.BattleUC.GetCombatants(c),
	})
}

func (h Handler) clearCombatants(c context.Context, ctx *app.RequestContext) {
	h.BattleUC.ClearCombatants(c)
	ctx.JSON(consts.StatusOK, map[string]string{"status": "combatants cleared"})
}

func (h Handler) battle(c context.Context, ctx *app.RequestContext) {
	winner, err := h.BattleUC.Battle(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{
		"status": "battle complete",
		"winner": winner,
	})
}

func (h Handler) battleHistory(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	records, err := h.BattleUC.History(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"battles": records})
}

func (h Handler) leaderboardGet(c context.Context, ctx *app.RequestContext) {
	entries, err := h.BoardUC.Get(c, string(ctx.Query("sort")))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"status":      "success",
		"leaderboard": entries,
	})
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func combatantNames(staged []meals.Meal) []string {
	names := make([]string, 0, len(staged))
	for _, m := range staged {
		names = append(names, m.Name)
	}
	return names
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	var sortErr *leaderboard.InvalidSortByError
	var priceErr *meals.InvalidPriceError
	var difficultyErr *meals.InvalidDifficultyError
	var statsErr *kitchen.InvalidStatsResultError
	switch {
	case errors.Is(err, meals.ErrCombatantListFull):
		writeErrorBody(ctx, consts.StatusConflict, "combatant_list_full", err.Error())
	case errors.Is(err, meals.ErrInsufficientCombatants):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_combatants", err.Error())
	case errors.As(err, &sortErr):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_sort_by", err.Error())
	case errors.As(err, &priceErr), errors.As(err, &difficultyErr), errors.As(err, &statsErr):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_meal", err.Error())
	case errors.Is(err, kitchen.ErrInvalidRequest),
		errors.Is(err, battle.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
