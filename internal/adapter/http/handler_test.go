package httpadapter

import (
	"context"
	"encoding/json"
	"testing"

	"mealmax/internal/adapter/repo/memory"
	"mealmax/internal/app/battle"
	"mealmax/internal/app/kitchen"
	"mealmax/internal/app/leaderboard"
	"mealmax/internal/app/ports"
	"mealmax/internal/domain/meals"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func testHandler(r float64) (Handler, *memory.Store) {
	store := memory.NewStore()
	repo := memory.NewMealRepo(store)
	arena := meals.NewArena()
	return Handler{
		KitchenUC: kitchen.UseCase{Meals: repo},
		BattleUC: battle.UseCase{
			Arena:   arena,
			Meals:   repo,
			Results: memory.NewBattleResultRepo(store),
			Random:  func() float64 { return r },
		},
		BoardUC: leaderboard.UseCase{Meals: repo},
	}, store
}

func seedCombatants(t *testing.T, store *memory.Store) {
	t.Helper()
	store.SeedMeal(meals.Meal{ID: 1, Name: "Mac and Cheese", Cuisine: "American", Price: 6.99, Difficulty: meals.DifficultyLow})
	store.SeedMeal(meals.Meal{ID: 2, Name: "Quesadillas", Cuisine: "Mexican", Price: 9.99, Difficulty: meals.DifficultyLow})
}

func postJSON(t *testing.T, fn app.HandlerFunc, body string) *app.RequestContext {
	t.Helper()
	ctx := &app.RequestContext{}
	if body != "" {
		ctx.Request.SetBody([]byte(body))
	}
	fn(context.Background(), ctx)
	return ctx
}

func decodeBody(t *testing.T, ctx *app.RequestContext) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &out); err != nil {
		t.Fatalf("unmarshal response: %v body=%s", err, ctx.Response.Body())
	}
	return out
}

func TestHealth(t *testing.T) {
	h, _ := testHandler(0.5)
	ctx := postJSON(t, h.health, "")
	if ctx.Response.StatusCode() != consts.StatusOK {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	if got := decodeBody(t, ctx)["status"]; got != "healthy" {
		t.Fatalf("status field = %v", got)
	}
}

func TestCreateMeal_Created(t *testing.T) {
	h, _ := testHandler(0.5)
	ctx := postJSON(t, h.createMeal, `{"meal":"Pasta","cuisine":"Italian","price":15.99,"difficulty":"MED"}`)
	if ctx.Response.StatusCode() != consts.StatusCreated {
		t.Fatalf("status = %d body=%s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
}

func TestCreateMeal_BadDifficulty(t *testing.T) {
	h, _ := testHandler(0.5)
	ctx := postJSON(t, h.createMeal, `{"meal":"Pasta","cuisine":"Italian","price":15.99,"difficulty":"EASY"}`)
	if ctx.Response.StatusCode() != consts.StatusBadRequest {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	body := decodeBody(t, ctx)
	errObj := body["error"].(map[string]any)
	if errObj["message"] != "Invalid difficulty level: EASY. Must be 'LOW', 'MED', or 'HIGH'." {
		t.Fatalf("message = %v", errObj["message"])
	}
}

func TestPrepCombatantAndBattle(t *testing.T) {
	h, store := testHandler(0.5)
	seedCombatants(t, store)

	ctx := postJSON(t, h.prepCombatant, `{"meal":"Mac and Cheese"}`)
	if ctx.Response.StatusCode() != consts.StatusOK {
		t.Fatalf("prep status = %d body=%s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	ctx = postJSON(t, h.prepCombatant, `{"meal_id":2}`)
	if ctx.Response.StatusCode() != consts.StatusOK {
		t.Fatalf("prep status = %d body=%s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	ctx = postJSON(t, h.prepCombatant, `{"meal_id":1}`)
	if ctx.Response.StatusCode() != consts.StatusConflict {
		t.Fatalf("third prep status = %d", ctx.Response.StatusCode())
	}
	errObj := decodeBody(t, ctx)["error"].(map[string]any)
	if errObj["message"] != "Combatant list is full, cannot add more combatants." {
		t.Fatalf("message = %v", errObj["message"])
	}

	ctx = postJSON(t, h.battle, "")
	if ctx.Response.StatusCode() != consts.StatusOK {
		t.Fatalf("battle status = %d body=%s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	if got := decodeBody(t, ctx)["winner"]; got != "Mac and Cheese" {
		t.Fatalf("winner = %v", got)
	}

	ctx = postJSON(t, h.getCombatants, "")
	combatants := decodeBody(t, ctx)["combatants"].([]any)
	if len(combatants) != 1 {
		t.Fatalf("combatants after battle = %d, want 1", len(combatants))
	}
}

func TestBattle_WithoutCombatants(t *testing.T) {
	h, _ := testHandler(0.5)
	ctx := postJSON(t, h.battle, "")
	if ctx.Response.StatusCode() != consts.StatusConflict {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	errObj := decodeBody(t, ctx)["error"].(map[string]any)
	if errObj["message"] != "Two combatants must be prepped for a battle." {
		t.Fatalf("message = %v", errObj["message"])
	}
}

func TestPrepCombatant_MissingFields(t *testing.T) {
	h, _ := testHandler(0.5)
	ctx := postJSON(t, h.prepCombatant, `{}`)
	if ctx.Response.StatusCode() != consts.StatusBadRequest {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
}

func TestWriteError_NotFound(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, &kitchen.MealNotFoundError{ID: 999})
	if ctx.Response.StatusCode() != consts.StatusNotFound {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"]["message"] != "Meal with ID 999 not found" {
		t.Fatalf("message = %q", body["error"]["message"])
	}
}

func TestWriteError_InvalidSortBy(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, &leaderboard.InvalidSortByError{SortBy: "invalid_sort"})
	if ctx.Response.StatusCode() != consts.StatusBadRequest {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
}

func TestWriteError_UnknownErrorIsInternal(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, context.DeadlineExceeded)
	if ctx.Response.StatusCode() != consts.StatusInternalServerError {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
}

func TestWriteError_Conflict(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, &kitchen.DuplicateMealError{Name: "Pasta"})
	if ctx.Response.StatusCode() != consts.StatusConflict {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
}

var _ ports.MealRepository = memory.MealRepo{}
