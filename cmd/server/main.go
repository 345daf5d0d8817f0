package main

import (
	"context"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	httpadapter "mealmax/internal/adapter/http"
	metricsinmem "mealmax/internal/adapter/metrics/inmemory"
	gormrepo "mealmax/internal/adapter/repo/gorm"
	"mealmax/internal/app/battle"
	"mealmax/internal/app/kitchen"
	"mealmax/internal/app/leaderboard"
	"mealmax/internal/domain/meals"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	dsn := strings.TrimSpace(os.Getenv("MEALMAX_DB_DSN"))
	if dsn == "" {
		log.Fatal("MEALMAX_DB_DSN is required")
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatal("open postgres", zap.Error(err))
	}

	applied, err := gormrepo.ApplyMigrations(context.Background(), db, migrationsDir())
	if err != nil {
		log.Fatal("apply migrations", zap.Error(err))
	}
	for _, version := range applied {
		log.Info("migration applied", zap.String("version", version))
	}

	mealRepo := gormrepo.NewMealRepo(db)
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		KitchenUC: kitchen.UseCase{Meals: mealRepo},
		BattleUC: battle.UseCase{
			Arena:   meals.NewArena(),
			Meals:   mealRepo,
			Results: gormrepo.NewBattleResultRepo(db),
			Metrics: kpiRecorder,
			Tx:      gormrepo.NewTxManager(db),
			Random:  rand.Float64,
			Now:     time.Now,
		},
		BoardUC: leaderboard.UseCase{Meals: mealRepo},
		KPI:     kpiRecorder,
		DBCheck: func(context.Context) error { return gormrepo.Ping(db) },
		Log:     log,
	}

	addr := httpAddr()
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Info("mealmax server listening", zap.String("addr", addr))
	s.Spin()
}

func httpAddr() string {
	if addr := strings.TrimSpace(os.Getenv("MEALMAX_HTTP_ADDR")); addr != "" {
		return addr
	}
	return ":8080"
}

func migrationsDir() string {
	if dir := strings.TrimSpace(os.Getenv("MEALMAX_MIGRATIONS_DIR")); dir != "" {
		return dir
	}
	return "./migrations"
}
