package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/limbo/habitlog/internal/api"
	"github.com/limbo/habitlog/internal/cache"
	"github.com/limbo/habitlog/internal/repository"
	"github.com/limbo/habitlog/internal/service"
	"github.com/limbo/habitlog/pkg/cleanup"
	"github.com/limbo/habitlog/pkg/config"
	jwtservice "github.com/limbo/habitlog/pkg/jwt_service"
	"github.com/limbo/habitlog/pkg/period"
	"github.com/limbo/habitlog/pkg/progress"
	"github.com/redis/go-redis/v9"
)

func init() {
	service.InitValidator()
}

func setupLogger(cfg *config.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.GetStringOr("LOG_LEVEL", "info"))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.GetString("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func classifierConfig(cfg *config.Config) progress.Config {
	def := progress.DefaultConfig()
	return progress.Config{
		StreakMin:    cfg.GetInt("PROGRESS_STREAK_MIN", def.StreakMin),
		TrendMinLogs: def.TrendMinLogs,
		TrendWindow:  def.TrendWindow,
		TrendDelta:   cfg.GetFloat("PROGRESS_TREND_DELTA", def.TrendDelta),
		GapDays: map[period.Frequency]int{
			period.Daily:   cfg.GetInt("PROGRESS_GAP_DAILY", def.GapDays[period.Daily]),
			period.Weekly:  cfg.GetInt("PROGRESS_GAP_WEEKLY", def.GapDays[period.Weekly]),
			period.Monthly: cfg.GetInt("PROGRESS_GAP_MONTHLY", def.GapDays[period.Monthly]),
		},
	}
}

// setupAuth refuses to sign tokens with an empty secret once a user is configured.
func setupAuth(cfg *config.Config) (*service.AuthService, *jwtservice.JWTService, error) {
	authService := service.NewAuthService(cfg.GetString("AUTH_USER"), cfg.GetString("AUTH_PASSWORD_HASH"))
	secret := cfg.GetString("JWT_SECRET")
	switch {
	case !authService.Enabled():
		slog.Warn("AUTH_USER is not set, API is served without authentication")
	case secret == "":
		return nil, nil, errors.New("JWT_SECRET must be set when AUTH_USER is configured")
	}
	return authService, jwtservice.New(secret, cfg.GetDuration("JWT_TTL", 24*time.Hour)), nil
}

// insightsCache returns nil when redis is not configured.
func insightsCache(ctx context.Context, cfg *config.Config) service.InsightsCacheI {
	addr := cfg.GetString("REDIS_ADDR")
	if addr == "" {
		slog.Info("redis is not configured, insights cache disabled")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetInt("REDIS_DB", 0),
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis is unreachable, insights will be cached once it is up", slog.String("error", err.Error()))
	}
	cleanup.Register(&cleanup.Job{Name: "redis client", F: rdb.Close})
	return cache.NewInsightsCache(rdb, cfg.GetDuration("INSIGHTS_CACHE_TTL", 5*time.Minute))
}

func main() {
	cfg := config.New()
	setupLogger(cfg)
	authService, jwtService, err := setupAuth(cfg)
	if err != nil {
		log.Fatal("Auth config error: " + err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
	pool, err := repository.NewPool(ctx, &dbCfg)
	if err != nil {
		log.Fatal("Database error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{Name: "postgres pool", F: func() error {
		pool.Close()
		return nil
	}})
	if dir := cfg.GetString("MIGRATIONS_DIR"); dir != "" {
		if err := repository.Migrate(pool, dir); err != nil {
			cleanup.CleanUp()
			log.Fatal("Migrations error: " + err.Error())
		}
	}

	habitsRepo := repository.NewHabitsRepo(pool)
	logsRepo := repository.NewHabitLogsRepo(pool)
	insights := insightsCache(ctx, cfg)
	classifier := progress.New(classifierConfig(cfg))
	effective := classifier.Config()
	slog.Info("progress classifier configured",
		slog.Int("streak_min", effective.StreakMin),
		slog.Int("trend_min_logs", effective.TrendMinLogs),
		slog.Int("trend_window", effective.TrendWindow),
		slog.Float64("trend_delta", effective.TrendDelta),
		slog.Any("gap_days", effective.GapDays),
	)

	serv := api.New(&api.ServicesList{
		HabitsService:    service.NewHabitsService(habitsRepo, insights),
		HabitLogsService: service.NewHabitLogsService(habitsRepo, logsRepo, insights),
		InsightsService:  service.NewInsightsService(habitsRepo, logsRepo, classifier, insights),
		AuthService:      authService,
		JwtService:       jwtService,
		DisplayLocation:  cfg.GetLocation("DISPLAY_TIMEZONE"),
	})
	err = serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
