package main

import (
	"log"
	"net/http"
	"time"

	"fleet-waitlist/backend/internal/access"
	"fleet-waitlist/backend/internal/api"
	"fleet-waitlist/backend/internal/common"
	"fleet-waitlist/backend/internal/config"
	"fleet-waitlist/backend/internal/db"
	"fleet-waitlist/backend/internal/logging"
	"fleet-waitlist/backend/internal/metrics"
	"fleet-waitlist/backend/internal/routes"
	"fleet-waitlist/backend/internal/typedb"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Fleet waitlist backend starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	if cfg.Auth.JWTSecret == "" {
		logging.Fatal("JWT_SECRET must be set")
	}

	types, err := typedb.New()
	if cfg.HullsFile != "" {
		types, err = typedb.Load(cfg.HullsFile)
	}
	if err != nil {
		logging.Fatal("Failed to load hull table", "error", err.Error())
	}

	roles, err := access.New()
	if cfg.RolesFile != "" {
		roles, err = access.Load(cfg.RolesFile)
	}
	if err != nil {
		logging.Fatal("Failed to load role table", "error", err.Error())
	}
	logging.Info("Loaded data tables", "hulls", types.Len(), "roles", len(roles.Roles()))

	// Connect to DB with sqlx
	sqlDB, err := db.InitPostgres(cfg.Postgres.DSN())
	if err != nil {
		logging.Fatal("Failed to connect to Postgres (sqlx)", "error", err.Error())
	}
	logging.Info("Connected to Postgres (sqlx)")

	// GORM shares the sqlx pool
	gormDB, err := db.InitPostgresORM(sqlDB)
	if err != nil {
		logging.Fatal("Failed to connect to Postgres (GORM)", "error", err.Error())
	}
	logging.Info("Connected to Postgres (GORM)")

	var cache common.CacheInterface
	if cfg.Redis.Enabled() {
		cache = common.NewRedisCacheService(common.NewRedisClient(cfg.Redis))
	} else {
		cache = common.NewCacheService(cfg.Auth.AccessCacheTTL, 10*time.Minute)
	}
	defer cache.Close()
	logging.Info("Cache initialized", "backend", cache.Name())

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)
	deps := api.InitDependencies(cfg, sqlDB, gormDB, cache, types, roles, metricsReg)
	router := routes.RegisterRoutes(cfg, deps)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router) // Mount Chi router at root
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	logging.Info("Server starting",
		"addr", cfg.HTTPAddr,
		"environment", cfg.AppEnv,
	)

	if err := http.ListenAndServe(cfg.HTTPAddr, mux); err != nil {
		logging.Fatal("Server stopped", "error", err.Error())
	}
}
