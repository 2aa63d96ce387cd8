package main

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/MgDark0/wisecar/internal/app"
	"github.com/MgDark0/wisecar/internal/catalog"
	"github.com/MgDark0/wisecar/internal/contact"
	"github.com/MgDark0/wisecar/internal/user"
	"github.com/MgDark0/wisecar/pkg/kit"
)

const provisionTimeout = 30 * time.Second

func main() {
	service := "wisecars"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")

	deps := buildStores(log)

	reg := prometheus.NewRegistry()
	h := app.NewHandler(deps, app.HTTPDeps{
		Log:                log,
		Service:            service,
		Registry:           reg,
		MetricsEnabled:     true,
		MetricsToken:       os.Getenv("METRICS_TOKEN"),
		ContactLimitPerMin: getenvInt(log, "CONTACT_RATE_LIMIT", 10),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func buildStores(log *zap.Logger) app.Deps {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Info("using in-memory stores")
		return app.Deps{
			Cars:     catalog.NewMemStore(),
			Contacts: contact.NewMemStore(),
		}
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatal("open database failed", zap.Error(err))
	}

	cars := catalog.NewPostgresStore(db)
	contacts := contact.NewPostgresStore(db)
	users := user.NewPostgresStore(db)

	ctx, cancel := context.WithTimeout(context.Background(), provisionTimeout)
	defer cancel()

	if err := cars.EnsureSchema(ctx); err != nil {
		log.Fatal("provision cars table failed", zap.Error(err))
	}
	if err := cars.Seed(ctx, catalog.SeedCars()); err != nil {
		log.Fatal("seed cars failed", zap.Error(err))
	}
	if err := contacts.EnsureSchema(ctx); err != nil {
		log.Fatal("provision contact_submissions table failed", zap.Error(err))
	}
	if err := users.EnsureSchema(ctx); err != nil {
		log.Fatal("provision users table failed", zap.Error(err))
	}

	log.Info("using postgres stores")
	return app.Deps{Cars: cars, Contacts: contacts}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(log *zap.Logger, k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn("ignoring bad env value", zap.String("key", k), zap.String("value", v))
		return def
	}
	return n
}
