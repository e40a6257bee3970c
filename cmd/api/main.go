package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "tour_ops/internal/adapters/http_server"
	"tour_ops/internal/adapters/observability"
	"tour_ops/internal/app"
	"tour_ops/internal/auth"
	"tour_ops/internal/shared"
	mysqlrepo "tour_ops/internal/storage/mysql"
	"tour_ops/internal/validation"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	stores := mysqlrepo.NewStores(db)
	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.TokenTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Stores:   stores,
		Teams:    app.NewTeamService(stores),
		Enroll:   app.NewEnrollService(stores.Tourists),
		Auth:     app.NewAuthService(stores.Guides, verifier),
		Catalog:  app.NewCatalogService(stores),
		Verifier: verifier,
		Val:      validation.New(),
		Limiter:  rate.NewLimiter(rate.Limit(cfg.LoginRPS), cfg.LoginRPS),
		PageSize: cfg.PageSize,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
