package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "github.com/jruizdesign/HotelManagement/internal/adapters/http_server"
	"github.com/jruizdesign/HotelManagement/internal/adapters/observability"
	redisad "github.com/jruizdesign/HotelManagement/internal/adapters/redis"
	"github.com/jruizdesign/HotelManagement/internal/app"
	"github.com/jruizdesign/HotelManagement/internal/domain"
	"github.com/jruizdesign/HotelManagement/internal/shared"
	"github.com/jruizdesign/HotelManagement/internal/storage/memory"
	mysqlrepo "github.com/jruizdesign/HotelManagement/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// persistence collaborator: live MySQL store or the in-memory mock
	var (
		repo  domain.Repository
		cache domain.Cache
	)
	switch cfg.Store {
	case "memory":
		repo = memory.NewSeeded()
		log.Info().Msg("using in-memory store (demo data)")
	default:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		repo = mysqlrepo.New(db)
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	q := app.NewQueryService(repo, cache, cfg.CacheTTL)
	fd := app.NewFrontDeskService(repo, cache)

	// http
	srv := server.New(cfg.RateRPS, cfg.RateBurst)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, FD: fd})

	log.Info().Str("addr", cfg.HTTPAddr).Str("store", cfg.Store).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
