package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/jruizdesign/HotelManagement/internal/adapters/observability"
	"github.com/jruizdesign/HotelManagement/internal/domain"
	"github.com/jruizdesign/HotelManagement/internal/shared"
	mysqlrepo "github.com/jruizdesign/HotelManagement/internal/storage/mysql"
)

// Provisions the demo property into MySQL: rooms and guests concurrently,
// then the boot log entry. Safe to re-run; room and guest writes are upserts.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("rooms", len(shared.SeedRooms)).
		Int("guests", len(shared.SeedGuests)).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, r := range shared.SeedRooms {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func(room domain.Room) {
			defer wg.Done()
			defer sem.Release(1)
			if err := repo.UpsertRoom(ctx, room); err != nil {
				log.Warn().Int64("id", room.ID).Err(err).Msg("room upsert failed")
				return
			}
			log.Info().Int64("id", room.ID).Str("status", string(room.Status)).Msg("room ok")
		}(r)
	}
	wg.Wait()

	for _, g := range shared.SeedGuests {
		if err := repo.UpsertGuest(ctx, g); err != nil {
			log.Warn().Int64("id", g.ID).Err(err).Msg("guest upsert failed")
		}
	}

	if err := repo.AppendLog(ctx, domain.ActionSystemInit, "Database connection established (MySQL)"); err != nil {
		log.Warn().Err(err).Msg("boot log append failed")
	}

	log.Info().Msg("seeding completed")
}
