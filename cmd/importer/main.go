package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"orient_insight/internal/adapters/backend"
	"orient_insight/internal/adapters/observability"
	redisad "orient_insight/internal/adapters/redis"
	"orient_insight/internal/app"
	"orient_insight/internal/shared"
	mysqlrepo "orient_insight/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if len(cfg.BookingIDs) == 0 {
		log.Fatal().Msg("BOOKING_IDS is empty; nothing to import")
	}

	log.Info().
		Str("base", cfg.BackendBase).
		Int("workers", cfg.Workers).
		Int("bookings", len(cfg.BookingIDs)).
		Msg("importer starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := backend.New(cfg.BackendBase, cfg.BackendKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize backend client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	imp := app.NewImportService(client, repo, cache)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, id := range cfg.BookingIDs {
		id := id

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(bookingID int64) {
			defer wg.Done()
			defer sem.Release(int64(1))

			if err := imp.ImportBooking(ctx, bookingID); err != nil {
				log.Warn().Int64("id", bookingID).Err(err).Msg("import failed")
				return
			}
			log.Info().Int64("id", bookingID).Msg("import ok")
		}(id)
	}

	wg.Wait()
	log.Info().Msg("import completed")
}
