package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"clubroom/config"
	"clubroom/services/facet"
)

const TypeFacetRefresh = "facets:refresh"

// InitFacetWorker runs the background facet-catalog refresher: an asynq
// server handling refresh tasks plus a scheduler enqueueing them on the
// configured interval, so the filter surface never recomputes facets inline.
func InitFacetWorker(catalog facet.Catalog) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeFacetRefresh, handleFacetRefresh(catalog))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(config.AppConfig.FacetRefreshEvery, asynq.NewTask(TypeFacetRefresh, nil)); err != nil {
		log.Printf("[FacetWorker] failed to register refresh schedule: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[FacetWorker] scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[FacetWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FacetWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FacetWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleFacetRefresh(catalog facet.Catalog) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		return catalog.Refresh(ctx)
	}
}
