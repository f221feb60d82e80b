package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bizly/config"
	"bizly/models"
	"bizly/services/marketing"

	"github.com/hibiken/asynq"
)

// InitCampaignWorker runs the async dispatch worker in background.
func InitCampaignWorker(marketingSvc marketing.MarketingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(marketing.TypeCampaignDispatch, handleDispatchTask(marketingSvc))

	// Start async worker with retry logic.
	go func() {
		log.Println("[CampaignWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CampaignWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CampaignWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleDispatchTask(marketingSvc marketing.MarketingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.DispatchPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[CampaignWorker] invalid payload: %v", err)
			return err
		}

		if err := marketingSvc.Dispatch(p.CampaignID); err != nil {
			log.Printf("[CampaignWorker] failed to dispatch campaign %s: %v", p.CampaignID, err)
			return err
		}
		return nil
	}
}
