package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

const (
	QueueNotifications = "jobs:notifications"

	maxJobAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// NotificationPayload is the body of a notification job.
type NotificationPayload struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	VehicleID uuid.UUID `json:"vehicle_id"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// NotifyWorkflow pushes a workflow notification job. Best-effort: a full queue
// or a down Redis is logged, never propagated.
func (d *Dispatcher) NotifyWorkflow(ctx context.Context, vehicleID uuid.UUID, title, message string) {
	err := d.EnqueueNotification(ctx, NotificationPayload{
		Title:     title,
		Message:   message,
		Type:      model.NotificationWorkflow,
		VehicleID: vehicleID,
	})
	if err != nil {
		log.Error().Err(err).Str("vehicle_id", vehicleID.String()).Msg("could not enqueue workflow notification")
	}
}

// EnqueueNotification pushes a notification job to Redis.
func (d *Dispatcher) EnqueueNotification(ctx context.Context, payload NotificationPayload) error {
	return enqueue(ctx, d.rdb, QueueNotifications, "notification", payload)
}

func enqueue(ctx context.Context, rdb *redis.Client, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return rdb.LPush(ctx, queue, encoded).Err()
}

// Pool consumes the notification queue and persists the rows.
type Pool struct {
	rdb           *redis.Client
	notifications repository.NotificationRepository
}

func NewPool(rdb *redis.Client, notifications repository.NotificationRepository) *Pool {
	return &Pool{rdb: rdb, notifications: notifications}
}

// Start launches numWorkers goroutines consuming the queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go p.run(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (p *Pool) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := p.rdb.BRPop(ctx, 5*time.Second, QueueNotifications).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			p.processJob(ctx, result[0], result[1])
		}
	}
}

func (p *Pool) processJob(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	var payload NotificationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		SendToDLQ(ctx, p.rdb, queue, job.Type, job.Payload, "invalid payload: "+err.Error(), job.Attempts)
		return
	}

	notification := &model.Notification{
		Title:     payload.Title,
		Message:   payload.Message,
		Type:      payload.Type,
		VehicleID: payload.VehicleID,
	}
	if err := p.notifications.Create(ctx, notification); err != nil {
		job.Attempts++
		if job.Attempts >= maxJobAttempts {
			SendToDLQ(ctx, p.rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
			return
		}
		encoded, mErr := json.Marshal(job)
		if mErr != nil {
			log.Error().Err(mErr).Msg("could not re-encode failed job")
			return
		}
		if pushErr := p.rdb.LPush(ctx, queue, encoded).Err(); pushErr != nil {
			log.Error().Err(pushErr).Msg("could not requeue failed job")
		}
		return
	}
	log.Debug().Str("type", payload.Type).Str("vehicle_id", payload.VehicleID.String()).Msg("notification stored")
}
