package worker

// reminder.go
// Background goroutine that periodically scans the fleet for paperwork about
// to expire (VTV, documents, insurance, fire extinguisher, next service) and
// enqueues reminder notifications for the affected vehicles.

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

// ReminderConfig holds all dependencies for the reminder goroutine.
type ReminderConfig struct {
	Vehicles      repository.VehicleRepository
	Notifications repository.NotificationRepository
	Dispatcher    *Dispatcher
	Interval      time.Duration
	Window        time.Duration
}

// StartReminderScanner launches a goroutine that ticks on the configured
// interval. A tick runs immediately on start so a fresh deploy does not wait a
// full interval before the first scan. Respects the context for graceful
// shutdown.
func StartReminderScanner(ctx context.Context, cfg ReminderConfig) {
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().
			Dur("interval", cfg.Interval).
			Dur("window", cfg.Window).
			Msg("reminder scanner: started")

		scanExpirations(ctx, cfg)
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("reminder scanner: shutting down")
				return
			case <-ticker.C:
				scanExpirations(ctx, cfg)
			}
		}
	}()
}

type expiration struct {
	label string
	date  *time.Time
}

func scanExpirations(ctx context.Context, cfg ReminderConfig) {
	horizon := time.Now().Add(cfg.Window)
	vehicles, err := cfg.Vehicles.ListExpiringDocs(ctx, horizon)
	if err != nil {
		log.Error().Err(err).Msg("reminder scanner: could not list expiring vehicles")
		return
	}
	if len(vehicles) == 0 {
		return
	}

	log.Info().Int("count", len(vehicles)).Msg("reminder scanner: vehicles with upcoming expirations")

	for i := range vehicles {
		v := &vehicles[i]
		expirations := []expiration{
			{"VTV", v.VTVExpirationDate},
			{"Documents", v.DocumentsExpirationDate},
			{"Authorized documents", v.AuthDocumentsExpirationDate},
			{"Fire extinguisher", v.FireExtinguisherExpirationDate},
			{"Insurance", v.EnsuranceExpirationDate},
			{"Service", v.NextServiceDate},
		}
		for _, e := range expirations {
			if e.date == nil || e.date.After(horizon) {
				continue
			}
			title := e.label + " expires soon: " + v.RegistrationPlate
			pending, err := cfg.Notifications.ListByFilter(ctx, repository.Filter{
				"title":      title,
				"vehicle_id": v.ID,
				"type":       model.NotificationReminder,
				"is_read":    false,
			})
			if err != nil {
				log.Error().Err(err).Msg("reminder scanner: dedupe lookup failed")
				continue
			}
			// An unread reminder for the same slot is still pending, don't
			// stack another one on top.
			if len(pending) > 0 {
				continue
			}
			err = cfg.Dispatcher.EnqueueNotification(ctx, NotificationPayload{
				Title:     title,
				Message:   e.label + " of vehicle " + v.RegistrationPlate + " expires on " + e.date.Format("2006-01-02") + ".",
				Type:      model.NotificationReminder,
				VehicleID: v.ID,
			})
			if err != nil {
				log.Error().Err(err).Str("vehicle_id", v.ID.String()).Msg("reminder scanner: enqueue failed")
			}
		}
	}
}
