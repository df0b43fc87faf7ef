package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jmpanasiti/rda-platform-api/internal/dto"
	"github.com/jmpanasiti/rda-platform-api/internal/model"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
)

type NotificationService interface {
	Create(ctx context.Context, req dto.NotificationRequest) (*dto.NotificationResponse, error)
	GetAll(ctx context.Context, limit, offset int) ([]dto.NotificationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error)
	Filter(ctx context.Context, limit, offset int, req dto.NotificationFilterRequest) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type notificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) Create(ctx context.Context, req dto.NotificationRequest) (*dto.NotificationResponse, error) {
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, BadRequest("Invalid vehicle_id.")
	}
	notification := &model.Notification{
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		IsRead:    req.IsRead,
		VehicleID: vehicleID,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, translateRepo(err, "")
	}
	return toNotificationResponse(notification), nil
}

func (s *notificationService) GetAll(ctx context.Context, limit, offset int) ([]dto.NotificationResponse, error) {
	notifications, err := s.notifications.GetAll(ctx, limit, offset, nil)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	return mapNotifications(notifications), nil
}

func (s *notificationService) GetByID(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error) {
	notification, err := s.notifications.GetByID(ctx, id, nil)
	if err != nil {
		return nil, translateRepo(err, "Notification not found.")
	}
	return toNotificationResponse(notification), nil
}

// Filter lists by exact-match columns; nil fields are not applied. Deleted
// rows stay hidden, same as every other read path.
func (s *notificationService) Filter(ctx context.Context, limit, offset int, req dto.NotificationFilterRequest) ([]dto.NotificationResponse, error) {
	filter := repository.Filter{}
	if req.Title != nil {
		filter["title"] = *req.Title
	}
	if req.Message != nil {
		filter["message"] = *req.Message
	}
	if req.Type != nil {
		filter["type"] = *req.Type
	}
	if req.IsRead != nil {
		filter["is_read"] = *req.IsRead
	}
	if req.VehicleID != nil {
		vehicleID, err := uuid.Parse(*req.VehicleID)
		if err != nil {
			return nil, BadRequest("Invalid vehicle_id.")
		}
		filter["vehicle_id"] = vehicleID
	}

	notifications, err := s.notifications.GetAll(ctx, limit, offset, filter)
	if err != nil {
		return nil, translateRepo(err, "")
	}
	return mapNotifications(notifications), nil
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) (*dto.NotificationResponse, error) {
	notification, err := s.notifications.Update(ctx, id, map[string]any{"is_read": true}, nil)
	if err != nil {
		return nil, translateRepo(err, "Notification not found.")
	}
	return toNotificationResponse(notification), nil
}

func (s *notificationService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateRepo(s.notifications.Delete(ctx, id), "Notification not found.")
}

func mapNotifications(notifications []model.Notification) []dto.NotificationResponse {
	out := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, *toNotificationResponse(&notifications[i]))
	}
	return out
}
