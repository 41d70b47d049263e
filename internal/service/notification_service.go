package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bloom-be/internal/model"
	"bloom-be/internal/pkg/logger"
	"bloom-be/internal/repository"
	"bloom-be/pkg/events"
	pktNats "bloom-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery pushes real-time updates, typically the WebSocket hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer. Without
// a subscriber (NATS unreachable at boot) delivery is skipped and the rest
// of the app keeps running.
func (s *NotificationService) Start() {
	if s.subscriber == nil {
		s.logger.Warn("NotificationService", "No event bus subscriber, notifications disabled", nil)
		return
	}
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// The NATS subject carries the "events." prefix; registry codes do not.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	config, err := s.repo.GetNotificationTypeByCode(ctx, typeCode)
	if err != nil || config == nil {
		s.logger.Warn("NotificationService", fmt.Sprintf("Config not found for code: '%s'", typeCode), nil)
		return nil
	}
	if !config.IsActive {
		return nil
	}

	recipients, err := s.resolveRecipients(ctx, config, event)
	if err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error resolving recipients for %s", typeCode), map[string]interface{}{"error": err})
		// NATS retries on error return.
		return err
	}

	for _, userID := range recipients {
		notif := s.buildNotification(userID, config, event)

		if err := s.repo.CreateNotification(ctx, &notif); err != nil {
			s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userID), map[string]interface{}{"error": err})
			continue
		}

		if s.delivery != nil {
			s.delivery.Send(userID, notif)
		}
	}

	return nil
}

func (s *NotificationService) resolveRecipients(ctx context.Context, config *model.NotificationType, event events.Event) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	payload := event.Payload()

	appendParsed := func(key string) {
		if uidStr, ok := payload[key].(string); ok {
			if uid, err := uuid.Parse(uidStr); err == nil {
				userIDs = append(userIDs, uid)
			}
		}
	}

	switch config.TargetType {
	case "SELF":
		// Convention: events carry the owner as "user_id". Match events
		// carry both sides.
		appendParsed("user_id")
		appendParsed("user_a")
		appendParsed("user_b")
		if len(userIDs) == 0 {
			s.logger.Warn("NotificationService", fmt.Sprintf("TargetType SELF but no user id in payload for event %s", event.EventType()), nil)
		}

	case "ADMIN":
		admins, err := s.repo.GetUsersByRole(ctx, "admin")
		if err != nil {
			return nil, err
		}
		for _, u := range admins {
			userIDs = append(userIDs, u.Id)
		}

	case "ROLE":
		users, err := s.repo.GetUsersByRole(ctx, config.TargetRole)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			userIDs = append(userIDs, u.Id)
		}
	}

	return userIDs, nil
}

func (s *NotificationService) buildNotification(userID uuid.UUID, config *model.NotificationType, event events.Event) model.Notification {
	// Simple placeholder substitution: {key} pulls from the event payload.
	msg := config.Template
	payload := event.Payload()

	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		msg = strings.ReplaceAll(msg, placeholder, fmt.Sprintf("%v", v))
	}

	metaJSON, _ := json.Marshal(payload)

	return model.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		TypeCode:  config.Code,
		Title:     config.DisplayName,
		Message:   msg,
		Metadata:  datatypes.JSON(metaJSON),
		CreatedAt: time.Now(),
		IsRead:    false,
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, notificationID)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
