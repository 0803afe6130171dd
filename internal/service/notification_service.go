package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/myflix-service/internal/config"
	"github.com/spec-kit/myflix-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleAccountEvent)
	n.dispatcher.Subscribe(events.EventUserUpdated, n.handleAccountEvent)
	n.dispatcher.Subscribe(events.EventUserDeleted, n.handleAccountEvent)
	n.dispatcher.Subscribe(events.EventFavoriteAdded, n.handleFavoriteEvent)
	n.dispatcher.Subscribe(events.EventFavoriteRemoved, n.handleFavoriteEvent)
}

func (n *NotificationService) handleAccountEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("account event",
		zap.String("event_type", string(event.Type)),
		zap.String("user_id", event.UserID))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleFavoriteEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("favorite event",
		zap.String("event_type", string(event.Type)),
		zap.String("user_id", event.UserID))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}
