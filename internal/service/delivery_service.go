package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/campus-alert-service/internal/config"
	"github.com/spec-kit/campus-alert-service/internal/events"
)

// DeliveryService reacts to committed broadcasts. The push, SMS and
// email channels are placeholders: nothing leaves the process, the
// stubs only log what a real channel would send.
type DeliveryService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.BroadcastConfig
}

// NewDeliveryService creates the service.
func NewDeliveryService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.BroadcastConfig) *DeliveryService {
	return &DeliveryService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (d *DeliveryService) RegisterHandlers() {
	if d.dispatcher == nil {
		return
	}
	d.dispatcher.Subscribe(events.EventBroadcastCompleted, d.handleBroadcastCompleted)
	d.dispatcher.Subscribe(events.EventAccountRegistered, d.handleAccountRegistered)
}

func (d *DeliveryService) handleBroadcastCompleted(ctx context.Context, event events.Event) error {
	d.logger.Info("BroadcastCompleted", zap.Any("payload", event.Payload))
	d.sendEmailStub(ctx, event)
	d.sendWebhookStub(ctx, event)
	return nil
}

func (d *DeliveryService) handleAccountRegistered(ctx context.Context, event events.Event) error {
	d.logger.Info("AccountRegistered", zap.Any("payload", event.Payload))
	d.sendEmailStub(ctx, event)
	return nil
}

func (d *DeliveryService) sendEmailStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(d.cfg.EmailFrom) == "" {
		return
	}
	d.logger.Debug("sendEmailStub",
		zap.String("from", d.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (d *DeliveryService) sendWebhookStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(d.cfg.WebhookURL) == "" {
		return
	}
	d.logger.Debug("sendWebhookStub",
		zap.String("url", d.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
