package service

import (
	"context"
	"time"

	"agegate-admin-be/internal/changefeed"
	"agegate-admin-be/internal/pkg/logger"
	"agegate-admin-be/internal/websocket"
	"agegate-admin-be/pkg/events"
	pkgNats "agegate-admin-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IDispatcherService drains the in-process change bus and fans events
// out to the websocket hub and the NATS stream.
type IDispatcherService interface {
	Dispatch(ctx context.Context) error
}

type dispatcherService struct {
	changeBus      *changefeed.Bus
	hub            *websocket.Hub
	eventPublisher *pkgNats.Publisher
	sysLogger      logger.ILogger
}

func NewDispatcherService(
	changeBus *changefeed.Bus,
	hub *websocket.Hub,
	eventPublisher *pkgNats.Publisher,
	sysLogger logger.ILogger,
) IDispatcherService {
	return &dispatcherService{
		changeBus:      changeBus,
		hub:            hub,
		eventPublisher: eventPublisher,
		sysLogger:      sysLogger,
	}
}

func (s *dispatcherService) Dispatch(ctx context.Context) error {
	messages, err := s.changeBus.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *dispatcherService) processMessage(ctx context.Context, msg *message.Message) {
	ev, err := changefeed.Unmarshal(msg.Payload)
	if err != nil {
		s.sysLogger.Error("Dispatcher", "Failed to unmarshal change event", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	s.hub.BroadcastChange(ev)

	// NATS is optional infrastructure; a nil publisher just skips it.
	if s.eventPublisher != nil {
		publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		natsEvent := events.BaseEvent{
			Type: ev.Table,
			Data: map[string]interface{}{
				"table":       ev.Table,
				"action":      string(ev.Action),
				"row":         ev.Row,
				"occurred_at": ev.OccurredAt.Format(time.RFC3339),
			},
			OccurredAt: ev.OccurredAt,
		}
		if err := s.eventPublisher.Publish(publishCtx, natsEvent); err != nil {
			s.sysLogger.Warn("Dispatcher", "Failed to publish change to NATS", map[string]interface{}{
				"table": ev.Table,
				"error": err.Error(),
			})
		}
	}

	msg.Ack()
}
