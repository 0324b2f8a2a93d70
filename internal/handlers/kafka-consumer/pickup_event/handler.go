package pickup_event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
	pickupservice "service/internal/service/pickup"
	"service/pkg/logger"
)

const (
	eventAccepted   = "accepted"
	eventStarted    = "started"
	eventUnaccepted = "unaccepted"
	eventCompleted  = "completed"
)

type lifecycleEvent struct {
	PickupID  string `json:"pickup_id"`
	DriverID  string `json:"driver_id"`
	Type      string `json:"type"`
	Materials []struct {
		Type   string  `json:"type"`
		Weight float64 `json:"weight"`
	} `json:"materials"`
}

type Handler struct {
	pickupService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, pickupService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		pickupService:            pickupService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("pickup.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("pickup.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event lifecycleEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("pickup.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("pickup", event.PickupID),
		logger.NewField("driver", event.DriverID),
		logger.NewField("type", event.Type),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("pickup.events processing")

	err = h.dispatch(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("pickup.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, pickupservice.ErrConflict):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("pickup.events handler lost acceptance race")

		case errors.Is(err, pickupservice.ErrInvalidState):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("pickup.events handler transition not legal for current status")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("pickup.events handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("pickup.events: processed")

	sess.MarkMessage(message, "")
	return false
}

func (h *Handler) dispatch(ctx context.Context, event lifecycleEvent) error {
	switch event.Type {
	case eventAccepted:
		return h.pickupService.Accept(ctx, event.DriverID, event.PickupID)
	case eventStarted:
		return h.pickupService.Start(ctx, event.DriverID, event.PickupID)
	case eventUnaccepted:
		return h.pickupService.CancelAcceptance(ctx, event.DriverID, event.PickupID)
	case eventCompleted:
		materials := make([]entities.MaterialEntry, len(event.Materials))
		for i, entry := range event.Materials {
			materials[i] = entities.MaterialEntry{
				Type:   entry.Type,
				Weight: entry.Weight,
			}
		}
		return h.pickupService.Complete(ctx, event.DriverID, event.PickupID, materials)
	default:
		return fmt.Errorf("%w: %s", pickupservice.ErrUnknownOp, event.Type)
	}
}
