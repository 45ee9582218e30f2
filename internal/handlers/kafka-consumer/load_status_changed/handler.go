package load_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/entities"
	loadeventservice "dispatch/internal/service/loadevent"
	"dispatch/pkg/logger"
)

type changedEvent struct {
	LoadID int64  `json:"load_id"`
	Status string `json:"status"`
}

type Handler struct {
	loadEventService         Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, loadEventService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		loadEventService:         loadEventService,
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
				// Messages() закрыт — выходим
				h.log.Info("load.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("load.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event changedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("load.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("load", event.LoadID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("load.status.changed processing")

	status := entities.LoadStatusType(event.Status)
	loadModify := entities.LoadModify{
		ID:     &event.LoadID,
		Status: &status,
	}

	loadEntity, err := h.loadEventService.ProcessStatusChange(ctx, loadModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("load.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, loadeventservice.ErrUndefinedStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("load.status.changed handler unknown status for load")

		case errors.Is(err, loadeventservice.ErrLoadNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("load.status.changed handler load not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("load.status.changed handler failed to process load")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("load", loadEntity.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", loadEntity.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("load.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
