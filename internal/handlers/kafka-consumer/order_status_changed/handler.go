package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"tiffin/internal/entities"
	"tiffin/pkg/logger"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
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
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event entities.OrderStatusEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status.String()),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.status.changed processing")

	if _, err := h.notificationService.ProcessStatusChanged(ctx, event); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true
		}

		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.status.changed handler failed to process event")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
