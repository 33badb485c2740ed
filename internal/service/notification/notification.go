package notification

import (
	"context"
	"errors"
	"fmt"

	"tiffin/internal/entities"
	"tiffin/pkg/logger"
)

// Service доставляет уведомления о смене статуса заказа. Реального
// SMS/push-канала нет, доставка моделируется структурированным логом.
type Service struct {
	log            handlerLogger
	messageFactory MessageFactory
}

func New(log handlerLogger, messageFactory MessageFactory) *Service {
	return &Service{
		log:            log,
		messageFactory: messageFactory,
	}
}

func (s *Service) ProcessStatusChanged(ctx context.Context, event entities.OrderStatusEvent) (string, error) {
	if event.OrderID == "" || event.Owner == "" {
		return "", fmt.Errorf("order id and owner are required")
	}

	composeFn, err := s.messageFactory.GetComposer(event.Status)
	if err != nil {
		// статусы без уведомления просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return "", nil
		}
		return "", err
	}

	message := composeFn(event)
	s.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("owner", event.Owner),
		logger.NewField("status", event.Status.String()),
		logger.NewField("message", message),
	).Info("notification sent")

	notificationsSentTotal.WithLabelValues(event.Status.String()).Inc()
	return message, nil
}
