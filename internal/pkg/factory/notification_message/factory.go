package notification_message

import (
	"fmt"

	"tiffin/internal/entities"
	"tiffin/internal/service/notification"
)

type MessageFactory struct{}

func NewMessageFactory() *MessageFactory {
	return &MessageFactory{}
}

func (f *MessageFactory) GetComposer(status entities.OrderStatusType) (notification.ComposeFn, error) {
	switch status {
	case entities.OrderPlaced:
		return placedMessage, nil
	case entities.OrderPreparing:
		return preparingMessage, nil
	case entities.OrderDelivered:
		return deliveredMessage, nil
	case entities.OrderCancelled:
		return cancelledMessage, nil
	default:
		return nil, fmt.Errorf("%w: %s", notification.ErrUndefinedStatus, status)
	}
}

func placedMessage(event entities.OrderStatusEvent) string {
	return fmt.Sprintf("Your order %s has been placed", event.OrderID)
}

func preparingMessage(event entities.OrderStatusEvent) string {
	return fmt.Sprintf("Your order %s is being prepared", event.OrderID)
}

func deliveredMessage(event entities.OrderStatusEvent) string {
	return fmt.Sprintf("Your order %s has been delivered", event.OrderID)
}

func cancelledMessage(event entities.OrderStatusEvent) string {
	return fmt.Sprintf("Your order %s has been cancelled", event.OrderID)
}
