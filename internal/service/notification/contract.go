//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"tiffin/internal/entities"
	"tiffin/pkg/logger"
)

// ComposeFn собирает текст уведомления по событию смены статуса.
type ComposeFn func(event entities.OrderStatusEvent) string

type MessageFactory interface {
	GetComposer(status entities.OrderStatusType) (ComposeFn, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
