package order_status_changed

import (
	"context"

	"tiffin/internal/entities"
	"tiffin/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessStatusChanged(ctx context.Context, event entities.OrderStatusEvent) (string, error)
}
