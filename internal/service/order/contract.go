//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"tiffin/internal/entities"
	"tiffin/internal/pkg/factory/order_schedule"
	"tiffin/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) error
	GetByOrderID(ctx context.Context, orderID string) (*entities.Order, error)
	GetByOrderIDForOwner(ctx context.Context, orderID, owner string) (*entities.Order, error)
	ListByOwner(ctx context.Context, owner string) ([]entities.Order, error)

	// UpdateStatusIfCurrent условное обновление: статус меняется только если
	// текущий совпадает с from. false без ошибки = предикат не сошелся.
	UpdateStatusIfCurrent(ctx context.Context, orderID string, from, to entities.OrderStatusType) (bool, error)
	UpdateStatus(ctx context.Context, orderID string, to entities.OrderStatusType) (bool, error)
	CancelIfPlaced(ctx context.Context, orderID, owner, reason string) (bool, error)

	ListStale(ctx context.Context, status entities.OrderStatusType, updatedBefore time.Time, limit int64) ([]entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type PaymentGateway interface {
	Charge(ctx context.Context, amount float64, method entities.PaymentMethodType) error
}

// EventPublisher best-effort: ошибка публикации логируется и не
// прерывает операцию над заказом. nil допустим (события выключены).
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.OrderStatusEvent) error
}

type Scheduler interface {
	Schedule(delay time.Duration, name string, fn func(ctx context.Context))
}

type ScheduleFactory interface {
	Steps() []order_schedule.Step
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
