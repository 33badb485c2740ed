package order_schedule

import (
	"time"

	"tiffin/internal/entities"
)

// Step одна запланированная смена статуса заказа.
// After отсчитывается от момента создания заказа, Hold — от момента
// входа в статус From (нужно фоновому обходу застрявших заказов).
type Step struct {
	From  entities.OrderStatusType
	To    entities.OrderStatusType
	After time.Duration
	Hold  time.Duration
}

type ScheduleFactory struct {
	preparingAfter time.Duration
	deliveredAfter time.Duration
}

func New(preparingAfter, deliveredAfter time.Duration) *ScheduleFactory {
	return &ScheduleFactory{
		preparingAfter: preparingAfter,
		deliveredAfter: deliveredAfter,
	}
}

// Steps порядок автопрогрессии: PLACED -> PREPARING -> DELIVERED.
// Каждый шаг применяется условно, поэтому порядок гарантируется
// предикатом по текущему статусу, а не только временем запуска.
func (f *ScheduleFactory) Steps() []Step {
	return []Step{
		{
			From:  entities.OrderPlaced,
			To:    entities.OrderPreparing,
			After: f.preparingAfter,
			Hold:  f.preparingAfter,
		},
		{
			From:  entities.OrderPreparing,
			To:    entities.OrderDelivered,
			After: f.preparingAfter + f.deliveredAfter,
			Hold:  f.deliveredAfter,
		},
	}
}
