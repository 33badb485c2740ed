package order_sweep

import (
	"context"
	"time"

	"tiffin/pkg/logger"
)

type Service interface {
	SweepStale(ctx context.Context, limit int64) (int64, error)
}

// OrderSweep периодически дожимает переходы статусов, потерянные
// при рестарте: отложенные задачи планировщика живут только в памяти.
type OrderSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	limit    int64
}

func NewOrderSweep(log logger.Logger, service Service, interval time.Duration, limit int64) *OrderSweep {
	return &OrderSweep{
		log:      log,
		service:  service,
		interval: interval,
		limit:    limit,
	}
}

func (s *OrderSweep) TTL() time.Duration {
	return s.interval
}

func (s *OrderSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	advanced, err := s.service.SweepStale(ctxWithTimeout, s.limit)

	if advanced > 0 {
		s.log.With(
			logger.NewField("advanced_orders", advanced),
		).Info("order sweep")
	}

	return err
}

func (s *OrderSweep) Info() string {
	return "order sweep"
}
