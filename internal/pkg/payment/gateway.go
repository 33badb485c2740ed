package payment

import (
	"context"

	"tiffin/internal/entities"
	"tiffin/pkg/logger"
)

// DummyGateway всегда одобряет платеж. Интеграция с реальным
// провайдером живет за контрактом order.PaymentGateway.
type DummyGateway struct {
	log logger.Logger
}

func NewDummyGateway(log logger.Logger) *DummyGateway {
	return &DummyGateway{log: log}
}

func (g *DummyGateway) Charge(ctx context.Context, amount float64, method entities.PaymentMethodType) error {
	g.log.With(
		logger.NewField("amount", amount),
		logger.NewField("method", string(method)),
	).Info("payment charged")
	return nil
}
