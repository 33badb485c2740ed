//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_post_test
package checkout_post

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
	Checkout(ctx context.Context, owner string, checkout entities.OrderCheckout) (*entities.OrderReceipt, error)
}
