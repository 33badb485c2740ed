//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=address_post_test
package address_post

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
	Create(ctx context.Context, owner string, address entities.Address) (*entities.Address, error)
}
