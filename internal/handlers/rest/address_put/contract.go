//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=address_put_test
package address_put

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
	Update(ctx context.Context, owner string, addressModify entities.AddressModify) (*entities.Address, error)
}
