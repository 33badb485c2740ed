//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=address_delete_test
package address_delete

import (
	"context"

	"tiffin/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Delete(ctx context.Context, owner, id string) error
}
