//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menu_get_test
package menu_get

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
	List(ctx context.Context) ([]entities.MenuItem, error)
}
