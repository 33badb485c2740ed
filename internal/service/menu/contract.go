//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menu_test
package menu

import (
	"context"

	"tiffin/internal/entities"
	"tiffin/pkg/logger"
)

type Repository interface {
	List(ctx context.Context) ([]entities.MenuItem, error)
	Upsert(ctx context.Context, item entities.MenuItem) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
