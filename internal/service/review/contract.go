//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_test
package review

import (
	"context"

	"tiffin/internal/entities"
	"tiffin/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, review entities.Review) (int64, error)
	ListByOwner(ctx context.Context, owner string) ([]entities.Review, error)
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
