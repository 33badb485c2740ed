//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_post_test
package review_post

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
	Submit(ctx context.Context, owner string, review entities.Review) (int64, error)
}
