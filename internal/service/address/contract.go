//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=address_test
package address

import (
	"context"

	"tiffin/internal/entities"
	"tiffin/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, address entities.Address) (*entities.Address, error)
	Update(ctx context.Context, owner string, addressModify entities.AddressModify) (*entities.Address, error)
	Delete(ctx context.Context, owner, id string) error
	ListByOwner(ctx context.Context, owner string) ([]entities.Address, error)
	GetDefault(ctx context.Context, owner string) (*entities.Address, error)

	// ClearDefault снимает is_default со всех адресов владельца, вызывается
	// в одной транзакции с назначением нового адреса по умолчанию.
	ClearDefault(ctx context.Context, owner string) error
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
