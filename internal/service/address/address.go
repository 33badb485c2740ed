package address

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"tiffin/internal/entities"
	"tiffin/pkg/cache"
)

const (
	keyspaceAddresses = "addresses"
	keyList           = "list"
	keyDefault        = "default"
)

type Addresses struct {
	log        handlerLogger
	repository Repository
	txManager  TxManager
	cache      *cache.Cache
}

func New(log handlerLogger, repository Repository, txManager TxManager, cacheFacade *cache.Cache) *Addresses {
	return &Addresses{
		log:        log,
		repository: repository,
		txManager:  txManager,
		cache:      cacheFacade,
	}
}

func (s *Addresses) Create(ctx context.Context, owner string, addressEntity entities.Address) (*entities.Address, error) {
	if err := validateRequired(addressEntity); err != nil {
		return nil, err
	}

	addressEntity.ID = uuid.NewString()
	addressEntity.Owner = owner

	var created *entities.Address
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// у владельца не больше одного адреса по умолчанию
		if addressEntity.IsDefault {
			if err := s.repository.ClearDefault(ctx, owner); err != nil {
				return err
			}
		}

		var err error
		created, err = s.repository.Create(ctx, addressEntity)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}

	s.invalidate(ctx, owner)
	return created, nil
}

func (s *Addresses) Update(ctx context.Context, owner string, addressModify entities.AddressModify) (*entities.Address, error) {
	if !hasModifications(addressModify) {
		return nil, ErrEmptyModify
	}

	var updated *entities.Address
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if addressModify.IsDefault != nil && *addressModify.IsDefault {
			if err := s.repository.ClearDefault(ctx, owner); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.repository.Update(ctx, owner, addressModify)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, owner)
	return updated, nil
}

func (s *Addresses) Delete(ctx context.Context, owner, id string) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.Delete(ctx, owner, id)
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, owner)
	return nil
}

func (s *Addresses) List(ctx context.Context, owner string) ([]entities.Address, error) {
	return cache.Through(ctx, s.cache, cache.Key(keyspaceAddresses, keyList, owner), 0,
		func(ctx context.Context) ([]entities.Address, error) {
			addresses, err := s.repository.ListByOwner(ctx, owner)
			if err != nil {
				return nil, fmt.Errorf("list addresses: %w", err)
			}
			return addresses, nil
		})
}

func (s *Addresses) GetDefault(ctx context.Context, owner string) (*entities.Address, error) {
	return cache.Through(ctx, s.cache, cache.Key(keyspaceAddresses, keyDefault, owner), 0,
		func(ctx context.Context) (*entities.Address, error) {
			return s.repository.GetDefault(ctx, owner)
		})
}

// invalidate сбрасывает обе проекции владельца: list и default всегда
// инвалидируются вместе, иначе одна из них переживет мутацию.
func (s *Addresses) invalidate(ctx context.Context, owner string) {
	s.cache.Invalidate(ctx,
		cache.Key(keyspaceAddresses, keyList, owner),
		cache.Key(keyspaceAddresses, keyDefault, owner),
	)
}

func validateRequired(addressEntity entities.Address) error {
	required := []string{
		addressEntity.Label,
		addressEntity.AddressLine,
		addressEntity.City,
		addressEntity.State,
		addressEntity.Pincode,
	}
	for _, value := range required {
		if strings.TrimSpace(value) == "" {
			return ErrMissingRequiredFields
		}
	}
	return nil
}

func hasModifications(addressModify entities.AddressModify) bool {
	return addressModify.Label != nil ||
		addressModify.AddressLine != nil ||
		addressModify.City != nil ||
		addressModify.State != nil ||
		addressModify.Pincode != nil ||
		addressModify.IsDefault != nil
}
