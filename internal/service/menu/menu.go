package menu

import (
	"context"
	"fmt"
	"strings"

	"tiffin/internal/entities"
	"tiffin/pkg/cache"
)

// keyMenu единственный ключ меню: каталог общий для всех пользователей.
const keyMenu = "cache:get_menu"

type Menu struct {
	log        handlerLogger
	repository Repository
	txManager  TxManager
	cache      *cache.Cache
}

func New(log handlerLogger, repository Repository, txManager TxManager, cacheFacade *cache.Cache) *Menu {
	return &Menu{
		log:        log,
		repository: repository,
		txManager:  txManager,
		cache:      cacheFacade,
	}
}

func (s *Menu) List(ctx context.Context) ([]entities.MenuItem, error) {
	return cache.Through(ctx, s.cache, keyMenu, 0,
		func(ctx context.Context) ([]entities.MenuItem, error) {
			items, err := s.repository.List(ctx)
			if err != nil {
				return nil, fmt.Errorf("list menu: %w", err)
			}
			return items, nil
		})
}

// Upsert создает или заменяет позицию меню и сбрасывает кеш каталога.
func (s *Menu) Upsert(ctx context.Context, item entities.MenuItem) error {
	if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Name) == "" || item.Price <= 0 {
		return ErrInvalidMenuItem
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.Upsert(ctx, item)
	})
	if err != nil {
		return fmt.Errorf("upsert menu item: %w", err)
	}

	s.cache.Invalidate(ctx, keyMenu)
	return nil
}
