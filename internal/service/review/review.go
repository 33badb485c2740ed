package review

import (
	"context"
	"fmt"
	"strings"

	"tiffin/internal/entities"
	"tiffin/pkg/cache"
)

const (
	keyspaceReviews = "reviews"
	keyUser         = "user"
)

type Reviews struct {
	log        handlerLogger
	repository Repository
	txManager  TxManager
	cache      *cache.Cache
}

func New(log handlerLogger, repository Repository, txManager TxManager, cacheFacade *cache.Cache) *Reviews {
	return &Reviews{
		log:        log,
		repository: repository,
		txManager:  txManager,
		cache:      cacheFacade,
	}
}

func (s *Reviews) Submit(ctx context.Context, owner string, reviewEntity entities.Review) (int64, error) {
	if reviewEntity.Rating < 1 || reviewEntity.Rating > 5 {
		return 0, ErrInvalidRating
	}
	if strings.TrimSpace(reviewEntity.Comment) == "" {
		return 0, ErrEmptyComment
	}

	reviewEntity.Owner = owner

	var id int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.repository.Create(ctx, reviewEntity)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("submit review: %w", err)
	}

	s.cache.Invalidate(ctx, cache.Key(keyspaceReviews, keyUser, owner))
	return id, nil
}

func (s *Reviews) ListForOwner(ctx context.Context, owner string) ([]entities.Review, error) {
	return cache.Through(ctx, s.cache, cache.Key(keyspaceReviews, keyUser, owner), 0,
		func(ctx context.Context) ([]entities.Review, error) {
			reviews, err := s.repository.ListByOwner(ctx, owner)
			if err != nil {
				return nil, fmt.Errorf("list reviews: %w", err)
			}
			return reviews, nil
		})
}
