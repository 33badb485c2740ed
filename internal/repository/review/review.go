package review

import (
	"context"
	"fmt"

	"tiffin/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, reviewEntity entities.Review) (int64, error) {
	query := `
		INSERT INTO reviews (owner, rating, comment, order_id)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		reviewEntity.Owner,
		reviewEntity.Rating,
		reviewEntity.Comment,
		reviewEntity.OrderID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected review repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) ListByOwner(ctx context.Context, owner string) ([]entities.Review, error) {
	query := `
		SELECT id, owner, rating, comment, COALESCE(order_id, ''), created_at
		FROM reviews
		WHERE owner = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("unexpected review repository list error: %w", err)
	}
	defer rows.Close()

	reviews := make([]entities.Review, 0, 4)
	for rows.Next() {
		var reviewEntity entities.Review
		err := rows.Scan(
			&reviewEntity.ID,
			&reviewEntity.Owner,
			&reviewEntity.Rating,
			&reviewEntity.Comment,
			&reviewEntity.OrderID,
			&reviewEntity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected review repository list error: %w", err)
		}
		reviews = append(reviews, reviewEntity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected review repository list error: %w", err)
	}

	return reviews, nil
}
