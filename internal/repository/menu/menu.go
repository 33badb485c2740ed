package menu

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

func (r *Repository) List(ctx context.Context) ([]entities.MenuItem, error) {
	query := `
		SELECT id, name, description, price, category, image_url, available, updated_at
		FROM menu
		WHERE available = TRUE
		ORDER BY category ASC, name ASC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected menu repository list error: %w", err)
	}
	defer rows.Close()

	items := make([]entities.MenuItem, 0, 16)
	for rows.Next() {
		var item entities.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Category,
			&item.ImageURL,
			&item.Available,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected menu repository list error: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected menu repository list error: %w", err)
	}

	return items, nil
}

func (r *Repository) Upsert(ctx context.Context, item entities.MenuItem) error {
	query := `
		INSERT INTO menu (id, name, description, price, category, image_url, available, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    description = EXCLUDED.description,
		    price = EXCLUDED.price,
		    category = EXCLUDED.category,
		    image_url = EXCLUDED.image_url,
		    available = EXCLUDED.available,
		    updated_at = NOW()
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.Category,
		item.ImageURL,
		item.Available,
	)
	if err != nil {
		return fmt.Errorf("unexpected menu repository upsert error: %w", err)
	}

	return nil
}
