package address

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tiffin/internal/entities"
	"tiffin/internal/service/address"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const addressColumns = `id, owner, label, address_line, city, state, pincode, is_default, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, addressEntity entities.Address) (*entities.Address, error) {
	query := `
		INSERT INTO addresses (id, owner, label, address_line, city, state, pincode, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + addressColumns

	var model AddressDB
	err := r.querier.QueryRow(
		ctx,
		query,
		addressEntity.ID,
		addressEntity.Owner,
		addressEntity.Label,
		addressEntity.AddressLine,
		addressEntity.City,
		addressEntity.State,
		addressEntity.Pincode,
		addressEntity.IsDefault,
	).Scan(
		&model.ID,
		&model.Owner,
		&model.Label,
		&model.AddressLine,
		&model.City,
		&model.State,
		&model.Pincode,
		&model.IsDefault,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository create error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Update(ctx context.Context, owner string, addressModify entities.AddressModify) (*entities.Address, error) {
	builder := qb.Update("addresses")

	// опциональные поля
	if addressModify.Label != nil {
		builder = builder.Set("label", addressModify.Label)
	}
	if addressModify.AddressLine != nil {
		builder = builder.Set("address_line", addressModify.AddressLine)
	}
	if addressModify.City != nil {
		builder = builder.Set("city", addressModify.City)
	}
	if addressModify.State != nil {
		builder = builder.Set("state", addressModify.State)
	}
	if addressModify.Pincode != nil {
		builder = builder.Set("pincode", addressModify.Pincode)
	}
	if addressModify.IsDefault != nil {
		builder = builder.Set("is_default", addressModify.IsDefault)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": addressModify.ID, "owner": owner}).
		Suffix("RETURNING " + addressColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository update error: %w", err)
	}

	var model AddressDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&model.ID,
			&model.Owner,
			&model.Label,
			&model.AddressLine,
			&model.City,
			&model.State,
			&model.Pincode,
			&model.IsDefault,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, address.ErrAddressNotFound
		}
		return nil, fmt.Errorf("unexpected address repository update error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Delete(ctx context.Context, owner, id string) error {
	query := `DELETE FROM addresses WHERE id = $1 AND owner = $2`

	result, err := r.querier.Exec(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("unexpected address repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return address.ErrAddressNotFound
	}

	return nil
}

func (r *Repository) ListByOwner(ctx context.Context, owner string) ([]entities.Address, error) {
	query := `
		SELECT ` + addressColumns + `
		FROM addresses
		WHERE owner = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]AddressDB, 0, 4)
	for rows.Next() {
		var model AddressDB
		err := rows.Scan(
			&model.ID,
			&model.Owner,
			&model.Label,
			&model.AddressLine,
			&model.City,
			&model.State,
			&model.Pincode,
			&model.IsDefault,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected address repository list error: %w", err)
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected address repository list error: %w", err)
	}

	return ToDomainList(models), nil
}

func (r *Repository) GetDefault(ctx context.Context, owner string) (*entities.Address, error) {
	query := `
		SELECT ` + addressColumns + `
		FROM addresses
		WHERE owner = $1 AND is_default = TRUE
		LIMIT 1
	`

	var model AddressDB
	err := r.querier.QueryRow(ctx, query, owner).
		Scan(
			&model.ID,
			&model.Owner,
			&model.Label,
			&model.AddressLine,
			&model.City,
			&model.State,
			&model.Pincode,
			&model.IsDefault,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, address.ErrAddressNotFound
		}
		return nil, fmt.Errorf("unexpected address repository get default error: %w", err)
	}

	return ToDomain(&model), nil
}

// ClearDefault снимает флаг is_default со всех адресов владельца.
// Вызывается в одной транзакции с установкой нового адреса по умолчанию.
func (r *Repository) ClearDefault(ctx context.Context, owner string) error {
	query := `
		UPDATE addresses
		SET is_default = FALSE, updated_at = NOW()
		WHERE owner = $1 AND is_default = TRUE
	`

	_, err := r.querier.Exec(ctx, query, owner)
	if err != nil {
		return fmt.Errorf("unexpected address repository clear default error: %w", err)
	}
	return nil
}
