package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"tiffin/internal/entities"
	"tiffin/internal/repository"
	"tiffin/internal/service/order"
)

const orderColumns = `order_id, owner, items, total_amount, payment_method, status, cancel_reason, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) error {
	items, err := marshalItems(orderEntity.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (order_id, owner, items, total_amount, payment_method, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.querier.Exec(
		ctx,
		query,
		orderEntity.OrderID,
		orderEntity.Owner,
		items,
		orderEntity.TotalAmount,
		orderEntity.PaymentMethod.String(),
		orderEntity.Status.String(),
		orderEntity.CreatedAt,
		orderEntity.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return order.ErrOrderIDConflict
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`
	return r.getOne(ctx, query, orderID)
}

func (r *Repository) GetByOrderIDForOwner(ctx context.Context, orderID, owner string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1 AND owner = $2`
	return r.getOne(ctx, query, orderID, owner)
}

func (r *Repository) ListByOwner(ctx context.Context, owner string) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE owner = $1
		ORDER BY created_at DESC, order_id DESC
	`
	return r.list(ctx, query, owner)
}

// UpdateStatusIfCurrent compare-and-set по статусу: запись меняется
// только если статус все еще from. false = предикат не сошелся.
func (r *Repository) UpdateStatusIfCurrent(ctx context.Context, orderID string, from, to entities.OrderStatusType) (bool, error) {
	query := `
		UPDATE orders
		SET status = $3, updated_at = NOW()
		WHERE order_id = $1 AND status = $2
	`

	result, err := r.querier.Exec(ctx, query, orderID, from.String(), to.String())
	if err != nil {
		return false, fmt.Errorf("unexpected order repository conditional update error: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID string, to entities.OrderStatusType) (bool, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE order_id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID, to.String())
	if err != nil {
		return false, fmt.Errorf("unexpected order repository update error: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func (r *Repository) CancelIfPlaced(ctx context.Context, orderID, owner, reason string) (bool, error) {
	query := `
		UPDATE orders
		SET status = $4, cancel_reason = $3, updated_at = NOW()
		WHERE order_id = $1 AND owner = $2 AND status = $5
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		orderID,
		owner,
		reason,
		entities.OrderCancelled.String(),
		entities.OrderPlaced.String(),
	)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository cancel error: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func (r *Repository) ListStale(ctx context.Context, status entities.OrderStatusType, updatedBefore time.Time, limit int64) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1 AND updated_at < $2
		ORDER BY updated_at ASC
		LIMIT $3
	`
	return r.list(ctx, query, status.String(), updatedBefore, limit)
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Order, error) {
	var model OrderDB
	err := r.querier.QueryRow(ctx, query, args...).
		Scan(
			&model.OrderID,
			&model.Owner,
			&model.Items,
			&model.TotalAmount,
			&model.PaymentMethod,
			&model.Status,
			&model.CancelReason,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&model)
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]OrderDB, 0, 8)
	for rows.Next() {
		var model OrderDB
		err := rows.Scan(
			&model.OrderID,
			&model.Owner,
			&model.Items,
			&model.TotalAmount,
			&model.PaymentMethod,
			&model.Status,
			&model.CancelReason,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(models)
}
