package order

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tracker/internal/entities"
	"tracker/internal/repository"
	"tracker/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var returningOrder = "RETURNING " + strings.Join(orderColumns, ", ")

var orderColumns = []string{"id", "patrimony", "description", "status", "solution", "created_at", "closed_at"}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	query, args, err := qb.
		Insert("orders").
		Columns("id", "patrimony", "description", "status").
		Values(
			orderModifyModel.ID,
			orderModifyModel.Patrimony,
			orderModifyModel.Description,
			orderModifyModel.Status,
		).
		Suffix(returningOrder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, order.ErrInvalidStatus
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// GetByIDForUpdate блокирует строку до конца транзакции из контекста.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// GetByStatus не задает ORDER BY: порядок выдачи остается за хранилищем.
func (r *Repository) GetByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": status.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbystatus error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbystatus error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 16)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getbystatus error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository getbystatus error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) Close(ctx context.Context, id string, solution string) (*entities.Order, error) {
	query, args, err := qb.
		Update("orders").
		Set("status", entities.OrderClosed.String()).
		Set("solution", solution).
		Set("closed_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningOrder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository close error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository close error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.Patrimony,
		&orderModel.Description,
		&orderModel.Status,
		&orderModel.Solution,
		&orderModel.CreatedAt,
		&orderModel.ClosedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
