package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/spot-manager/infrastructure/database/postgres"
	"github.com/vfg2006/spot-manager/internal/domain"
)

const monthClosuresTable = "month_closures"

// ErrDuplicateClosure indica violação da constraint única de broadcast_month:
// alguém tentou fechar um mês já fechado no mesmo instante.
var ErrDuplicateClosure = errors.New("mês de faturamento já possui registro de fechamento")

type MonthClosureRepository interface {
	Insert(ctx context.Context, closure *domain.MonthClosure) error
	Exists(ctx context.Context, month string) (bool, error)
	ClosedAmong(ctx context.Context, months []string) ([]string, error)
	ListAll(ctx context.Context) ([]*domain.MonthClosure, error)
}

type monthClosureRepository struct {
	sess *postgres.Session
}

func NewMonthClosureRepository(sess *postgres.Session) MonthClosureRepository {
	return &monthClosureRepository{sess: sess}
}

func (r *monthClosureRepository) Insert(ctx context.Context, closure *domain.MonthClosure) error {
	query, args, err := squirrel.
		Insert(monthClosuresTable).
		Columns("broadcast_month", "closed_date", "closed_by", "notes").
		Values(closure.BroadcastMonth, closure.ClosedDate, closure.ClosedBy, closure.Notes).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.sess.Queryer().ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateClosure
		}
		return fmt.Errorf("erro ao registrar fechamento do mês %s: %w", closure.BroadcastMonth, err)
	}

	return nil
}

func (r *monthClosureRepository) Exists(ctx context.Context, month string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(monthClosuresTable).
		Where(squirrel.Eq{"broadcast_month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.sess.Queryer().QueryRowContext(ctx, query, args...).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao consultar fechamento do mês %s: %w", month, err)
	}

	return true, nil
}

func (r *monthClosureRepository) ClosedAmong(ctx context.Context, months []string) ([]string, error) {
	if len(months) == 0 {
		return []string{}, nil
	}

	query, args, err := squirrel.
		Select("broadcast_month").
		From(monthClosuresTable).
		Where(squirrel.Eq{"broadcast_month": months}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.sess.Queryer().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	closed := make([]string, 0)
	for rows.Next() {
		var month string
		if err := rows.Scan(&month); err != nil {
			return nil, fmt.Errorf("erro ao escanear mês fechado: %w", err)
		}
		closed = append(closed, month)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return closed, nil
}

func (r *monthClosureRepository) ListAll(ctx context.Context) ([]*domain.MonthClosure, error) {
	query, args, err := squirrel.
		Select("broadcast_month", "closed_date", "closed_by", "notes").
		From(monthClosuresTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.sess.Queryer().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	closures := make([]*domain.MonthClosure, 0)
	for rows.Next() {
		closure := &domain.MonthClosure{}
		if err := rows.Scan(&closure.BroadcastMonth, &closure.ClosedDate, &closure.ClosedBy, &closure.Notes); err != nil {
			return nil, fmt.Errorf("erro ao escanear fechamento: %w", err)
		}
		closures = append(closures, closure)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return closures, nil
}
