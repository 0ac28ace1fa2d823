package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/spot-manager/infrastructure/database/postgres"
	"github.com/vfg2006/spot-manager/internal/domain"
)

const (
	customersTable     = "customers"
	agenciesTable      = "agencies"
	entityAliasesTable = "entity_aliases"
	marketsTable       = "markets"
)

// EntityRepository resolve nomes canônicos, apelidos e mercados. Somente
// leitura do ponto de vista da importação; a manutenção de aliases acontece
// fora deste fluxo.
type EntityRepository interface {
	FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error)
	FindAgencyByName(ctx context.Context, name string) (*domain.Agency, error)
	FindAliasTarget(ctx context.Context, kind, aliasText string) (*int64, error)
	FindMarket(ctx context.Context, codeOrName string) (*domain.Market, error)
}

type entityRepository struct {
	sess *postgres.Session
}

func NewEntityRepository(sess *postgres.Session) EntityRepository {
	return &entityRepository{sess: sess}
}

func (r *entityRepository) FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select("id", "name", "active").
		From(customersTable).
		Where(squirrel.Eq{"name": name, "active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	customer := &domain.Customer{}
	err = r.sess.Queryer().QueryRowContext(ctx, query, args...).
		Scan(&customer.ID, &customer.Name, &customer.Active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar cliente %q: %w", name, err)
	}

	return customer, nil
}

func (r *entityRepository) FindAgencyByName(ctx context.Context, name string) (*domain.Agency, error) {
	query, args, err := squirrel.
		Select("id", "name", "active").
		From(agenciesTable).
		Where(squirrel.Eq{"name": name, "active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	agency := &domain.Agency{}
	err = r.sess.Queryer().QueryRowContext(ctx, query, args...).
		Scan(&agency.ID, &agency.Name, &agency.Active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar agência %q: %w", name, err)
	}

	return agency, nil
}

func (r *entityRepository) FindAliasTarget(ctx context.Context, kind, aliasText string) (*int64, error) {
	query, args, err := squirrel.
		Select("target_entity_id").
		From(entityAliasesTable).
		Where(squirrel.Eq{"entity_kind": kind, "alias_text": aliasText, "active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var targetID int64
	err = r.sess.Queryer().QueryRowContext(ctx, query, args...).Scan(&targetID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar alias %q (%s): %w", aliasText, kind, err)
	}

	return &targetID, nil
}

func (r *entityRepository) FindMarket(ctx context.Context, codeOrName string) (*domain.Market, error) {
	query, args, err := squirrel.
		Select("id", "code", "name").
		From(marketsTable).
		Where(squirrel.Or{
			squirrel.Eq{"code": codeOrName},
			squirrel.Eq{"name": codeOrName},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	market := &domain.Market{}
	err = r.sess.Queryer().QueryRowContext(ctx, query, args...).
		Scan(&market.ID, &market.Code, &market.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar mercado %q: %w", codeOrName, err)
	}

	return market, nil
}
