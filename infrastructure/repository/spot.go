package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/spot-manager/infrastructure/database/postgres"
	"github.com/vfg2006/spot-manager/internal/domain"
)

const spotsTable = "spots"

type SpotRepository interface {
	CountByMonth(ctx context.Context, month string) (int, error)
	DeleteByMonth(ctx context.Context, month string) (int64, error)
	BulkInsert(ctx context.Context, batchID string, spots []*domain.Spot) (int, error)
	MarkHistorical(ctx context.Context, month string) (int64, error)
}

type spotRepository struct {
	sess *postgres.Session
}

func NewSpotRepository(sess *postgres.Session) SpotRepository {
	return &spotRepository{sess: sess}
}

func (r *spotRepository) CountByMonth(ctx context.Context, month string) (int, error) {
	query, args, err := squirrel.
		Select("count(*)").
		From(spotsTable).
		Where(squirrel.Eq{"broadcast_month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.sess.Queryer().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar spots do mês %s: %w", month, err)
	}

	return count, nil
}

func (r *spotRepository) DeleteByMonth(ctx context.Context, month string) (int64, error) {
	query, args, err := squirrel.
		Delete(spotsTable).
		Where(squirrel.Eq{"broadcast_month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.sess.Queryer().ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao apagar spots do mês %s: %w", month, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return deleted, nil
}

func (r *spotRepository) BulkInsert(ctx context.Context, batchID string, spots []*domain.Spot) (int, error) {
	if len(spots) == 0 {
		return 0, nil
	}

	builder := squirrel.
		Insert(spotsTable).
		Columns(
			"import_batch_id", "bill_code", "air_date", "end_date", "broadcast_month",
			"day_of_week", "time_in", "time_out", "length", "media", "comments",
			"language", "format", "sequence_number", "line_number", "spot_type",
			"estimate", "gross_rate", "make_good", "spot_value", "broker_fees",
			"priority", "station_net", "sales_person", "revenue_type", "billing_type",
			"agency_flag", "affidavit_flag", "notarize_flag", "market_name",
			"customer_id", "agency_id", "market_id", "is_historical",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, spot := range spots {
		builder = builder.Values(
			batchID, spot.BillCode, spot.AirDate, spot.EndDate, spot.BroadcastMonth,
			spot.DayOfWeek, spot.TimeIn, spot.TimeOut, spot.Length, spot.Media, spot.Comments,
			spot.Language, spot.Format, spot.SequenceNumber, spot.LineNumber, spot.SpotType,
			spot.Estimate, spot.GrossRate, spot.MakeGood, spot.SpotValue, spot.BrokerFees,
			spot.Priority, spot.StationNet, spot.SalesPerson, spot.RevenueType, spot.BillingType,
			spot.AgencyFlag, spot.AffidavitFlag, spot.NotarizeFlag, spot.MarketName,
			spot.CustomerID, spot.AgencyID, spot.MarketID, spot.IsHistorical,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.sess.Queryer().ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("erro ao inserir spots do lote %s: %w", batchID, err)
	}

	return len(spots), nil
}

func (r *spotRepository) MarkHistorical(ctx context.Context, month string) (int64, error) {
	query, args, err := squirrel.
		Update(spotsTable).
		Set("is_historical", true).
		Where(squirrel.Eq{"broadcast_month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.sess.Queryer().ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao marcar spots do mês %s como históricos: %w", month, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected, nil
}
