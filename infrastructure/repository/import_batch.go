package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/spot-manager/infrastructure/database/postgres"
	"github.com/vfg2006/spot-manager/internal/domain"
)

const importBatchesTable = "import_batches"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ImportBatchRepository interface {
	Create(ctx context.Context, batch *domain.ImportBatch) error
	MarkCompleted(ctx context.Context, batchID string, imported, deleted int) error
	MarkFailed(ctx context.Context, batchID, summary string) error
	SweepStuck(ctx context.Context, olderThan time.Duration) (int64, error)
	GetByID(ctx context.Context, batchID string) (*domain.ImportBatch, error)
	ListRecent(ctx context.Context, limit uint64) ([]*domain.ImportBatch, error)
}

type importBatchRepository struct {
	sess *postgres.Session
}

func NewImportBatchRepository(sess *postgres.Session) ImportBatchRepository {
	return &importBatchRepository{sess: sess}
}

func (r *importBatchRepository) Create(ctx context.Context, batch *domain.ImportBatch) error {
	monthsJSON, err := json.Marshal(batch.AffectedMonths)
	if err != nil {
		return fmt.Errorf("erro ao serializar meses afetados: %w", err)
	}

	query, args, err := squirrel.
		Insert(importBatchesTable).
		Columns("batch_id", "import_mode", "source_file", "status", "started_at", "affected_months").
		Values(batch.BatchID, batch.ImportMode.String(), batch.SourceFile, batch.Status, batch.StartedAt, monthsJSON).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.sess.Queryer().ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar lote de importação %s: %w", batch.BatchID, err)
	}

	return nil
}

func (r *importBatchRepository) MarkCompleted(ctx context.Context, batchID string, imported, deleted int) error {
	return r.finalize(ctx, batchID, domain.ImportBatchStatusCompleted, func(b squirrel.UpdateBuilder) squirrel.UpdateBuilder {
		return b.
			Set("records_imported", imported).
			Set("records_deleted", deleted)
	})
}

func (r *importBatchRepository) MarkFailed(ctx context.Context, batchID, summary string) error {
	return r.finalize(ctx, batchID, domain.ImportBatchStatusFailed, func(b squirrel.UpdateBuilder) squirrel.UpdateBuilder {
		return b.Set("error_summary", summary)
	})
}

// finalize aplica uma transição terminal de status. Só lotes RUNNING são
// elegíveis: COMPLETED e FAILED nunca voltam atrás.
func (r *importBatchRepository) finalize(
	ctx context.Context,
	batchID, status string,
	decorate func(squirrel.UpdateBuilder) squirrel.UpdateBuilder,
) error {
	builder := squirrel.
		Update(importBatchesTable).
		Set("status", status).
		Set("completed_at", time.Now().UTC()).
		Where(squirrel.Eq{"batch_id": batchID, "status": domain.ImportBatchStatusRunning}).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := decorate(builder).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.sess.Queryer().ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao finalizar lote %s: %w", batchID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("lote %s não está em execução; transição para %s ignorada", batchID, status)
	}

	return nil
}

// SweepStuck marca como FAILED lotes presos em RUNNING há mais tempo que o
// limite. É o único mecanismo de detecção de importações que morreram no meio.
func (r *importBatchRepository) SweepStuck(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	query, args, err := squirrel.
		Update(importBatchesTable).
		Set("status", domain.ImportBatchStatusFailed).
		Set("completed_at", time.Now().UTC()).
		Set("error_summary", "tempo limite excedido ou interrompido").
		Where(squirrel.Eq{"status": domain.ImportBatchStatusRunning}).
		Where(squirrel.Lt{"started_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.sess.Queryer().ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao varrer lotes presos: %w", err)
	}

	swept, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return swept, nil
}

func (r *importBatchRepository) GetByID(ctx context.Context, batchID string) (*domain.ImportBatch, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"batch_id": batchID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.sess.Queryer().QueryRowContext(ctx, query, args...)
	batch, err := r.scanBatch(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lote de importação: %w", err)
	}

	return batch, nil
}

func (r *importBatchRepository) ListRecent(ctx context.Context, limit uint64) ([]*domain.ImportBatch, error) {
	query, args, err := r.selectBuilder().
		OrderBy("started_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.sess.Queryer().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	batches := make([]*domain.ImportBatch, 0)
	for rows.Next() {
		batch, err := r.scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lote de importação: %w", err)
		}
		batches = append(batches, batch)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return batches, nil
}

func (r *importBatchRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"batch_id", "import_mode", "source_file", "status", "started_at",
			"completed_at", "records_imported", "records_deleted", "affected_months",
			"error_summary",
		).
		From(importBatchesTable).
		PlaceholderFormat(squirrel.Dollar)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *importBatchRepository) scanBatch(row rowScanner) (*domain.ImportBatch, error) {
	batch := &domain.ImportBatch{}
	var mode string
	var monthsJSON []byte
	var completedAt sql.NullTime
	var errorSummary sql.NullString

	err := row.Scan(
		&batch.BatchID,
		&mode,
		&batch.SourceFile,
		&batch.Status,
		&batch.StartedAt,
		&completedAt,
		&batch.RecordsImported,
		&batch.RecordsDeleted,
		&monthsJSON,
		&errorSummary,
	)
	if err != nil {
		return nil, err
	}

	batch.ImportMode = domain.ImportMode(mode)
	if completedAt.Valid {
		batch.CompletedAt = &completedAt.Time
	}
	if errorSummary.Valid {
		batch.ErrorSummary = errorSummary.String
	}
	if monthsJSON != nil {
		if err := json.Unmarshal(monthsJSON, &batch.AffectedMonths); err != nil {
			return nil, fmt.Errorf("erro ao deserializar meses afetados: %w", err)
		}
	}

	return batch, nil
}
