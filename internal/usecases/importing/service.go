// Package importing implementa a importação por substituição: os meses de
// faturamento presentes na planilha são apagados e reinseridos por inteiro em
// uma única transação, com auditoria por lote. Spots nunca são atualizados um
// a um.
package importing

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/vfg2006/spot-manager/infrastructure/repository"
	"github.com/vfg2006/spot-manager/infrastructure/workbook"
	"github.com/vfg2006/spot-manager/internal/broadcastmonth"
	"github.com/vfg2006/spot-manager/internal/domain"
	"github.com/vfg2006/spot-manager/internal/usecases/closing"
	"github.com/vfg2006/spot-manager/pkg/log"
	"github.com/vfg2006/spot-manager/pkg/utils"
)

// Chave do advisory lock que serializa importações concorrentes no banco.
const importLockKey int64 = 7431

// Tamanho dos lotes de inserção de spots.
const defaultInsertBatchSize = 200

const historicalClosureNotes = "fechado pela importação histórica"

type Service interface {
	// ExecuteReplacement executa uma importação por substituição conforme a
	// requisição. O erro retornado já teve a falha registrada no lote.
	ExecuteReplacement(ctx context.Context, req ImportRequest) (*ImportResult, error)
	// SweepStuckBatches marca como FAILED lotes presos em RUNNING há mais
	// tempo que o limite.
	SweepStuckBatches(ctx context.Context, olderThan time.Duration) (int64, error)
}

type service struct {
	scanner    WorkbookScanner
	ledger     ClosureLedger
	resolver   BillingResolver
	spotRepo   repository.SpotRepository
	batchRepo  repository.ImportBatchRepository
	entityRepo repository.EntityRepository
	guard      TransactionGuard

	insertBatchSize int
}

func NewService(
	scanner WorkbookScanner,
	ledger ClosureLedger,
	resolver BillingResolver,
	spotRepo repository.SpotRepository,
	batchRepo repository.ImportBatchRepository,
	entityRepo repository.EntityRepository,
	guard TransactionGuard,
) Service {
	return &service{
		scanner:         scanner,
		ledger:          ledger,
		resolver:        resolver,
		spotRepo:        spotRepo,
		batchRepo:       batchRepo,
		entityRepo:      entityRepo,
		guard:           guard,
		insertBatchSize: defaultInsertBatchSize,
	}
}

func (s *service) ExecuteReplacement(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	started := time.Now()
	result := &ImportResult{Mode: req.Mode}

	log.ForContext(ctx).WithFields(log.Fields{
		"workbook": req.WorkbookPath,
		"mode":     req.Mode,
		"dry_run":  req.DryRun,
	}).Info("Iniciando importação por substituição")

	scan, err := s.scanner.ScanMonths(ctx, req.WorkbookPath, workbook.ScanOptions{
		HeaderName: req.HeaderName,
		Progress:   workbook.LogSink{},
	})
	if err != nil {
		return nil, err
	}
	if len(scan.Months) == 0 {
		return nil, NewImportError(ErrNoMonthsFound, "", nil, req.WorkbookPath)
	}

	validation, err := s.ledger.ValidateForImport(ctx, scan.Months, req.Mode)
	if err != nil {
		return nil, err
	}

	target, err := s.planTarget(req, scan.Months, validation, result)
	if err != nil {
		return nil, err
	}

	if len(target) == 0 {
		// Atualização semanal com todos os meses fechados: nada a substituir,
		// e isso não é um erro.
		result.Success = true
		result.DurationSeconds = time.Since(started).Seconds()
		log.ForContext(ctx).WithField("skipped_closed", result.SkippedClosedMonths).
			Info("Nada a importar: todos os meses da planilha estão fechados")
		return result, nil
	}

	result.AffectedMonths = target

	if req.DryRun {
		result.Success = true
		result.DryRun = true
		result.DurationSeconds = time.Since(started).Seconds()
		return result, nil
	}

	batchID, err := utils.GenerateBatchID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do lote: %w", err)
	}
	result.BatchID = batchID

	// O lote é criado fora da transação principal: se a substituição falhar,
	// os dados são revertidos mas o registro de auditoria sobrevive.
	batch := &domain.ImportBatch{
		BatchID:        batchID,
		ImportMode:     req.Mode,
		SourceFile:     filepath.Base(req.WorkbookPath),
		Status:         domain.ImportBatchStatusRunning,
		StartedAt:      started.UTC(),
		AffectedMonths: target,
	}
	if err := s.batchRepo.Create(ctx, batch); err != nil {
		return nil, err
	}

	err = s.guard.WithTransaction(ctx, func(ctx context.Context) error {
		return s.replaceMonths(ctx, req, batchID, target, result)
	})
	if err != nil {
		s.recordFailure(ctx, batchID, err)
		return nil, NewImportError(ErrImportFailed, batchID, target, err.Error())
	}

	result.Success = true
	result.DurationSeconds = time.Since(started).Seconds()

	log.ForContext(ctx).WithFields(log.Fields{
		"batch_id": batchID,
		"mode":     req.Mode,
		"months":   len(target),
		"deleted":  result.RecordsDeleted,
		"imported": result.RecordsImported,
		"duration": result.DurationSeconds,
	}).Info("Importação por substituição concluída")

	return result, nil
}

// planTarget aplica a política de cada modo sobre os meses da planilha e
// devolve o conjunto alvo da substituição.
func (s *service) planTarget(
	req ImportRequest,
	months []string,
	validation *closing.ValidationResult,
	result *ImportResult,
) ([]string, error) {
	switch req.Mode {
	case domain.ImportModeHistorical:
		if req.ClosedBy == "" {
			return nil, NewImportError(ErrMissingClosedBy, "", months, "")
		}
		return months, nil

	case domain.ImportModeWeeklyUpdate:
		// Meses fechados são ignorados silenciosamente; só os abertos entram.
		result.SkippedClosedMonths = validation.ClosedFound
		return validation.OpenFound, nil

	case domain.ImportModeManual:
		if len(validation.ClosedFound) > 0 {
			return nil, NewImportError(ErrClosedMonthsPresent, "", validation.ClosedFound,
				"importação manual não toca meses fechados")
		}
		return months, nil

	default:
		return nil, fmt.Errorf("modo de importação desconhecido: %q", req.Mode)
	}
}

// replaceMonths roda dentro da transação principal: serializa com o advisory
// lock, apaga todos os meses alvo, reinsere as linhas da planilha em lotes e,
// na importação histórica, fecha os meses na mesma transação.
func (s *service) replaceMonths(
	ctx context.Context,
	req ImportRequest,
	batchID string,
	target []string,
	result *ImportResult,
) error {
	if err := s.guard.AdvisoryLock(ctx, importLockKey); err != nil {
		return err
	}

	// Todos os deletes antes de qualquer insert: em nenhum momento um mês
	// alvo fica meio substituído dentro da transação.
	targetSet := make(map[string]bool, len(target))
	for _, month := range target {
		deleted, err := s.spotRepo.DeleteByMonth(ctx, month)
		if err != nil {
			return err
		}
		result.RecordsDeleted += int(deleted)
		targetSet[month] = true
	}

	misses := newMissTracker()
	pending := make([]*domain.Spot, 0, s.insertBatchSize)

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		inserted, err := s.spotRepo.BulkInsert(ctx, batchID, pending)
		if err != nil {
			return err
		}
		result.RecordsImported += inserted
		pending = pending[:0]
		return nil
	}

	err := s.scanner.StreamRows(ctx, req.WorkbookPath, func(row workbook.Row) error {
		month, err := broadcastmonth.Parse(row.Month())
		if err != nil {
			result.RecordsSkipped++
			return nil
		}
		if !targetSet[month] {
			result.RecordsFiltered++
			return nil
		}
		if row.BillCode() == "" {
			result.RecordsSkipped++
			return nil
		}
		airDate, err := broadcastmonth.ParseDate(row.StartDate())
		if err != nil {
			result.RecordsSkipped++
			return nil
		}

		resolution, err := s.resolver.Resolve(ctx, row.BillCode())
		if err != nil {
			return err
		}
		if resolution.Incomplete() {
			misses.Track(row.BillCode())
		}

		spot := buildSpot(row, month, airDate, resolution)
		spot.ImportBatchID = batchID

		if name := row.Market(); name != "" {
			market, err := s.entityRepo.FindMarket(ctx, name)
			if err != nil {
				return err
			}
			if market != nil {
				spot.MarketID = &market.ID
			}
		}

		pending = append(pending, spot)
		if len(pending) >= s.insertBatchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}

	result.UnmatchedBillCodes = misses.Count()

	if req.Mode == domain.ImportModeHistorical {
		if err := s.closeMonths(ctx, req, target, result); err != nil {
			return err
		}
	}

	return s.batchRepo.MarkCompleted(ctx, batchID, result.RecordsImported, result.RecordsDeleted)
}

// closeMonths fecha cada mês alvo na mesma transação da importação. Falha em
// um mês (já fechado, sem dados) é registrada no relatório e não derruba a
// importação nem os demais fechamentos.
func (s *service) closeMonths(ctx context.Context, req ImportRequest, target []string, result *ImportResult) error {
	for _, month := range target {
		err := s.ledger.Close(ctx, month, req.ClosedBy, historicalClosureNotes)
		if err == nil {
			result.ClosedMonths = append(result.ClosedMonths, month)
			continue
		}

		log.ForContext(ctx).WithError(err).WithField("month", month).
			Warn("Mês não fechado durante a importação histórica")
		result.Errors = append(result.Errors, fmt.Sprintf("falha ao fechar %s: %v", month, err))

		// Mês já fechado teve os spots reinseridos sem a marca de histórico;
		// restaura a marca na mesma transação.
		if errors.Is(err, closing.ErrMonthAlreadyClosed) {
			if _, err := s.spotRepo.MarkHistorical(ctx, month); err != nil {
				return err
			}
		}
	}

	return nil
}

// recordFailure registra a falha do lote depois que a transação principal já
// foi revertida; rodando fora dela, o registro sobrevive ao rollback.
func (s *service) recordFailure(ctx context.Context, batchID string, cause error) {
	if err := s.batchRepo.MarkFailed(ctx, batchID, cause.Error()); err != nil {
		log.ForContext(ctx).WithError(err).WithField("batch_id", batchID).
			Error("Erro ao registrar a falha do lote de importação")
	}
}

func (s *service) SweepStuckBatches(ctx context.Context, olderThan time.Duration) (int64, error) {
	swept, err := s.batchRepo.SweepStuck(ctx, olderThan)
	if err != nil {
		return 0, err
	}

	if swept > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"swept":      swept,
			"older_than": olderThan.String(),
		}).Warn("Lotes de importação presos marcados como FAILED")
	}

	return swept, nil
}
