// Package closing implementa o livro de fechamentos: o controle de quais meses
// de faturamento estão permanentemente fechados e a validação de importações
// contra esse estado.
//
// Máquina de estados por mês: OPEN (implícito, ausência de registro) e CLOSED
// (terminal). Não existe transição CLOSED→OPEN; reabrir um mês é ação
// administrativa fora deste contrato.
package closing

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/spot-manager/infrastructure/repository"
	"github.com/vfg2006/spot-manager/internal/broadcastmonth"
	"github.com/vfg2006/spot-manager/internal/domain"
	"github.com/vfg2006/spot-manager/pkg/log"
)

// TransactionGuard é o recorte da disciplina de transação que o fechamento
// precisa. A Session do postgres satisfaz a interface.
type TransactionGuard interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ValidationResult é o veredito da validação de uma importação contra os meses
// fechados. Não fatal por contrato: quem chama decide se bloqueia.
type ValidationResult struct {
	OK              bool     `json:"ok"`
	ClosedFound     []string `json:"closed_found"`
	OpenFound       []string `json:"open_found"`
	Message         string   `json:"message"`
	SuggestedAction string   `json:"suggested_action,omitempty"`
}

type Service interface {
	Close(ctx context.Context, month, closedBy, notes string) error
	IsClosed(ctx context.Context, month string) (bool, error)
	ClosedSubset(ctx context.Context, months []string) ([]string, error)
	AllClosed(ctx context.Context) ([]*domain.MonthClosure, error)
	ValidateForImport(ctx context.Context, months []string, mode domain.ImportMode) (*ValidationResult, error)
}

type service struct {
	closureRepo repository.MonthClosureRepository
	spotRepo    repository.SpotRepository
	guard       TransactionGuard
}

func NewService(
	closureRepo repository.MonthClosureRepository,
	spotRepo repository.SpotRepository,
	guard TransactionGuard,
) Service {
	return &service{
		closureRepo: closureRepo,
		spotRepo:    spotRepo,
		guard:       guard,
	}
}

// Close executa a transição OPEN→CLOSED de um mês: insere o registro de
// fechamento e marca todos os spots do mês como históricos, atomicamente.
// Quando chamado dentro de uma transação ambiente (importação histórica), o
// guard reaproveita a mesma transação e o fechamento fica atômico com os dados
// que ele protege.
func (s *service) Close(ctx context.Context, month, closedBy, notes string) error {
	if !broadcastmonth.ValidateFormat(month) {
		return NewClosureError(ErrInvalidMonthFormat, month, "")
	}

	closed, err := s.closureRepo.Exists(ctx, month)
	if err != nil {
		return fmt.Errorf("erro ao verificar fechamento existente: %w", err)
	}
	if closed {
		return NewClosureError(ErrMonthAlreadyClosed, month, "")
	}

	count, err := s.spotRepo.CountByMonth(ctx, month)
	if err != nil {
		return fmt.Errorf("erro ao contar spots do mês: %w", err)
	}
	if count == 0 {
		return NewClosureError(ErrMonthWithoutData, month, "")
	}

	err = s.guard.WithTransaction(ctx, func(ctx context.Context) error {
		closure := &domain.MonthClosure{
			BroadcastMonth: month,
			ClosedDate:     time.Now().UTC(),
			ClosedBy:       closedBy,
			Notes:          notes,
		}
		if err := s.closureRepo.Insert(ctx, closure); err != nil {
			if err == repository.ErrDuplicateClosure {
				return NewClosureError(ErrMonthAlreadyClosed, month, "fechamento concorrente detectado")
			}
			return err
		}

		marked, err := s.spotRepo.MarkHistorical(ctx, month)
		if err != nil {
			return err
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"month":       month,
			"closed_by":   closedBy,
			"spots_count": marked,
		}).Info("Mês de faturamento fechado")

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *service) IsClosed(ctx context.Context, month string) (bool, error) {
	if !broadcastmonth.ValidateFormat(month) {
		return false, NewClosureError(ErrInvalidMonthFormat, month, "")
	}
	return s.closureRepo.Exists(ctx, month)
}

// ClosedSubset retorna exatamente os membros de months que possuem registro de
// fechamento. Interseção de conjuntos, sem normalização implícita além da
// validação de formato; a saída vem em ordem cronológica.
func (s *service) ClosedSubset(ctx context.Context, months []string) ([]string, error) {
	for _, month := range months {
		if !broadcastmonth.ValidateFormat(month) {
			return nil, NewClosureError(ErrInvalidMonthFormat, month, "")
		}
	}

	closed, err := s.closureRepo.ClosedAmong(ctx, months)
	if err != nil {
		return nil, err
	}

	broadcastmonth.SortChronological(closed)
	return closed, nil
}

// AllClosed lista todos os fechamentos em ordem cronológica (ano, mês do
// calendário) — as strings Mmm-YY não ordenam naturalmente, então a ordenação
// é feita aqui.
func (s *service) AllClosed(ctx context.Context) ([]*domain.MonthClosure, error) {
	closures, err := s.closureRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	months := make([]string, len(closures))
	byMonth := make(map[string]*domain.MonthClosure, len(closures))
	for i, closure := range closures {
		months[i] = closure.BroadcastMonth
		byMonth[closure.BroadcastMonth] = closure
	}
	broadcastmonth.SortChronological(months)

	ordered := make([]*domain.MonthClosure, len(months))
	for i, month := range months {
		ordered[i] = byMonth[month]
	}

	return ordered, nil
}

// ValidateForImport aplica a política estrutural de cada modo de importação
// sobre o conjunto de meses da planilha.
func (s *service) ValidateForImport(ctx context.Context, months []string, mode domain.ImportMode) (*ValidationResult, error) {
	closed, err := s.ClosedSubset(ctx, months)
	if err != nil {
		return nil, err
	}

	closedSet := make(map[string]bool, len(closed))
	for _, month := range closed {
		closedSet[month] = true
	}

	open := make([]string, 0, len(months))
	for _, month := range months {
		if !closedSet[month] {
			open = append(open, month)
		}
	}
	broadcastmonth.SortChronological(open)

	result := &ValidationResult{
		OK:          true,
		ClosedFound: closed,
		OpenFound:   open,
	}

	switch mode {
	case domain.ImportModeHistorical:
		// Importação histórica é a própria operação de fechamento; pode tocar
		// meses já fechados, mas deixamos o aviso registrado.
		result.Message = "importação histórica estruturalmente válida"
		if len(closed) > 0 {
			log.ForContext(ctx).WithField("closed_months", closed).
				Warn("Importação histórica contém meses já fechados")
		}
	case domain.ImportModeWeeklyUpdate:
		if len(closed) > 0 {
			result.OK = false
			result.Message = fmt.Sprintf("planilha contém %d mês(es) já fechado(s)", len(closed))
			result.SuggestedAction = "remova as linhas dos meses fechados e tente novamente"
		} else {
			result.Message = "atualização semanal estruturalmente válida"
		}
	case domain.ImportModeManual:
		result.Message = "importação manual estruturalmente válida"
		if len(closed) > 0 {
			log.ForContext(ctx).WithField("closed_months", closed).
				Warn("Importação manual contém meses já fechados; o orquestrador aplicará a política estrita")
		}
	default:
		return nil, fmt.Errorf("modo de importação desconhecido: %q", mode)
	}

	return result, nil
}
