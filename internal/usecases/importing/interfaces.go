package importing

import (
	"context"

	"github.com/vfg2006/spot-manager/infrastructure/workbook"
	"github.com/vfg2006/spot-manager/internal/domain"
	"github.com/vfg2006/spot-manager/internal/usecases/closing"
	"github.com/vfg2006/spot-manager/internal/usecases/resolving"
)

// WorkbookScanner é o recorte do scanner de planilhas que o orquestrador usa.
type WorkbookScanner interface {
	ScanMonths(ctx context.Context, path string, opts workbook.ScanOptions) (*workbook.MonthScan, error)
	StreamRows(ctx context.Context, path string, fn func(row workbook.Row) error) error
}

// ClosureLedger é o recorte do livro de fechamentos usado pela importação.
type ClosureLedger interface {
	ValidateForImport(ctx context.Context, months []string, mode domain.ImportMode) (*closing.ValidationResult, error)
	Close(ctx context.Context, month, closedBy, notes string) error
}

// BillingResolver resolve identificadores de faturamento por linha.
type BillingResolver interface {
	Resolve(ctx context.Context, billingText string) (*resolving.Resolution, error)
}

// TransactionGuard é a disciplina de transação do orquestrador. A Session do
// postgres satisfaz a interface.
type TransactionGuard interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	AdvisoryLock(ctx context.Context, key int64) error
}
