package importing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/spot-manager/infrastructure/repository/mocks"
	"github.com/vfg2006/spot-manager/infrastructure/workbook"
	"github.com/vfg2006/spot-manager/internal/domain"
	"github.com/vfg2006/spot-manager/internal/usecases/closing"
	"github.com/vfg2006/spot-manager/internal/usecases/resolving"
	"go.uber.org/mock/gomock"
)

// fakeScanner devolve meses e linhas pré-fabricados sem tocar arquivo algum.
type fakeScanner struct {
	months []string
	rows   [][]string
}

func (f *fakeScanner) ScanMonths(_ context.Context, _ string, _ workbook.ScanOptions) (*workbook.MonthScan, error) {
	return &workbook.MonthScan{Months: f.months, RowsProcessed: len(f.rows)}, nil
}

func (f *fakeScanner) StreamRows(_ context.Context, _ string, fn func(workbook.Row) error) error {
	for i, cells := range f.rows {
		if err := fn(workbook.NewRow(i+2, cells)); err != nil {
			return err
		}
	}
	return nil
}

type fakeLedger struct {
	validation *closing.ValidationResult
	closeErrs  map[string]error
	closed     []string
}

func (f *fakeLedger) ValidateForImport(_ context.Context, _ []string, _ domain.ImportMode) (*closing.ValidationResult, error) {
	return f.validation, nil
}

func (f *fakeLedger) Close(_ context.Context, month, _, _ string) error {
	if err := f.closeErrs[month]; err != nil {
		return err
	}
	f.closed = append(f.closed, month)
	return nil
}

// fakeResolver resolve tudo para o cliente 1, exceto os códigos listados como
// irresolvíveis.
type fakeResolver struct {
	unresolved map[string]bool
}

func (f *fakeResolver) Resolve(_ context.Context, billingText string) (*resolving.Resolution, error) {
	if f.unresolved[billingText] {
		return &resolving.Resolution{}, nil
	}
	customerID := int64(1)
	return &resolving.Resolution{CustomerID: &customerID}, nil
}

// trackingGuard executa fn diretamente e registra se há transação ambiente,
// para afirmar o que roda dentro e o que roda fora dela.
type trackingGuard struct {
	inTx      bool
	lockCalls int
}

func (g *trackingGuard) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	g.inTx = true
	defer func() { g.inTx = false }()
	return fn(ctx)
}

func (g *trackingGuard) AdvisoryLock(_ context.Context, _ int64) error {
	g.lockCalls++
	return nil
}

type orchestratorFixture struct {
	service    *service
	scanner    *fakeScanner
	ledger     *fakeLedger
	resolver   *fakeResolver
	guard      *trackingGuard
	spotRepo   *mocks.MockSpotRepository
	batchRepo  *mocks.MockImportBatchRepository
	entityRepo *mocks.MockEntityRepository
}

func newOrchestrator(t *testing.T, scanner *fakeScanner, ledger *fakeLedger) *orchestratorFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &orchestratorFixture{
		scanner:    scanner,
		ledger:     ledger,
		resolver:   &fakeResolver{},
		guard:      &trackingGuard{},
		spotRepo:   mocks.NewMockSpotRepository(ctrl),
		batchRepo:  mocks.NewMockImportBatchRepository(ctrl),
		entityRepo: mocks.NewMockEntityRepository(ctrl),
	}

	f.service = NewService(
		f.scanner, f.ledger, f.resolver,
		f.spotRepo, f.batchRepo, f.entityRepo, f.guard,
	).(*service)

	return f
}

// Célula por posição: bill code na 0, data inicial na 1, mês na 18.
func makeCells(billCode, startDate, month string) []string {
	cells := make([]string, 29)
	cells[0] = billCode
	cells[1] = startDate
	cells[17] = "150.00"
	cells[18] = month
	return cells
}

func openValidation(months []string) *closing.ValidationResult {
	return &closing.ValidationResult{OK: true, ClosedFound: []string{}, OpenFound: months}
}

func TestExecuteReplacementWeeklyHappyPath(t *testing.T) {
	scanner := &fakeScanner{
		months: []string{"Jan-25"},
		rows: [][]string{
			makeCells("Acme:Big Corp", "2025-01-06", "1/6/2025"),
			makeCells("Acme:Big Corp", "2025-01-13", "1/13/2025"),
			makeCells("Outside LLC", "2025-01-20", "1/20/2025"),
		},
	}
	f := newOrchestrator(t, scanner, &fakeLedger{validation: openValidation([]string{"Jan-25"})})
	ctx := context.Background()

	f.batchRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *domain.ImportBatch) error {
			assert.Equal(t, domain.ImportBatchStatusRunning, batch.Status)
			assert.Equal(t, []string{"Jan-25"}, batch.AffectedMonths)
			assert.False(t, f.guard.inTx, "o lote deve ser criado fora da transação")
			return nil
		})
	f.spotRepo.EXPECT().DeleteByMonth(ctx, "Jan-25").Return(int64(5), nil)
	f.spotRepo.EXPECT().
		BulkInsert(ctx, gomock.Any(), gomock.Len(3)).
		DoAndReturn(func(_ context.Context, batchID string, spots []*domain.Spot) (int, error) {
			assert.True(t, f.guard.inTx, "a inserção deve rodar dentro da transação")
			for _, spot := range spots {
				assert.Equal(t, batchID, spot.ImportBatchID)
				assert.Equal(t, "Jan-25", spot.BroadcastMonth)
			}
			return len(spots), nil
		})
	f.batchRepo.EXPECT().
		MarkCompleted(ctx, gomock.Any(), 3, 5).
		DoAndReturn(func(_ context.Context, _ string, _, _ int) error {
			assert.True(t, f.guard.inTx, "a conclusão do lote deve rodar na mesma transação")
			return nil
		})

	result, err := f.service.ExecuteReplacement(ctx, ImportRequest{
		WorkbookPath: "traffic.xlsx",
		Mode:         domain.ImportModeWeeklyUpdate,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 5, result.RecordsDeleted)
	assert.Equal(t, 3, result.RecordsImported)
	assert.Equal(t, []string{"Jan-25"}, result.AffectedMonths)
	assert.Equal(t, 1, f.guard.lockCalls, "importações concorrentes serializam no advisory lock")
	assert.NotEmpty(t, result.BatchID)
}

func TestExecuteReplacementDryRunTouchesNothing(t *testing.T) {
	scanner := &fakeScanner{months: []string{"Jan-25", "Feb-25"}}
	f := newOrchestrator(t, scanner, &fakeLedger{validation: openValidation([]string{"Jan-25", "Feb-25"})})

	// Nenhuma expectativa nos repositórios: qualquer chamada falha o teste.
	result, err := f.service.ExecuteReplacement(context.Background(), ImportRequest{
		WorkbookPath: "traffic.xlsx",
		Mode:         domain.ImportModeWeeklyUpdate,
		DryRun:       true,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.DryRun)
	assert.Empty(t, result.BatchID)
	assert.Equal(t, []string{"Jan-25", "Feb-25"}, result.AffectedMonths)
}

func TestExecuteReplacementWeeklyAllMonthsClosed(t *testing.T) {
	scanner := &fakeScanner{months: []string{"Jan-25"}}
	ledger := &fakeLedger{validation: &closing.ValidationResult{
		OK:          false,
		ClosedFound: []string{"Jan-25"},
		OpenFound:   []string{},
	}}
	f := newOrchestrator(t, scanner, ledger)

	result, err := f.service.ExecuteReplacement(context.Background(), ImportRequest{
		WorkbookPath: "traffic.xlsx",
		Mode:         domain.ImportModeWeeklyUpdate,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.BatchID, "sem meses abertos não há lote")
	assert.Equal(t, []string{"Jan-25"}, result.SkippedClosedMonths)
	assert.Zero(t, result.RecordsImported)
}

// Atualização semanal com mês fechado na planilha: só o mês aberto é
// substituído; as linhas do mês fechado são filtradas e o mês aparece como
// ignorado no relatório.
func TestExecuteReplacementWeeklySkipsClosedMonths(t *testing.T) {
	scanner := &fakeScanner{
		months: []string{"Jan-25", "Feb-25"},
		rows: [][]string{
			makeCells("Acme", "2025-01-06", "1/6/2025"),
			makeCells("Acme", "2025-02-03", "2/3/2025"),
		},
	}
	ledger := &fakeLedger{validation: &closing.ValidationResult{
		OK:          false,
		ClosedFound: []string{"Jan-25"},
		OpenFound:   []string{"Feb-25"},
	}}
	f := newOrchestrator(t, scanner, ledger)
	ctx := context.Background()

	f.batchRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	f.spotRepo.EXPECT().DeleteByMonth(ctx, "Feb-25").Return(int64(4), nil)
	f.spotRepo.EXPECT().
		BulkInsert(ctx, gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, _ string, spots []*domain.Spot) (int, error) {
			assert.Equal(t, "Feb-25", spots[0].BroadcastMonth)
			return 1, nil
		})
	f.batchRepo.EXPECT().MarkCompleted(ctx, gomock.Any(), 1, 4).Return(nil)

	result, err := f.service.ExecuteReplacement(ctx, ImportRequest{
		WorkbookPath: "traffic.xlsx",
		Mode:         domain.ImportModeWeeklyUpdate,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Feb-25"}, result.AffectedMonths)
	assert.Equal(t, []string{"Jan-25"}, result.SkippedClosedMonths)
	assert.Equal(t, 1, result.RecordsFiltered, "a linha de Jan-25 é filtrada, não importada")
}

func TestExecuteReplacementManualRejectsClosedMonths(t *testing.T) {
	scanner := &fakeScanner{months: []string{"Jan-25", "Feb-25"}}
	ledger := &fakeLedger{validation: &closing.ValidationResult{
		OK:          true,
		ClosedFound: []string{"Jan-25"},
		OpenFound:   []string{"Feb-25"},
	}}
	f := newOrchestrator(t, scanner, ledger)

	_, err := f.service.ExecuteReplacement(context.Background(), ImportRequest{
		WorkbookPath: "traffic.xlsx",
		Mode:         domain.ImportModeManual,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClosedMonthsPresent)
}

func TestExecuteReplacementHistoricalRequiresClosedBy(t *testing.T) {
	scanner := &fakeScanner{months: []string{"Jan-25"}}
	f := newOrchestrator(t, scanner, &fakeLedger{validation: openValidation([]string{"Jan-25"})})

	_, err := f.service.ExecuteReplacement(context.Background(), ImportRequest{
		WorkbookPath: "traffic.xlsx",
		Mode:         domain.ImportModeHistorical,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingClosedBy)
}

func TestExecuteReplacementNoMonthsFound(t *testing.T) {
	scanner := &fakeScanner{months: []string{}}
	f := newOrchestrator(t, scanner, &fakeLedger{})

	_, err := f.service.ExecuteReplacement(context.Background(), ImportRequest{
		WorkbookPath: "vazia.xlsx",
		Mode:         domain.ImportModeWeeklyUpdate,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMonthsFound)
}

// Falha no meio da substituição: a transação é revertida e a falha do lote é
// registrada fora dela, para sobreviver ao rollback.
func TestExecuteReplacementFailureRecordedOutsideTransaction(t *testing.T) {
	scanner := &fakeScanner{
		months: []string{"Jan-25"},
		rows:   [][]string{makeCells("Acme", "2025-01-06", "1/6/2025")},
	}
	f := newOrchestrator(t, scanner, &fakeLedger{validation: openValidation([]string{"Jan-25"})})
	ctx := context.Background()

	boom := errors.New("disco cheio")
	f.batchRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	f.spotRepo.EXPECT().DeleteByMonth(ctx, "Jan-25").Return(int64(2), nil)
	f.spotRepo.EXPECT().BulkInsert(ctx, gomock.Any(), gomock.Any()).Return(0, boom)
	f.batchRepo.EXPECT().
		MarkFailed(ctx, gomock.Any(), "disco cheio").
		DoAndReturn(func(_ context.Context, _, _ string) error {
			assert.False(t, f.guard.inTx, "a falha deve ser registrada fora da transação revertida")
			return nil
		})

	_, err := f.service.ExecuteReplacement(ctx, ImportRequest{
		WorkbookPath: "traffic.xlsx",
		Mode:         domain.ImportModeWeeklyUpdate,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImportFailed)

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.NotEmpty(t, importErr.BatchID)
}

// Importação histórica: fecha os meses alvo na mesma transação; um mês que não
// pode ser fechado entra no relatório e não derruba a importação.
func TestExecuteReplacementHistoricalClosesMonths(t *testing.T) {
	scanner := &fakeScanner{
		months: []string{"Jan-25", "Feb-25"},
		rows: [][]string{
			makeCells("Acme:Big Corp", "2025-01-06", "1/6/2025"),
			makeCells("Acme:Big Corp", "2025-02-03", "2/3/2025"),
			makeCells("Desconhecido", "2025-02-10", "2/10/2025"),
			makeCells("Desconhecido", "2025-02-17", "2/17/2025"),
			makeCells("", "2025-01-06", "1/6/2025"),            // sem bill code
			makeCells("Acme", "2025-01-06", "mês ilegível"),    // mês inconversível
			makeCells("Acme", "2024-12-02", "12/2/2024"),       // fora do alvo
		},
	}
	ledger := &fakeLedger{
		validation: openValidation([]string{"Jan-25", "Feb-25"}),
		closeErrs: map[string]error{
			"Feb-25": closing.NewClosureError(closing.ErrMonthAlreadyClosed, "Feb-25", ""),
		},
	}
	f := newOrchestrator(t, scanner, ledger)
	f.resolver.unresolved = map[string]bool{"Desconhecido": true}
	ctx := context.Background()

	f.batchRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	f.spotRepo.EXPECT().DeleteByMonth(ctx, "Jan-25").Return(int64(10), nil)
	f.spotRepo.EXPECT().DeleteByMonth(ctx, "Feb-25").Return(int64(8), nil)
	f.spotRepo.EXPECT().
		BulkInsert(ctx, gomock.Any(), gomock.Len(4)).
		DoAndReturn(func(_ context.Context, _ string, spots []*domain.Spot) (int, error) {
			return len(spots), nil
		})
	// Feb-25 já estava fechado: os spots reinseridos perderam a marca de
	// histórico e ela é restaurada na mesma transação.
	f.spotRepo.EXPECT().
		MarkHistorical(ctx, "Feb-25").
		DoAndReturn(func(_ context.Context, _ string) (int64, error) {
			assert.True(t, f.guard.inTx, "a restauração da marca deve rodar na transação da importação")
			return int64(3), nil
		})
	f.batchRepo.EXPECT().MarkCompleted(ctx, gomock.Any(), 4, 18).Return(nil)

	result, err := f.service.ExecuteReplacement(ctx, ImportRequest{
		WorkbookPath: "historico.xlsx",
		Mode:         domain.ImportModeHistorical,
		ClosedBy:     "ana.santos",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 18, result.RecordsDeleted)
	assert.Equal(t, 4, result.RecordsImported)
	assert.Equal(t, 2, result.RecordsSkipped)
	assert.Equal(t, 1, result.RecordsFiltered)
	assert.Equal(t, 1, result.UnmatchedBillCodes, "códigos distintos, não linhas")
	assert.Equal(t, []string{"Jan-25"}, result.ClosedMonths)
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, []string{"Jan-25"}, ledger.closed)
}

// A reinserção acontece em lotes de tamanho fixo.
func TestExecuteReplacementInsertBatching(t *testing.T) {
	rows := make([][]string, 0, 5)
	for i := 0; i < 5; i++ {
		rows = append(rows, makeCells("Acme", "2025-01-06", "1/6/2025"))
	}
	scanner := &fakeScanner{months: []string{"Jan-25"}, rows: rows}
	f := newOrchestrator(t, scanner, &fakeLedger{validation: openValidation([]string{"Jan-25"})})
	f.service.insertBatchSize = 2
	ctx := context.Background()

	f.batchRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	f.spotRepo.EXPECT().DeleteByMonth(ctx, "Jan-25").Return(int64(0), nil)

	var batchSizes []int
	f.spotRepo.EXPECT().
		BulkInsert(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, spots []*domain.Spot) (int, error) {
			batchSizes = append(batchSizes, len(spots))
			return len(spots), nil
		}).
		Times(3)
	f.batchRepo.EXPECT().MarkCompleted(ctx, gomock.Any(), 5, 0).Return(nil)

	result, err := f.service.ExecuteReplacement(ctx, ImportRequest{
		WorkbookPath: "traffic.xlsx",
		Mode:         domain.ImportModeWeeklyUpdate,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.RecordsImported)
	assert.Equal(t, []int{2, 2, 1}, batchSizes)
}

// Linhas com mercado preenchido resolvem o id do mercado; mercado desconhecido
// não falha a linha.
func TestExecuteReplacementResolvesMarket(t *testing.T) {
	cells := makeCells("Acme", "2025-01-06", "1/6/2025")
	cells[28] = "NYC"
	scanner := &fakeScanner{months: []string{"Jan-25"}, rows: [][]string{cells}}
	f := newOrchestrator(t, scanner, &fakeLedger{validation: openValidation([]string{"Jan-25"})})
	ctx := context.Background()

	f.batchRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	f.spotRepo.EXPECT().DeleteByMonth(ctx, "Jan-25").Return(int64(0), nil)
	f.entityRepo.EXPECT().
		FindMarket(ctx, "NYC").
		Return(&domain.Market{ID: 12, Code: "NYC", Name: "New York"}, nil)
	f.spotRepo.EXPECT().
		BulkInsert(ctx, gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, _ string, spots []*domain.Spot) (int, error) {
			require.NotNil(t, spots[0].MarketID)
			assert.Equal(t, int64(12), *spots[0].MarketID)
			return 1, nil
		})
	f.batchRepo.EXPECT().MarkCompleted(ctx, gomock.Any(), 1, 0).Return(nil)

	_, err := f.service.ExecuteReplacement(ctx, ImportRequest{
		WorkbookPath: "traffic.xlsx",
		Mode:         domain.ImportModeWeeklyUpdate,
	})
	require.NoError(t, err)
}

func TestSweepStuckBatches(t *testing.T) {
	f := newOrchestrator(t, &fakeScanner{}, &fakeLedger{})
	ctx := context.Background()

	f.batchRepo.EXPECT().SweepStuck(ctx, 2*time.Hour).Return(int64(3), nil)

	swept, err := f.service.SweepStuckBatches(ctx, 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(3), swept)
}
