package closing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/spot-manager/infrastructure/repository"
	"github.com/vfg2006/spot-manager/infrastructure/repository/mocks"
	"github.com/vfg2006/spot-manager/internal/domain"
	"go.uber.org/mock/gomock"
)

// passthroughGuard executa fn diretamente, simulando uma transação ambiente.
type passthroughGuard struct{}

func (passthroughGuard) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newServiceWithMocks(t *testing.T) (Service, *mocks.MockMonthClosureRepository, *mocks.MockSpotRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	closureRepo := mocks.NewMockMonthClosureRepository(ctrl)
	spotRepo := mocks.NewMockSpotRepository(ctrl)

	return NewService(closureRepo, spotRepo, passthroughGuard{}), closureRepo, spotRepo
}

func TestCloseSuccess(t *testing.T) {
	service, closureRepo, spotRepo := newServiceWithMocks(t)
	ctx := context.Background()

	closureRepo.EXPECT().Exists(ctx, "Jan-25").Return(false, nil)
	spotRepo.EXPECT().CountByMonth(ctx, "Jan-25").Return(10, nil)
	closureRepo.EXPECT().
		Insert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, closure *domain.MonthClosure) error {
			assert.Equal(t, "Jan-25", closure.BroadcastMonth)
			assert.Equal(t, "ana.santos", closure.ClosedBy)
			assert.Equal(t, "fechamento mensal", closure.Notes)
			assert.WithinDuration(t, time.Now().UTC(), closure.ClosedDate, time.Minute)
			return nil
		})
	spotRepo.EXPECT().MarkHistorical(ctx, "Jan-25").Return(int64(10), nil)

	err := service.Close(ctx, "Jan-25", "ana.santos", "fechamento mensal")
	require.NoError(t, err)
}

func TestCloseInvalidFormat(t *testing.T) {
	service, _, _ := newServiceWithMocks(t)

	err := service.Close(context.Background(), "Janeiro-25", "ana.santos", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMonthFormat)
}

// Fechar duas vezes o mesmo mês sempre falha na segunda com AlreadyClosed e não
// escreve nada: o estado após a falha é idêntico ao estado após o primeiro
// fechamento.
func TestCloseAlreadyClosedIsIdempotentFailure(t *testing.T) {
	service, closureRepo, _ := newServiceWithMocks(t)
	ctx := context.Background()

	closureRepo.EXPECT().Exists(ctx, "Jan-25").Return(true, nil)

	err := service.Close(ctx, "Jan-25", "ana.santos", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMonthAlreadyClosed)
}

func TestCloseMonthWithoutData(t *testing.T) {
	service, closureRepo, spotRepo := newServiceWithMocks(t)
	ctx := context.Background()

	closureRepo.EXPECT().Exists(ctx, "Mar-25").Return(false, nil)
	spotRepo.EXPECT().CountByMonth(ctx, "Mar-25").Return(0, nil)

	err := service.Close(ctx, "Mar-25", "ana.santos", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMonthWithoutData)
}

// Corrida entre dois fechamentos: a constraint única do banco vira
// AlreadyClosed para quem perder.
func TestCloseConcurrentDuplicate(t *testing.T) {
	service, closureRepo, spotRepo := newServiceWithMocks(t)
	ctx := context.Background()

	closureRepo.EXPECT().Exists(ctx, "Jan-25").Return(false, nil)
	spotRepo.EXPECT().CountByMonth(ctx, "Jan-25").Return(3, nil)
	closureRepo.EXPECT().Insert(ctx, gomock.Any()).Return(repository.ErrDuplicateClosure)

	err := service.Close(ctx, "Jan-25", "ana.santos", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMonthAlreadyClosed)
}

func TestClosedSubsetChronological(t *testing.T) {
	service, closureRepo, _ := newServiceWithMocks(t)
	ctx := context.Background()

	months := []string{"Feb-25", "Nov-24", "Jan-25"}
	closureRepo.EXPECT().ClosedAmong(ctx, months).Return([]string{"Feb-25", "Nov-24"}, nil)

	closed, err := service.ClosedSubset(ctx, months)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nov-24", "Feb-25"}, closed)
}

func TestClosedSubsetRejectsInvalidMonth(t *testing.T) {
	service, _, _ := newServiceWithMocks(t)

	_, err := service.ClosedSubset(context.Background(), []string{"Jan-25", "inválido"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMonthFormat)
}

func TestAllClosedChronological(t *testing.T) {
	service, closureRepo, _ := newServiceWithMocks(t)
	ctx := context.Background()

	closureRepo.EXPECT().ListAll(ctx).Return([]*domain.MonthClosure{
		{BroadcastMonth: "Feb-25"},
		{BroadcastMonth: "Nov-24"},
		{BroadcastMonth: "Dec-24"},
	}, nil)

	closures, err := service.AllClosed(ctx)
	require.NoError(t, err)

	got := make([]string, len(closures))
	for i, c := range closures {
		got[i] = c.BroadcastMonth
	}
	assert.Equal(t, []string{"Nov-24", "Dec-24", "Feb-25"}, got)
}

func TestValidateForImport(t *testing.T) {
	tests := []struct {
		name           string
		mode           domain.ImportMode
		closed         []string
		wantOK         bool
		wantSuggestion bool
	}{
		{
			name:   "histórico sempre válido mesmo com meses fechados",
			mode:   domain.ImportModeHistorical,
			closed: []string{"Jan-25"},
			wantOK: true,
		},
		{
			name:           "atualização semanal bloqueada por mês fechado",
			mode:           domain.ImportModeWeeklyUpdate,
			closed:         []string{"Jan-25"},
			wantOK:         false,
			wantSuggestion: true,
		},
		{
			name:   "atualização semanal sem meses fechados",
			mode:   domain.ImportModeWeeklyUpdate,
			closed: []string{},
			wantOK: true,
		},
		{
			name:   "manual estruturalmente válido nesta camada",
			mode:   domain.ImportModeManual,
			closed: []string{"Jan-25"},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, closureRepo, _ := newServiceWithMocks(t)
			ctx := context.Background()

			months := []string{"Jan-25", "Feb-25"}
			closureRepo.EXPECT().ClosedAmong(ctx, months).Return(tt.closed, nil)

			result, err := service.ValidateForImport(ctx, months, tt.mode)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOK, result.OK)
			assert.Equal(t, tt.closed, result.ClosedFound)
			if tt.wantSuggestion {
				assert.NotEmpty(t, result.SuggestedAction)
			}
			if len(tt.closed) == 0 {
				assert.Equal(t, months, result.OpenFound)
			}
		})
	}
}

func TestValidateForImportUnknownMode(t *testing.T) {
	service, closureRepo, _ := newServiceWithMocks(t)
	ctx := context.Background()

	closureRepo.EXPECT().ClosedAmong(ctx, gomock.Any()).Return([]string{}, nil)

	_, err := service.ValidateForImport(ctx, []string{"Jan-25"}, domain.ImportMode("FOO"))
	assert.Error(t, err)
}
