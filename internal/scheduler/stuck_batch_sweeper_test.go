package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/spot-manager/internal/usecases/importing"
)

// fakeImportService registra as varreduras solicitadas.
type fakeImportService struct {
	mu       sync.Mutex
	sweeps   []time.Duration
	swept    int64
	sweepErr error
}

func (f *fakeImportService) ExecuteReplacement(context.Context, importing.ImportRequest) (*importing.ImportResult, error) {
	return nil, errors.New("não usado neste teste")
}

func (f *fakeImportService) SweepStuckBatches(_ context.Context, olderThan time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sweeps = append(f.sweeps, olderThan)
	return f.swept, f.sweepErr
}

func TestStuckBatchSweeperService_sweepStuckBatches(t *testing.T) {
	importService := &fakeImportService{swept: 3}

	service := &StuckBatchSweeperService{
		config: StuckBatchSweeperConfig{
			CronSchedule:    "*/30 * * * *",
			StuckAfterHours: 2,
			Enabled:         true,
		},
		importService: importService,
	}

	service.sweepStuckBatches(context.Background())

	require.Len(t, importService.sweeps, 1)
	assert.Equal(t, 2*time.Hour, importService.sweeps[0])
	assert.Equal(t, int64(3), service.lastSweepCount)
	assert.False(t, service.lastSweepCompletedAt.IsZero())
}

func TestStuckBatchSweeperService_sweepSkippedWhenAlreadyRunning(t *testing.T) {
	importService := &fakeImportService{}

	service := &StuckBatchSweeperService{
		config:        StuckBatchSweeperConfig{StuckAfterHours: 2, Enabled: true},
		importService: importService,
	}
	service.sweepRunning = true

	service.sweepStuckBatches(context.Background())

	assert.Empty(t, importService.sweeps, "varredura concorrente deve ser ignorada")
}

func TestStuckBatchSweeperService_sweepErrorDoesNotUpdateStatus(t *testing.T) {
	importService := &fakeImportService{sweepErr: errors.New("banco indisponível")}

	service := &StuckBatchSweeperService{
		config:        StuckBatchSweeperConfig{StuckAfterHours: 2, Enabled: true},
		importService: importService,
	}

	service.sweepStuckBatches(context.Background())

	assert.True(t, service.lastSweepCompletedAt.IsZero())
	assert.False(t, service.sweepRunning, "a flag de execução deve ser liberada mesmo em erro")
}

func TestStuckBatchSweeperService_StartDisabled(t *testing.T) {
	service := &StuckBatchSweeperService{
		config: StuckBatchSweeperConfig{Enabled: false},
	}

	err := service.Start(context.Background())
	require.NoError(t, err)
}
