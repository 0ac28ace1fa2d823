package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spot-manager/internal/config"
	"github.com/vfg2006/spot-manager/internal/usecases/importing"
)

// StuckBatchSweeperConfig representa a configuração do varredor de lotes presos
type StuckBatchSweeperConfig struct {
	CronSchedule    string
	StuckAfterHours int
	Enabled         bool
}

// StuckBatchSweeperService agenda a varredura periódica de lotes de importação
// presos em RUNNING. Uma importação que morre no meio (processo derrubado,
// queda de energia) deixa o lote em RUNNING para sempre; a varredura é o único
// mecanismo que fecha esses registros.
type StuckBatchSweeperService struct {
	scheduler            *gocron.Scheduler
	config               StuckBatchSweeperConfig
	importService        importing.Service
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastSweepCount       int64
}

// NewStuckBatchSweeperService cria uma nova instância do varredor de lotes presos
func NewStuckBatchSweeperService(
	importService importing.Service,
	appConfig *config.Config,
) *StuckBatchSweeperService {
	sweeperConfig := StuckBatchSweeperConfig{
		CronSchedule:    appConfig.Sweeper.CronSchedule,
		StuckAfterHours: appConfig.Sweeper.StuckAfterHours,
		Enabled:         appConfig.Sweeper.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":     sweeperConfig.CronSchedule,
		"stuck_after_hours": sweeperConfig.StuckAfterHours,
		"enabled":           sweeperConfig.Enabled,
	}).Info("Configuração do varredor de lotes presos carregada")

	return &StuckBatchSweeperService{
		scheduler:     scheduler,
		config:        sweeperConfig,
		importService: importService,
		sweepRunning:  false,
	}
}

// Start inicia o agendador
func (s *StuckBatchSweeperService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Varredura de lotes presos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de varredura de lotes presos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweepStuckBatches(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de lotes presos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de varredura de lotes presos")
		s.scheduler.Stop()
	}()

	return nil
}

// sweepStuckBatches executa uma varredura, ignorando a chamada se outra já
// estiver em andamento
func (s *StuckBatchSweeperService) sweepStuckBatches(ctx context.Context) {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de lotes presos já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	startTime := time.Now()
	s.lastSweepStartedAt = startTime

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	olderThan := time.Duration(s.config.StuckAfterHours) * time.Hour

	swept, err := s.importService.SweepStuckBatches(ctx, olderThan)
	if err != nil {
		logrus.WithError(err).Error("Erro ao varrer lotes de importação presos")
		return
	}

	s.lastSweepCount = swept
	s.lastSweepCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"swept":    swept,
		"duration": time.Since(startTime).String(),
	}).Info("Varredura de lotes presos concluída")
}

// TriggerManualSweep inicia manualmente uma varredura de lotes presos
func (s *StuckBatchSweeperService) TriggerManualSweep(ctx context.Context) {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de lotes presos já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando varredura manual de lotes presos")
	go s.sweepStuckBatches(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *StuckBatchSweeperService) GetStatus() map[string]any {
	return map[string]any{
		"sweep_enabled":           s.config.Enabled,
		"sweep_cron":              s.config.CronSchedule,
		"stuck_after_hours":       s.config.StuckAfterHours,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
		"last_sweep_count":        s.lastSweepCount,
	}
}
