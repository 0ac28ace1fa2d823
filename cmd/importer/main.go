package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/spot-manager/infrastructure/database/postgres"
	"github.com/vfg2006/spot-manager/infrastructure/repository"
	"github.com/vfg2006/spot-manager/infrastructure/workbook"
	"github.com/vfg2006/spot-manager/internal/config"
	"github.com/vfg2006/spot-manager/internal/domain"
	"github.com/vfg2006/spot-manager/internal/scheduler"
	"github.com/vfg2006/spot-manager/internal/usecases/closing"
	"github.com/vfg2006/spot-manager/internal/usecases/importing"
	"github.com/vfg2006/spot-manager/internal/usecases/resolving"
	"github.com/vfg2006/spot-manager/pkg/log"
	"github.com/vfg2006/spot-manager/pkg/utils"
)

var (
	flagDSN     string
	flagVerbose bool
	flagJSON    bool
)

// app concentra a fiação dos serviços: config → conexão → sessão →
// repositórios → serviços.
type app struct {
	cfg            *config.Config
	conn           *postgres.Connection
	batchRepo      repository.ImportBatchRepository
	closingService closing.Service
	importService  importing.Service
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}
	if flagDSN != "" {
		cfg.Database.DSN = flagDSN
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	sess := postgres.NewSession(conn)
	spotRepo := repository.NewSpotRepository(sess)
	closureRepo := repository.NewMonthClosureRepository(sess)
	batchRepo := repository.NewImportBatchRepository(sess)
	entityRepo := repository.NewEntityRepository(sess)

	closingService := closing.NewService(closureRepo, spotRepo, sess)
	resolvingService := resolving.NewService(entityRepo)

	importService := importing.NewService(
		workbook.NewScanner(),
		closingService,
		resolvingService,
		spotRepo,
		batchRepo,
		entityRepo,
		sess,
	)

	return &app{
		cfg:            cfg,
		conn:           conn,
		batchRepo:      batchRepo,
		closingService: closingService,
		importService:  importService,
	}, nil
}

func (a *app) Close() {
	if err := a.conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com o banco")
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "spot-manager",
		Short:         "Importação e fechamento de meses de faturamento de spots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetFormatter(&logrus.TextFormatter{
				FullTimestamp:   true,
				TimestampFormat: time.RFC3339,
			})
			if flagVerbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			// Cada execução ganha um id de correlação, propagado pelo contexto
			// para os logs dos serviços.
			ctx, correlationID := log.WithCorrelationID(cmd.Context())
			cmd.SetContext(ctx)
			log.ForContext(ctx).Debugf("Comando %s iniciado (correlação %s)", cmd.Name(), correlationID)
		},
	}

	root.PersistentFlags().StringVar(&flagDSN, "dsn", "", "DSN do PostgreSQL (sobrepõe a configuração)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "logs em nível debug")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "saída em JSON")

	root.AddCommand(newImportCmd())
	root.AddCommand(newCloseCmd())
	root.AddCommand(newSweepCmd())
	root.AddCommand(newBatchesCmd())

	return root
}

func newImportCmd() *cobra.Command {
	var (
		flagMode     string
		flagClosedBy string
		flagDryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "import <planilha.xlsx>",
		Short: "Importa uma planilha de tráfego substituindo os meses presentes nela",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseImportMode(flagMode)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.importService.ExecuteReplacement(cmd.Context(), importing.ImportRequest{
				WorkbookPath: args[0],
				Mode:         mode,
				HeaderName:   a.cfg.Import.HeaderName,
				ClosedBy:     flagClosedBy,
				DryRun:       flagDryRun,
			})
			if err != nil {
				return err
			}

			printImportResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagMode, "mode", "m", "", "modo de importação: HISTORICAL, WEEKLY_UPDATE ou MANUAL")
	cmd.Flags().StringVar(&flagClosedBy, "closed-by", "", "quem fecha os meses (obrigatório no modo HISTORICAL)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "planeja a importação sem tocar o banco")
	_ = cmd.MarkFlagRequired("mode")

	return cmd
}

func printImportResult(cmd *cobra.Command, result *importing.ImportResult) {
	if flagJSON {
		cmd.Println(utils.PrettyJson(result))
		return
	}

	if result.DryRun {
		cmd.Printf("Simulação: %d mês(es) seriam substituídos: %v\n",
			len(result.AffectedMonths), result.AffectedMonths)
		return
	}

	cmd.Printf("Lote %s concluído em %.1fs\n", result.BatchID, result.DurationSeconds)
	cmd.Printf("  meses substituídos: %v\n", result.AffectedMonths)
	cmd.Printf("  apagados: %d  importados: %d  pulados: %d  filtrados: %d\n",
		result.RecordsDeleted, result.RecordsImported, result.RecordsSkipped, result.RecordsFiltered)
	if result.UnmatchedBillCodes > 0 {
		cmd.Printf("  códigos de faturamento sem resolução: %d\n", result.UnmatchedBillCodes)
	}
	if len(result.SkippedClosedMonths) > 0 {
		cmd.Printf("  meses fechados ignorados: %v\n", result.SkippedClosedMonths)
	}
	if len(result.ClosedMonths) > 0 {
		cmd.Printf("  meses fechados nesta importação: %v\n", result.ClosedMonths)
	}
	for _, msg := range result.Errors {
		cmd.Printf("  aviso: %s\n", msg)
	}
}

func newCloseCmd() *cobra.Command {
	var (
		flagClosedBy string
		flagNotes    string
	)

	cmd := &cobra.Command{
		Use:   "close <Mmm-YY>",
		Short: "Fecha permanentemente um mês de faturamento",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.closingService.Close(cmd.Context(), args[0], flagClosedBy, flagNotes); err != nil {
				return err
			}

			cmd.Printf("Mês %s fechado por %s\n", args[0], flagClosedBy)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagClosedBy, "closed-by", "", "quem está fechando o mês")
	cmd.Flags().StringVar(&flagNotes, "notes", "", "observações do fechamento")
	_ = cmd.MarkFlagRequired("closed-by")

	return cmd
}

func newSweepCmd() *cobra.Command {
	var (
		flagOlderThan time.Duration
		flagWatch     bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Marca como FAILED lotes de importação presos em RUNNING",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if flagWatch {
				return runSweeperDaemon(cmd.Context(), a)
			}

			olderThan := flagOlderThan
			if olderThan == 0 {
				olderThan = time.Duration(a.cfg.Sweeper.StuckAfterHours) * time.Hour
			}

			swept, err := a.importService.SweepStuckBatches(cmd.Context(), olderThan)
			if err != nil {
				return err
			}

			cmd.Printf("%d lote(s) preso(s) marcado(s) como FAILED\n", swept)
			return nil
		},
	}

	cmd.Flags().DurationVar(&flagOlderThan, "older-than", 0, "idade mínima do lote preso (padrão: configuração)")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "roda a varredura periodicamente até ser interrompido")

	return cmd
}

// runSweeperDaemon mantém o agendador de varredura rodando até SIGINT/SIGTERM.
func runSweeperDaemon(ctx context.Context, a *app) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := scheduler.NewStuckBatchSweeperService(a.importService, a.cfg)
	if err := sweeper.Start(ctx); err != nil {
		return err
	}

	logrus.Info("Varredor de lotes presos em execução; Ctrl+C para sair")
	<-ctx.Done()
	return nil
}

func newBatchesCmd() *cobra.Command {
	var flagLimit uint64

	cmd := &cobra.Command{
		Use:   "batches",
		Short: "Lista os lotes de importação mais recentes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			batches, err := a.batchRepo.ListRecent(cmd.Context(), flagLimit)
			if err != nil {
				return err
			}

			if flagJSON {
				cmd.Println(utils.PrettyJson(batches))
				return nil
			}

			for _, batch := range batches {
				line := fmt.Sprintf("%s  %-13s  %-9s  importados=%d apagados=%d  %s",
					batch.StartedAt.Format(time.RFC3339),
					batch.ImportMode,
					batch.Status,
					batch.RecordsImported,
					batch.RecordsDeleted,
					batch.BatchID,
				)
				if batch.ErrorSummary != "" {
					line += "  (" + batch.ErrorSummary + ")"
				}
				cmd.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&flagLimit, "limit", 20, "quantidade de lotes listados")

	return cmd
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
