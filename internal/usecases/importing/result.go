package importing

import "github.com/vfg2006/spot-manager/internal/domain"

// ImportRequest descreve uma execução de importação por substituição.
type ImportRequest struct {
	WorkbookPath string
	Mode         domain.ImportMode
	// HeaderName substitui o nome padrão do cabeçalho da coluna de mês.
	HeaderName string
	// ClosedBy identifica quem fecha os meses na importação histórica.
	ClosedBy string
	// DryRun planeja a execução sem tocar o banco.
	DryRun bool
}

// ImportResult é o relatório de uma execução de importação.
type ImportResult struct {
	Success bool              `json:"success"`
	DryRun  bool              `json:"dry_run,omitempty"`
	BatchID string            `json:"batch_id,omitempty"`
	Mode    domain.ImportMode `json:"mode"`

	RecordsDeleted  int `json:"records_deleted"`
	RecordsImported int `json:"records_imported"`
	// RecordsSkipped conta linhas sem dados mínimos (bill code, data de
	// veiculação) ou com mês inconversível.
	RecordsSkipped int `json:"records_skipped"`
	// RecordsFiltered conta linhas fora do conjunto alvo de meses (inclui
	// linhas de meses fechados na atualização semanal).
	RecordsFiltered int `json:"records_filtered"`
	// UnmatchedBillCodes conta identificadores de faturamento distintos que
	// ficaram sem resolução completa de cliente/agência.
	UnmatchedBillCodes int `json:"unmatched_bill_codes"`

	// AffectedMonths é o conjunto alvo, em ordem cronológica.
	AffectedMonths []string `json:"affected_months"`
	// SkippedClosedMonths são meses da planilha ignorados por já estarem
	// fechados (atualização semanal).
	SkippedClosedMonths []string `json:"skipped_closed_months,omitempty"`
	// ClosedMonths são os meses fechados por esta execução (importação
	// histórica).
	ClosedMonths []string `json:"closed_months,omitempty"`

	Errors          []string `json:"errors,omitempty"`
	DurationSeconds float64  `json:"duration_seconds"`
}

// missTracker acumula identificadores de faturamento distintos sem resolução
// completa.
type missTracker struct {
	seen map[string]bool
}

func newMissTracker() *missTracker {
	return &missTracker{seen: make(map[string]bool)}
}

func (t *missTracker) Track(billCode string) {
	t.seen[billCode] = true
}

func (t *missTracker) Count() int {
	return len(t.seen)
}
