package domain

import "time"

// Status possíveis de um lote de importação. As transições RUNNING→COMPLETED e
// RUNNING→FAILED são terminais.
const (
	ImportBatchStatusRunning   = "RUNNING"
	ImportBatchStatusCompleted = "COMPLETED"
	ImportBatchStatusFailed    = "FAILED"
)

// ImportBatch é o registro de auditoria de uma tentativa de importação. É criado
// no início da tentativa e o status é o único campo mutável.
type ImportBatch struct {
	BatchID         string     `json:"batch_id"`
	ImportMode      ImportMode `json:"import_mode"`
	SourceFile      string     `json:"source_file"`
	Status          string     `json:"status"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	RecordsImported int        `json:"records_imported"`
	RecordsDeleted  int        `json:"records_deleted"`
	AffectedMonths  []string   `json:"affected_months"`
	ErrorSummary    string     `json:"error_summary,omitempty"`
}
