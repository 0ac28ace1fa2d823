package importing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoMonthsFound indica que a varredura não achou nenhum mês de
	// faturamento conversível na planilha.
	ErrNoMonthsFound = errors.New("nenhum mês de faturamento encontrado na planilha")

	// ErrMissingClosedBy indica importação histórica sem a identidade de quem
	// fecha os meses.
	ErrMissingClosedBy = errors.New("importação histórica exige a identidade de quem fecha os meses")

	// ErrClosedMonthsPresent indica que a planilha contém meses já fechados em
	// um modo que não admite tocá-los.
	ErrClosedMonthsPresent = errors.New("planilha contém meses já fechados")

	// ErrImportFailed indica que a importação foi revertida; nenhum dado foi
	// alterado além do registro de auditoria do lote.
	ErrImportFailed = errors.New("importação revertida")
)

// ImportError agrega contexto de uma falha de importação: o lote (quando já
// criado), os meses envolvidos e o detalhe da causa.
type ImportError struct {
	Err     error
	BatchID string
	Months  []string
	Details string
}

func (e *ImportError) Error() string {
	msg := e.Err.Error()
	if len(e.Months) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.Months, ", "))
	}
	if e.BatchID != "" {
		msg = fmt.Sprintf("%s [lote %s]", msg, e.BatchID)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, batchID string, months []string, details string) *ImportError {
	return &ImportError{Err: err, BatchID: batchID, Months: months, Details: details}
}
