package closing

import (
	"errors"
	"fmt"
)

// Erros do fechamento de meses de faturamento
var (
	// ErrInvalidMonthFormat indica mês fora do formato Mmm-YY.
	ErrInvalidMonthFormat = errors.New("formato de mês de faturamento inválido")

	// ErrMonthAlreadyClosed indica tentativa de fechar um mês já fechado.
	// Fechamento é idempotente na falha: o estado após a segunda chamada é
	// idêntico ao estado após a primeira.
	ErrMonthAlreadyClosed = errors.New("mês de faturamento já está fechado")

	// ErrMonthWithoutData indica tentativa de fechar um mês sem nenhum spot.
	// Fechar um mês vazio não tem significado e é rejeitado, nunca um sucesso
	// silencioso.
	ErrMonthWithoutData = errors.New("mês de faturamento não possui spots")
)

// ClosureError é um erro com contexto adicional de fechamento.
type ClosureError struct {
	Err     error  // Erro base
	Month   string // Mês envolvido
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ClosureError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Month, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Month)
}

// Unwrap retorna o erro subjacente
func (e *ClosureError) Unwrap() error {
	return e.Err
}

// NewClosureError cria um novo ClosureError
func NewClosureError(err error, month, details string) *ClosureError {
	return &ClosureError{
		Err:     err,
		Month:   month,
		Details: details,
	}
}
