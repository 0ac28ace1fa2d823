package domain

import "time"

// MonthClosure registra o fechamento permanente de um mês de faturamento.
// A existência do registro é a única fonte de verdade para "este mês é imutável":
// nunca é atualizado nem removido em operação normal.
type MonthClosure struct {
	BroadcastMonth string    `json:"broadcast_month"` // formato Mmm-YY, chave única
	ClosedDate     time.Time `json:"closed_date"`
	ClosedBy       string    `json:"closed_by"`
	Notes          string    `json:"notes,omitempty"`
}
