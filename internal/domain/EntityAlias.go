package domain

import "time"

// Tipos de entidade que podem ter apelidos de faturamento.
const (
	EntityKindCustomer = "customer"
	EntityKindAgency   = "agency"
)

// EntityAlias mapeia uma variação textual do identificador de faturamento para um
// cliente ou agência canônicos. Mantido por administradores fora do fluxo de
// importação; a resolução consulta a tabela somente para leitura.
// Invariante: um alias ativo de (alias_text, entity_kind) aponta para exatamente
// uma entidade.
type EntityAlias struct {
	AliasText      string    `json:"alias_text"`
	EntityKind     string    `json:"entity_kind"`
	TargetEntityID int64     `json:"target_entity_id"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// Customer é um cliente canônico referenciado pelos spots.
type Customer struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Agency é uma agência canônica referenciada pelos spots.
type Agency struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Market é um mercado/praça de veiculação, resolvido por código ou nome.
type Market struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
