package domain

import "fmt"

// ImportMode é o modo de importação solicitado. Enumeração fechada: o orquestrador
// faz switch exaustivo e trata o valor zero como erro, nunca como no-op.
type ImportMode string

const (
	// ImportModeHistorical importa e fecha os meses alvo; exige a identidade de
	// quem fecha. É a única operação autorizada a tocar meses já fechados.
	ImportModeHistorical ImportMode = "HISTORICAL"

	// ImportModeWeeklyUpdate substitui apenas os meses ainda abertos; meses
	// fechados presentes na planilha são ignorados silenciosamente.
	ImportModeWeeklyUpdate ImportMode = "WEEKLY_UPDATE"

	// ImportModeManual é o modo mais estrito: falha se a planilha contiver
	// qualquer mês já fechado.
	ImportModeManual ImportMode = "MANUAL"
)

// ParseImportMode converte a string da CLI para o modo correspondente.
func ParseImportMode(s string) (ImportMode, error) {
	switch ImportMode(s) {
	case ImportModeHistorical, ImportModeWeeklyUpdate, ImportModeManual:
		return ImportMode(s), nil
	default:
		return "", fmt.Errorf("modo de importação desconhecido: %q", s)
	}
}

func (m ImportMode) String() string {
	return string(m)
}
