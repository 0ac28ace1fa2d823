package domain

import "strings"

// Valores canônicos de tipo de receita.
const (
	RevenueTypeInternalAdSales = "Internal Ad Sales"
	RevenueTypeDirectResponse  = "Direct Response Sales"
	RevenueTypePaidProgramming = "Paid Programming"
	RevenueTypeBrandedContent  = "Branded Content"
	RevenueTypeOutsideAdSales  = "Outside Ad Sales"
	RevenueTypeOther           = "Other"
)

// Variações textuais conhecidas de tipo de receita nas planilhas, achatadas para
// os valores canônicos. Comparação é feita em caixa baixa e sem espaços nas pontas.
var revenueTypeAliases = map[string]string{
	"internal ad sales":     RevenueTypeInternalAdSales,
	"internal":              RevenueTypeInternalAdSales,
	"ad sales":              RevenueTypeInternalAdSales,
	"direct response sales": RevenueTypeDirectResponse,
	"direct response":       RevenueTypeDirectResponse,
	"dr":                    RevenueTypeDirectResponse,
	"paid programming":      RevenueTypePaidProgramming,
	"paid program":          RevenueTypePaidProgramming,
	"religious":             RevenueTypePaidProgramming,
	"branded content":       RevenueTypeBrandedContent,
	"branded":               RevenueTypeBrandedContent,
	"outside ad sales":      RevenueTypeOutsideAdSales,
	"outside":               RevenueTypeOutsideAdSales,
	"other":                 RevenueTypeOther,
}

// NormalizeRevenueType reduz o texto da planilha ao tipo de receita canônico.
// Valores desconhecidos são mantidos como vieram (sem espaços nas pontas) para
// não perder informação na importação.
func NormalizeRevenueType(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := revenueTypeAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// Códigos canônicos de tipo de spot.
var spotTypeAliases = map[string]string{
	"av":         "AV",
	"avail":      "AV",
	"bb":         "BB",
	"billboard":  "BB",
	"bns":        "BNS",
	"bonus":      "BNS",
	"com":        "COM",
	"commercial": "COM",
	"crd":        "CRD",
	"credit":     "CRD",
	"pkg":        "PKG",
	"package":    "PKG",
	"prg":        "PRG",
	"program":    "PRG",
	"prd":        "PRD",
	"produced":   "PRD",
}

// NormalizeSpotType reduz o texto da planilha ao código canônico de tipo de spot.
// Valores não reconhecidos viram string vazia (marcador explícito de desconhecido),
// nunca falham a linha.
func NormalizeSpotType(raw string) string {
	if canonical, ok := spotTypeAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canonical
	}
	return ""
}
