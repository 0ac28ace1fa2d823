// Package broadcastmonth concentra a conversão e validação de meses de
// faturamento no formato canônico Mmm-YY (ex.: Nov-24). Todas as funções são
// puras; estatísticas de parse são responsabilidade de quem chama.
package broadcastmonth

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Layout é o formato canônico de um mês de faturamento.
const Layout = "Jan-06"

// Formatos aceitos para células de data, tentados na ordem. O primeiro que
// funcionar vence.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"1/2/2006 15:04:05",
	"01-02-2006",
	"2006/01/02",
	"2-Jan-06",
	Layout,
}

// Abreviações canônicas dos doze meses, na ordem do calendário.
var monthAbbreviations = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var monthIndexByAbbreviation = func() map[string]int {
	m := make(map[string]int, 12)
	for i, abbr := range monthAbbreviations {
		m[abbr] = i + 1
	}
	return m
}()

// ParseError indica que um valor não pôde ser convertido para mês de faturamento.
type ParseError struct {
	Value any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("valor não conversível para mês de faturamento: %v (%T)", e.Value, e.Value)
}

// Parse converte um valor de célula (time.Time nativo ou string em um dos
// formatos aceitos) para o formato canônico Mmm-YY.
func Parse(value any) (string, error) {
	t, err := ParseDate(value)
	if err != nil {
		return "", err
	}
	return t.Format(Layout), nil
}

// ParseDate converte um valor de célula para data, tentando os formatos
// aceitos na ordem.
func ParseDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
		return time.Time{}, &ParseError{Value: v}
	default:
		return time.Time{}, &ParseError{Value: value}
	}
}

// ValidateFormat verifica o formato Mmm-YY: abreviação canônica de mês, hífen e
// dois dígitos de ano.
func ValidateFormat(s string) bool {
	if len(s) != 6 || s[3] != '-' {
		return false
	}
	if _, ok := monthIndexByAbbreviation[s[:3]]; !ok {
		return false
	}
	for _, c := range s[4:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Year extrai o ano de quatro dígitos de um mês de faturamento. Heurística
// documentada: sufixo de dois dígitos até 30 mapeia para 20xx, acima disso 19xx.
func Year(s string) (int, error) {
	if !ValidateFormat(s) {
		return 0, &ParseError{Value: s}
	}
	yy, err := strconv.Atoi(s[4:])
	if err != nil {
		return 0, &ParseError{Value: s}
	}
	if yy <= 30 {
		return 2000 + yy, nil
	}
	return 1900 + yy, nil
}

// MonthsOfYear enumera os doze meses de faturamento de um ano, Jan..Dec.
func MonthsOfYear(year int) [12]string {
	var months [12]string
	for i, abbr := range monthAbbreviations {
		months[i] = fmt.Sprintf("%s-%02d", abbr, year%100)
	}
	return months
}

// Ordinal retorna um índice monotônico (ano * 12 + mês) usado para ordenação
// cronológica.
func Ordinal(s string) (int, error) {
	year, err := Year(s)
	if err != nil {
		return 0, err
	}
	return year*12 + monthIndexByAbbreviation[s[:3]] - 1, nil
}

// SortChronological ordena in-place uma lista de meses por (ano, mês do
// calendário). Meses com formato inválido vão para o fim, na ordem original.
func SortChronological(months []string) {
	sort.SliceStable(months, func(i, j int) bool {
		oi, erri := Ordinal(months[i])
		oj, errj := Ordinal(months[j])
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		return oi < oj
	})
}
