// Package workbook lê as planilhas de tráfego com excelize, localizando a
// coluna de mês de faturamento pelo cabeçalho e percorrendo as demais colunas
// por posição fixa.
package workbook

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"github.com/vfg2006/spot-manager/internal/broadcastmonth"
)

// DefaultHeaderName é o nome literal esperado da coluna de mês.
const DefaultHeaderName = "Month"

// Intervalo de linhas entre emissões de progresso.
const progressInterval = 1000

// SchemaError indica que o cabeçalho esperado não existe na planilha. Fatal
// para a varredura: nenhuma leitura parcial é tentada.
type SchemaError struct {
	Header string
	Path   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("coluna %q não encontrada no cabeçalho da planilha %s", e.Header, e.Path)
}

// ScanOptions controla a varredura de meses.
type ScanOptions struct {
	// HeaderName substitui o nome de cabeçalho padrão quando não vazio.
	HeaderName string
	// RawValues acumula o valor bruto da célula em vez da forma canônica Mmm-YY.
	RawValues bool
	// MaxRows limita as linhas processadas (diagnóstico/teste). Zero = sem limite.
	MaxRows int
	// Progress recebe o andamento da varredura. Opcional.
	Progress ProgressSink
}

// MonthScan é o resultado da varredura: meses distintos encontrados e os
// contadores que o chamador acumula para o relatório.
type MonthScan struct {
	Months        []string
	RowsProcessed int
	ParseFailures int
}

type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

// ScanMonths localiza a coluna de mês pelo cabeçalho (comparação exata após
// trim) e acumula o conjunto de meses distintos presentes na planilha. Linhas
// cuja célula de mês não é conversível são puladas e contadas, nunca fatais.
func (s *Scanner) ScanMonths(ctx context.Context, path string, opts ScanOptions) (*MonthScan, error) {
	headerName := opts.HeaderName
	if headerName == "" {
		headerName = DefaultHeaderName
	}
	sink := opts.Progress
	if sink == nil {
		sink = NopSink{}
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "erro ao abrir planilha %s", path)
	}
	defer file.Close()

	rows, err := file.Rows(file.GetSheetName(0))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao iterar linhas da planilha")
	}
	defer rows.Close()

	monthColumn, err := findHeaderColumn(rows, headerName, path)
	if err != nil {
		return nil, err
	}

	scan := &MonthScan{Months: make([]string, 0)}
	seen := make(map[string]bool)

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cells, err := rows.Columns()
		if err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao ler linha da planilha")
		}
		if isEmptyRow(cells) {
			continue
		}

		scan.RowsProcessed++

		raw := cellAt(cells, monthColumn)
		month, parseErr := broadcastmonth.Parse(raw)
		if parseErr != nil {
			scan.ParseFailures++
		} else {
			value := month
			if opts.RawValues {
				value = raw
			}
			if !seen[value] {
				seen[value] = true
				scan.Months = append(scan.Months, value)
			}
		}

		if scan.RowsProcessed%progressInterval == 0 {
			sink.Progress(scan.RowsProcessed, fmt.Sprintf("%d meses distintos até aqui", len(scan.Months)))
		}

		if opts.MaxRows > 0 && scan.RowsProcessed >= opts.MaxRows {
			break
		}
	}

	if !opts.RawValues {
		broadcastmonth.SortChronological(scan.Months)
	}

	sink.Progress(scan.RowsProcessed, "varredura de meses concluída")
	return scan, nil
}

// StreamRows percorre as linhas de dados da planilha sem materializar a aba
// inteira, entregando cada linha não vazia a fn. Erro de fn interrompe o
// streaming e é propagado.
func (s *Scanner) StreamRows(ctx context.Context, path string, fn func(row Row) error) error {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return pkgerrors.Wrapf(err, "erro ao abrir planilha %s", path)
	}
	defer file.Close()

	rows, err := file.Rows(file.GetSheetName(0))
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao iterar linhas da planilha")
	}
	defer rows.Close()

	// Pula o cabeçalho.
	if !rows.Next() {
		return nil
	}
	if _, err := rows.Columns(); err != nil {
		return pkgerrors.Wrap(err, "erro ao ler cabeçalho da planilha")
	}

	index := 1
	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}

		index++
		cells, err := rows.Columns()
		if err != nil {
			return pkgerrors.Wrap(err, "erro ao ler linha da planilha")
		}
		if isEmptyRow(cells) {
			continue
		}

		if err := fn(Row{Index: index, cells: cells}); err != nil {
			return err
		}
	}

	return nil
}

func findHeaderColumn(rows *excelize.Rows, headerName, path string) (int, error) {
	if !rows.Next() {
		return 0, &SchemaError{Header: headerName, Path: path}
	}

	header, err := rows.Columns()
	if err != nil {
		return 0, pkgerrors.Wrap(err, "erro ao ler cabeçalho da planilha")
	}

	for i, cell := range header {
		if strings.TrimSpace(cell) == headerName {
			return i, nil
		}
	}

	return 0, &SchemaError{Header: headerName, Path: path}
}

func isEmptyRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellAt(cells []string, index int) string {
	if index < len(cells) {
		return strings.TrimSpace(cells[index])
	}
	return ""
}
