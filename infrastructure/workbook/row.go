package workbook

import "strings"

// Posições fixas das colunas da planilha de tráfego (0-based). A posição é a
// autoridade para todas as colunas; o nome de cabeçalho só é usado para
// localizar a coluna de mês na varredura inicial.
const (
	colBillCode = iota
	colStartDate
	colEndDate
	colDays
	colTimeIn
	colTimeOut
	colLength
	colMedia
	colComments
	colLanguage
	colFormat
	colSequence
	colLineNumber
	colSpotType
	colEstimate
	colUnitGrossRate
	colMakeGood
	colSpotValue
	colMonth
	colBrokerFees
	colPriority
	colStationNet
	colSalesPerson
	colRevenueType
	colBillingType
	colAgencyFlag
	colAffidavit
	colNotarize
	colMarket
)

// Row é uma linha de dados da planilha, com acesso posicional às 29 colunas.
type Row struct {
	Index int
	cells []string
}

// NewRow monta uma linha a partir das células já extraídas. Usado pelo scanner
// e por quem precisa fabricar linhas em testes.
func NewRow(index int, cells []string) Row {
	return Row{Index: index, cells: cells}
}

func (r Row) cell(index int) string {
	if index < len(r.cells) {
		return strings.TrimSpace(r.cells[index])
	}
	return ""
}

func (r Row) BillCode() string      { return r.cell(colBillCode) }
func (r Row) StartDate() string     { return r.cell(colStartDate) }
func (r Row) EndDate() string       { return r.cell(colEndDate) }
func (r Row) Days() string          { return r.cell(colDays) }
func (r Row) TimeIn() string        { return r.cell(colTimeIn) }
func (r Row) TimeOut() string       { return r.cell(colTimeOut) }
func (r Row) Length() string        { return r.cell(colLength) }
func (r Row) Media() string         { return r.cell(colMedia) }
func (r Row) Comments() string      { return r.cell(colComments) }
func (r Row) Language() string      { return r.cell(colLanguage) }
func (r Row) Format() string        { return r.cell(colFormat) }
func (r Row) Sequence() string      { return r.cell(colSequence) }
func (r Row) LineNumber() string    { return r.cell(colLineNumber) }
func (r Row) SpotType() string      { return r.cell(colSpotType) }
func (r Row) Estimate() string      { return r.cell(colEstimate) }
func (r Row) UnitGrossRate() string { return r.cell(colUnitGrossRate) }
func (r Row) MakeGood() string      { return r.cell(colMakeGood) }
func (r Row) SpotValue() string     { return r.cell(colSpotValue) }
func (r Row) Month() string         { return r.cell(colMonth) }
func (r Row) BrokerFees() string    { return r.cell(colBrokerFees) }
func (r Row) Priority() string      { return r.cell(colPriority) }
func (r Row) StationNet() string    { return r.cell(colStationNet) }
func (r Row) SalesPerson() string   { return r.cell(colSalesPerson) }
func (r Row) RevenueType() string   { return r.cell(colRevenueType) }
func (r Row) BillingType() string   { return r.cell(colBillingType) }
func (r Row) AgencyFlag() string    { return r.cell(colAgencyFlag) }
func (r Row) Affidavit() string     { return r.cell(colAffidavit) }
func (r Row) Notarize() string      { return r.cell(colNotarize) }
func (r Row) Market() string        { return r.cell(colMarket) }
