package importing

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/spot-manager/infrastructure/workbook"
	"github.com/vfg2006/spot-manager/internal/broadcastmonth"
	"github.com/vfg2006/spot-manager/internal/domain"
	"github.com/vfg2006/spot-manager/internal/usecases/resolving"
)

// buildSpot converte uma linha da planilha em um spot do domínio. Campos
// monetários e numéricos malformados não derrubam a linha: valor monetário
// ilegível vira zero e numérico ilegível vira nil.
func buildSpot(row workbook.Row, month string, airDate time.Time, res *resolving.Resolution) *domain.Spot {
	spot := &domain.Spot{
		BillCode:       row.BillCode(),
		AirDate:        airDate,
		EndDate:        parseDatePtr(row.EndDate()),
		BroadcastMonth: month,
		DayOfWeek:      row.Days(),
		TimeIn:         row.TimeIn(),
		TimeOut:        row.TimeOut(),
		Length:         row.Length(),
		Media:          row.Media(),
		Comments:       row.Comments(),
		Language:       row.Language(),
		Format:         row.Format(),
		SequenceNumber: parseIntPtr(row.Sequence()),
		LineNumber:     parseIntPtr(row.LineNumber()),
		SpotType:       domain.NormalizeSpotType(row.SpotType()),
		Estimate:       row.Estimate(),
		GrossRate:      parseMoney(row.UnitGrossRate()),
		MakeGood:       row.MakeGood(),
		SpotValue:      parseMoney(row.SpotValue()),
		BrokerFees:     parseMoneyPtr(row.BrokerFees()),
		Priority:       parseIntPtr(row.Priority()),
		StationNet:     parseMoney(row.StationNet()),
		SalesPerson:    row.SalesPerson(),
		RevenueType:    domain.NormalizeRevenueType(row.RevenueType()),
		BillingType:    row.BillingType(),
		AgencyFlag:     row.AgencyFlag(),
		AffidavitFlag:  row.Affidavit(),
		NotarizeFlag:   row.Notarize(),
		MarketName:     row.Market(),
	}

	if res != nil {
		spot.CustomerID = res.CustomerID
		spot.AgencyID = res.AgencyID
	}

	return spot
}

// parseMoney aceita os formatos usuais das planilhas ($1,234.56, -10.00) e
// devolve zero para células vazias ou ilegíveis.
func parseMoney(raw string) decimal.Decimal {
	cleaned := cleanMoney(raw)
	if cleaned == "" {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return value
}

func parseMoneyPtr(raw string) *decimal.Decimal {
	cleaned := cleanMoney(raw)
	if cleaned == "" {
		return nil
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &value
}

func cleanMoney(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	// Contabilidade usa parênteses para valores negativos.
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + cleaned[1:len(cleaned)-1]
	}

	return cleaned
}

func parseIntPtr(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &value
}

func parseDatePtr(raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	date, err := broadcastmonth.ParseDate(raw)
	if err != nil {
		return nil
	}
	return &date
}
