package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Spot representa uma veiculação comercial importada da planilha de tráfego.
// Um spot nunca é atualizado individualmente: correções acontecem apagando e
// reimportando o mês de faturamento inteiro (salvo quando o mês está fechado).
type Spot struct {
	ID             int64            `json:"id"`
	ImportBatchID  string           `json:"import_batch_id"`
	BillCode       string           `json:"bill_code"`
	AirDate        time.Time        `json:"air_date"`
	EndDate        *time.Time       `json:"end_date,omitempty"`
	BroadcastMonth string           `json:"broadcast_month"` // formato Mmm-YY
	DayOfWeek      string           `json:"day_of_week"`
	TimeIn         string           `json:"time_in"`
	TimeOut        string           `json:"time_out"`
	Length         string           `json:"length"`
	Media          string           `json:"media"`
	Comments       string           `json:"comments"`
	Language       string           `json:"language"`
	Format         string           `json:"format"`
	SequenceNumber *int             `json:"sequence_number,omitempty"`
	LineNumber     *int             `json:"line_number,omitempty"`
	SpotType       string           `json:"spot_type"`
	Estimate       string           `json:"estimate"`
	GrossRate      decimal.Decimal  `json:"gross_rate"`
	MakeGood       string           `json:"make_good"`
	SpotValue      decimal.Decimal  `json:"spot_value"`
	BrokerFees     *decimal.Decimal `json:"broker_fees,omitempty"`
	Priority       *int             `json:"priority,omitempty"`
	StationNet     decimal.Decimal  `json:"station_net"`
	SalesPerson    string           `json:"sales_person"`
	RevenueType    string           `json:"revenue_type"`
	BillingType    string           `json:"billing_type"`
	AgencyFlag     string           `json:"agency_flag"`
	AffidavitFlag  string           `json:"affidavit_flag"`
	NotarizeFlag   string           `json:"notarize_flag"`
	MarketName     string           `json:"market_name"`

	// Referências resolvidas via resolução de entidades; ficam vazias quando a
	// resolução falha (a linha é importada mesmo assim).
	CustomerID *int64 `json:"customer_id,omitempty"`
	AgencyID   *int64 `json:"agency_id,omitempty"`
	MarketID   *int64 `json:"market_id,omitempty"`

	// Marcado quando o mês de faturamento do spot é fechado.
	IsHistorical bool `json:"is_historical"`
}
