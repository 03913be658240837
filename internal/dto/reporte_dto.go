package dto

import "github.com/shopspring/decimal"

// ReporteMensualResponse aggregates all sales in one "YYYY-MM" bucket.
type ReporteMensualResponse struct {
	Mes         string          `json:"mes"`
	TotalVentas int             `json:"total_ventas"`
	MontoTotal  decimal.Decimal `json:"monto_total"`
	// Clientes counts distinct customers with at least one sale in the month.
	Clientes int             `json:"clientes"`
	Ventas   []VentaResponse `json:"ventas"`
}
