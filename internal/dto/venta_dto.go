package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
	// PrecioUnitario is the price snapshot captured from the currently-loaded
	// product list; the line total is cantidad × precio_unitario.
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"min=0"`
}

// DescuentoRequest is an optional global discount applied to the pre-tax
// subtotal. porcentaje: subtotal × valor/100. monto: min(valor, subtotal).
type DescuentoRequest struct {
	Tipo  string          `json:"tipo"  validate:"required,oneof=porcentaje monto"`
	Valor decimal.Decimal `json:"valor" validate:"min=0"`
}

type RegistrarVentaRequest struct {
	ClienteID string             `json:"cliente_id" validate:"required,uuid"`
	Items     []ItemVentaRequest `json:"items"      validate:"required,min=1,dive"`
	Descuento *DescuentoRequest  `json:"descuento"  validate:"omitempty"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// VentaFilter is bound from the query string of GET /v1/ventas.
type VentaFilter struct {
	Mes string `form:"mes" validate:"omitempty,len=7"` // "YYYY-MM"; empty = all
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
}

type VentaResponse struct {
	ID            string              `json:"id"`
	ClienteID     string              `json:"cliente_id"`
	ClienteNombre string              `json:"cliente_nombre"`
	ClienteCUIL   string              `json:"cliente_cuil"`
	Items         []ItemVentaResponse `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Descuento     decimal.Decimal     `json:"descuento"`
	Total         decimal.Decimal     `json:"total"`
	Fecha         string              `json:"fecha"`
	Mes           string              `json:"mes"`
	Anio          int                 `json:"anio"`
	CreatedAt     string              `json:"created_at"`
}

type VentaListResponse struct {
	Data     []VentaResponse `json:"data"`
	Total    int             `json:"total"`
	Cargando bool            `json:"cargando"`
	Error    string          `json:"error,omitempty"`
}
