package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AjustarStockRequest is a manual stock adjustment. It writes the product's
// stock and appends one ledger movement in the same transaction.
type AjustarStockRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Tipo       string `json:"tipo"        validate:"required,oneof=IN OUT"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
	Motivo     string `json:"motivo"      validate:"required,min=3,max=200"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type MovimientoFilter struct {
	ProductoID string `form:"producto_id" validate:"omitempty,uuid"`
	Tipo       string `form:"tipo"        validate:"omitempty,oneof=IN OUT"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoResponse struct {
	ID         string `json:"id"`
	ProductoID string `json:"producto_id"`
	Producto   string `json:"producto"`
	Tipo       string `json:"tipo"`
	Cantidad   int    `json:"cantidad"`
	Motivo     string `json:"motivo"`
	Fecha      string `json:"fecha"`
	CreatedAt  string `json:"created_at"`
}

type MovimientoListResponse struct {
	Data     []MovimientoResponse `json:"data"`
	Total    int                  `json:"total"`
	Cargando bool                 `json:"cargando"`
	Error    string               `json:"error,omitempty"`
}
