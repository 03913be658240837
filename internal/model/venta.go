package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is immutable once committed: there is no edit or anulación flow.
// ClienteNombre/ClienteCUIL are snapshots taken at sale time so the sale keeps
// its historical display values even if the customer is later edited or deleted.
type Venta struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClienteID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ClienteNombre string    `gorm:"not null"`
	ClienteCUIL   string    `gorm:"not null;column:cliente_cuil"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Fecha         time.Time       `gorm:"not null;index"`
	// Mes is the zero-padded "YYYY-MM" bucket of Fecha, kept as a query-partition key.
	Mes       string `gorm:"type:varchar(7);not null;index"`
	Anio      int    `gorm:"not null"`
	CreatedAt time.Time

	Items []VentaItem `gorm:"foreignKey:VentaID"`
}

func (Venta) TableName() string { return "sales" }

// VentaItem is owned exclusively by its parent Venta and never referenced elsewhere.
// ProductoNombre and PrecioUnitario are snapshots at sale time.
type VentaItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	VentaID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoNombre string    `gorm:"not null"`
	Cantidad       int       `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (VentaItem) TableName() string { return "sale_items" }
