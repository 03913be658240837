package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog item. Its stock changes only through direct edits,
// manual adjustments, or committed sales.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion *string
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	// StockMinimo is the reorder threshold used by the low-stock alerts.
	StockMinimo int    `gorm:"not null;default:0"`
	Categoria   string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Producto) TableName() string { return "products" }

// BajoStock reports whether the product is at or below its reorder threshold.
func (p *Producto) BajoStock() bool { return p.Stock <= p.StockMinimo }
