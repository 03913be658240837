package model

import (
	"time"

	"github.com/google/uuid"
)

// Movement direction. OUT movements created by the sale workflow map 1:1 to the
// sale's line items.
const (
	MovimientoIngreso = "IN"
	MovimientoEgreso  = "OUT"
)

// MovimientoStock is an append-only ledger entry: rows are never edited or
// deleted. ProductoNombre is a snapshot at movement time.
type MovimientoStock struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductoID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoNombre string    `gorm:"not null"`
	Tipo           string    `gorm:"not null"` // "IN" | "OUT"
	Cantidad       int       `gorm:"not null"`
	Motivo         string    `gorm:"not null"`
	Fecha          time.Time `gorm:"not null;index"`
	CreatedAt      time.Time
}

func (MovimientoStock) TableName() string { return "stock_movements" }
