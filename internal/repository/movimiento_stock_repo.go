package repository

import (
	"context"
	"time"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovimientoFilter narrows the ledger listing.
type MovimientoFilter struct {
	ProductoID *uuid.UUID
	Tipo       string // "IN" | "OUT" | ""
}

// MovimientoStockRepository appends to and reads the stock-movement ledger.
// Movements are never updated or deleted.
type MovimientoStockRepository interface {
	Create(ctx context.Context, m *model.MovimientoStock) error
	CreateTx(tx *gorm.DB, m *model.MovimientoStock) error
	List(ctx context.Context, filter MovimientoFilter) ([]model.MovimientoStock, error)
}

type movimientoStockRepo struct{ db *gorm.DB }

func NewMovimientoStockRepository(db *gorm.DB) MovimientoStockRepository {
	return &movimientoStockRepo{db: db}
}

func (r *movimientoStockRepo) Create(ctx context.Context, m *model.MovimientoStock) error {
	stamp(m)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimientoStockRepo) CreateTx(tx *gorm.DB, m *model.MovimientoStock) error {
	stamp(m)
	return tx.Create(m).Error
}

func stamp(m *model.MovimientoStock) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Fecha.IsZero() {
		m.Fecha = time.Now()
	}
	m.CreatedAt = time.Now()
}

func (r *movimientoStockRepo) List(ctx context.Context, filter MovimientoFilter) ([]model.MovimientoStock, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimientoStock{})
	if filter.ProductoID != nil {
		q = q.Where("producto_id = ?", *filter.ProductoID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}

	var movimientos []model.MovimientoStock
	err := q.Order("fecha DESC").Find(&movimientos).Error
	return movimientos, err
}
