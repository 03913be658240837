package repository

import (
	"context"
	"time"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VentaRepository persists sales. Sales are immutable: there is no Update or
// Delete — the ledger of committed sales is append-only.
type VentaRepository interface {
	// Create inserts the sale and its line items inside the given transaction.
	// Identity and timestamps for the sale and every item are assigned here.
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context) ([]model.Venta, error)
	ListByMes(ctx context.Context, mes string) ([]model.Venta, error)

	// DB exposes the DB for transaction creation in the sale workflow.
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now()
	for i := range v.Items {
		if v.Items[i].ID == uuid.Nil {
			v.Items[i].ID = uuid.New()
		}
		v.Items[i].VentaID = v.ID
	}
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).Preload("Items").First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) List(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).Preload("Items").Order("fecha DESC").Find(&ventas).Error
	return ventas, err
}

// ListByMes returns the sales in one "YYYY-MM" bucket — the mes column exists
// purely as this query's partition key.
func (r *ventaRepo) ListByMes(ctx context.Context, mes string) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).Preload("Items").
		Where("mes = ?", mes).
		Order("fecha DESC").
		Find(&ventas).Error
	return ventas, err
}
