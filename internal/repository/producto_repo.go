package repository

import (
	"context"
	"time"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// State containers and services depend on this interface, not on the concrete
// GORM implementation, enabling clean unit testing via stubs.
type ProductoRepository interface {
	List(ctx context.Context) ([]model.Producto, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	Create(ctx context.Context, p *model.Producto) error
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListBajoStock(ctx context.Context) ([]model.Producto, error)

	// Used inside transactions — callers must pass the tx instance.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error)
	// AjustarStockTx applies a signed stock delta, clamped at zero, and stamps
	// updated_at. A negative delta larger than the current stock leaves zero.
	AjustarStockTx(tx *gorm.DB, id uuid.UUID, delta int) error

	// DB exposes the underlying *gorm.DB so the sale workflow can open
	// transactions. Returns nil in unit tests backed by stubs.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create assigns identity and timestamps: the caller passes a draft without ID.
func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	p.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Producto{}, "id = ?", id).Error
}

func (r *productoRepo) ListBajoStock(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("stock <= stock_minimo").
		Order("nombre ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := tx.First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) AjustarStockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	// SQLite's scalar MAX clamps the decrement at zero in a single statement.
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("MAX(0, stock + ?)", delta),
			"updated_at": time.Now(),
		}).Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
