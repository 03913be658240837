package infra

import (
	"fmt"

	"github.com/SantinoArroyo/SistemaMobile-Ventas/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the on-device SQLite store and runs AutoMigrate for the
// five tables (products, customers, sales, sale_items, stock_movements).
// The connection is opened once at process start; a failure here must abort
// startup — repositories assume a live handle and never fall back to empty
// results.
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Single local writer: the UI issues one store operation at a time, so a
	// single connection avoids SQLITE_BUSY without any pooling.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Producto{},
		&model.Cliente{},
		&model.Venta{},
		&model.VentaItem{},
		&model.MovimientoStock{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
