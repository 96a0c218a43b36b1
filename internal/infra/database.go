package infra

import (
	"fmt"

	"keso/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// to create / update all tables, then applies the SQL patches AutoMigrate
// cannot express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Producto{},
		&model.Venta{},
		&model.VentaItem{},
		&model.CuentaPorCobrar{},
		&model.Gasto{},
		&model.MovimientoStock{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches runs idempotent DDL that GORM has no tag for.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Order numbers come from a sequence so concurrent checkouts can
		// never mint the same ORD-%04d twice.
		{"create numero_orden sequence",
			`CREATE SEQUENCE IF NOT EXISTS ventas_numero_orden_seq START 1`},

		// Stock must never go below zero, whatever path writes it.
		{"cantidad non-negative check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_productos_cantidad_no_negativa') THEN
    ALTER TABLE productos ADD CONSTRAINT chk_productos_cantidad_no_negativa CHECK (cantidad >= 0);
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("%s: %w", p.descr, err)
		}
	}
	return nil
}
