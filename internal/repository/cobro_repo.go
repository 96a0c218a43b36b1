package repository

import (
	"context"
	"time"

	"keso/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CobroRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.CuentaPorCobrar, error)
	ListPendientes(ctx context.Context) ([]model.CuentaPorCobrar, error)
	ListPendientesEnRango(ctx context.Context, desde, hasta time.Time) ([]model.CuentaPorCobrar, error)
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error
}

type cobroRepo struct{ db *gorm.DB }

func NewCobroRepository(db *gorm.DB) CobroRepository { return &cobroRepo{db: db} }

func (r *cobroRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CuentaPorCobrar, error) {
	var c model.CuentaPorCobrar
	err := r.db.WithContext(ctx).Preload("Venta.Items").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *cobroRepo) ListPendientes(ctx context.Context) ([]model.CuentaPorCobrar, error) {
	var cobros []model.CuentaPorCobrar
	err := r.db.WithContext(ctx).
		Where("estado = ?", model.CobroPendiente).
		Preload("Venta.Items").
		Order("fecha DESC").
		Find(&cobros).Error
	return cobros, err
}

func (r *cobroRepo) ListPendientesEnRango(ctx context.Context, desde, hasta time.Time) ([]model.CuentaPorCobrar, error) {
	var cobros []model.CuentaPorCobrar
	err := r.db.WithContext(ctx).
		Where("estado = ? AND fecha BETWEEN ? AND ?", model.CobroPendiente, desde, hasta).
		Find(&cobros).Error
	return cobros, err
}

func (r *cobroRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.CuentaPorCobrar{}).
		Where("id = ?", id).Update("estado", estado).Error
}
