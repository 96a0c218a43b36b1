package repository

import (
	"context"
	"time"

	"keso/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GastoRepository interface {
	Create(ctx context.Context, g *model.Gasto) error
	List(ctx context.Context) ([]model.Gasto, error)
	ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.Gasto, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type gastoRepo struct{ db *gorm.DB }

func NewGastoRepository(db *gorm.DB) GastoRepository { return &gastoRepo{db: db} }

func (r *gastoRepo) Create(ctx context.Context, g *model.Gasto) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gastoRepo) List(ctx context.Context) ([]model.Gasto, error) {
	var gastos []model.Gasto
	err := r.db.WithContext(ctx).Order("fecha DESC").Find(&gastos).Error
	return gastos, err
}

func (r *gastoRepo) ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.Gasto, error) {
	var gastos []model.Gasto
	err := r.db.WithContext(ctx).
		Where("fecha BETWEEN ? AND ?", desde, hasta).
		Order("fecha DESC").
		Find(&gastos).Error
	return gastos, err
}

func (r *gastoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Gasto{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
