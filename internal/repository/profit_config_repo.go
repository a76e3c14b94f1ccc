package repository

import (
	"context"
	"errors"
	"time"

	"jovemservicos/internal/domain"

	"gorm.io/gorm"
)

// ProfitConfigRepository stores the single margin row. Reads return a
// consistent snapshot; a finalize that already read its margin keeps it
// even if the admin updates the row a moment later.
type ProfitConfigRepository struct {
	db *gorm.DB
}

func NewProfitConfigRepository(db *gorm.DB) *ProfitConfigRepository {
	return &ProfitConfigRepository{db: db}
}

type profitConfigModel struct {
	ID                  int64     `gorm:"column:id;primaryKey"`
	ProfitMarginPercent float64   `gorm:"column:profit_margin_percent"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (profitConfigModel) TableName() string { return "profit_config" }

const profitConfigRowID = 1

func (r *ProfitConfigRepository) Get(ctx context.Context) (*domain.ProfitConfig, error) {
	var m profitConfigModel
	tx := r.db.WithContext(ctx).First(&m, profitConfigRowID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return &domain.ProfitConfig{ID: profitConfigRowID, ProfitMarginPercent: 0}, nil
		}
		return nil, tx.Error
	}
	return &domain.ProfitConfig{
		ID:                  m.ID,
		ProfitMarginPercent: m.ProfitMarginPercent,
		UpdatedAt:           m.UpdatedAt,
	}, nil
}

func (r *ProfitConfigRepository) Set(ctx context.Context, percent float64) error {
	m := profitConfigModel{
		ID:                  profitConfigRowID,
		ProfitMarginPercent: percent,
		UpdatedAt:           time.Now(),
	}
	return r.db.WithContext(ctx).Save(&m).Error
}
