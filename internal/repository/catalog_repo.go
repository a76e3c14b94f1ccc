package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jovemservicos/internal/domain"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

type serviceModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	Category    *string   `gorm:"column:category;index"`
	BasePrice   float64   `gorm:"column:base_price"`
	Active      bool      `gorm:"column:active;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

type jovemModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex"`
	OngID     int64     `gorm:"column:ong_id;index"`
	Bio       *string   `gorm:"column:bio"`
	Skills    *string   `gorm:"column:skills"`
	Active    bool      `gorm:"column:active"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (jovemModel) TableName() string { return "jovens" }

type ongModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;uniqueIndex"`
	Name          string    `gorm:"column:name"`
	CNPJ          *string   `gorm:"column:cnpj"`
	ContactPerson *string   `gorm:"column:contact_person"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (ongModel) TableName() string { return "ongs" }

func toDomainService(m serviceModel) *domain.Service {
	s := &domain.Service{
		ID:        m.ID,
		Name:      m.Name,
		BasePrice: m.BasePrice,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Description != nil {
		s.Description = *m.Description
	}
	if m.Category != nil {
		s.Category = *m.Category
	}
	return s
}

func toDomainJovem(m jovemModel) *domain.Jovem {
	j := &domain.Jovem{
		ID:        m.ID,
		UserID:    m.UserID,
		OngID:     m.OngID,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
	if m.Bio != nil {
		j.Bio = *m.Bio
	}
	if m.Skills != nil && *m.Skills != "" {
		_ = json.Unmarshal([]byte(*m.Skills), &j.Skills)
	}
	return j
}

func toDomainOng(m ongModel) *domain.Ong {
	o := &domain.Ong{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
	if m.CNPJ != nil {
		o.CNPJ = *m.CNPJ
	}
	if m.ContactPerson != nil {
		o.ContactPerson = *m.ContactPerson
	}
	return o
}

func (r *CatalogRepository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

func (r *CatalogRepository) ListServices(ctx context.Context) ([]domain.Service, error) {
	var rows []serviceModel
	tx := r.db.WithContext(ctx).Where("active = ?", true).Order("name").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

func (r *CatalogRepository) CreateService(ctx context.Context, s *domain.Service) error {
	m := serviceModel{
		Name:      s.Name,
		BasePrice: s.BasePrice,
		Active:    s.Active,
	}
	if s.Description != "" {
		m.Description = &s.Description
	}
	if s.Category != "" {
		m.Category = &s.Category
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*s = *toDomainService(m)
	return nil
}

func (r *CatalogRepository) GetJovemByID(ctx context.Context, id int64) (*domain.Jovem, error) {
	var m jovemModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainJovem(m), nil
}

func (r *CatalogRepository) GetJovemByUserID(ctx context.Context, userID int64) (*domain.Jovem, error) {
	var m jovemModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainJovem(m), nil
}

func (r *CatalogRepository) ListJovens(ctx context.Context) ([]domain.Jovem, error) {
	var rows []jovemModel
	tx := r.db.WithContext(ctx).Where("active = ?", true).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Jovem, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainJovem(m))
	}
	return out, nil
}

func (r *CatalogRepository) CreateJovem(ctx context.Context, j *domain.Jovem) error {
	m := jovemModel{UserID: j.UserID, OngID: j.OngID, Active: j.Active}
	if j.Bio != "" {
		m.Bio = &j.Bio
	}
	if len(j.Skills) > 0 {
		raw, _ := json.Marshal(j.Skills)
		s := string(raw)
		m.Skills = &s
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*j = *toDomainJovem(m)
	return nil
}

func (r *CatalogRepository) GetOngByID(ctx context.Context, id int64) (*domain.Ong, error) {
	var m ongModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainOng(m), nil
}

func (r *CatalogRepository) ListOngs(ctx context.Context) ([]domain.Ong, error) {
	var rows []ongModel
	tx := r.db.WithContext(ctx).Order("name").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Ong, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainOng(m))
	}
	return out, nil
}

func (r *CatalogRepository) CreateOng(ctx context.Context, o *domain.Ong) error {
	m := ongModel{UserID: o.UserID, Name: o.Name}
	if o.CNPJ != "" {
		m.CNPJ = &o.CNPJ
	}
	if o.ContactPerson != "" {
		m.ContactPerson = &o.ContactPerson
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*o = *toDomainOng(m)
	return nil
}
