package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jovemservicos/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	ClientID      int64      `gorm:"column:client_id;index"`
	JovemID       *int64     `gorm:"column:jovem_id;index"`
	OngID         *int64     `gorm:"column:ong_id;index"`
	ServiceID     int64      `gorm:"column:service_id"`
	Status        string     `gorm:"column:status;index"`
	Date          time.Time  `gorm:"column:date"`
	Time          *string    `gorm:"column:time"`
	CheckInPin    *string    `gorm:"column:check_in_pin"`
	BasePrice     float64    `gorm:"column:base_price"`
	FinalPrice    *float64   `gorm:"column:final_price"`
	MarginPercent *float64   `gorm:"column:margin_percent"`
	Rating        *int       `gorm:"column:rating"`
	Review        *string    `gorm:"column:review"`
	Photos        *string    `gorm:"column:photos"`
	Reviewed      bool       `gorm:"column:reviewed"`
	CancelReason  *string    `gorm:"column:cancel_reason"`
	RescheduledAt *time.Time `gorm:"column:rescheduled_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	CompletedAt   *time.Time `gorm:"column:completed_at"`
	Version       int64      `gorm:"column:version"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:            m.ID,
		ClientID:      m.ClientID,
		JovemID:       m.JovemID,
		OngID:         m.OngID,
		ServiceID:     m.ServiceID,
		Status:        domain.BookingStatus(m.Status),
		Date:          m.Date,
		BasePrice:     m.BasePrice,
		FinalPrice:    m.FinalPrice,
		MarginPercent: m.MarginPercent,
		Rating:        m.Rating,
		Reviewed:      m.Reviewed,
		RescheduledAt: m.RescheduledAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CompletedAt:   m.CompletedAt,
		Version:       m.Version,
	}
	if m.Time != nil {
		b.Time = *m.Time
	}
	if m.CheckInPin != nil {
		b.CheckInPin = *m.CheckInPin
	}
	if m.Review != nil {
		b.Review = *m.Review
	}
	if m.CancelReason != nil {
		b.CancelReason = *m.CancelReason
	}
	if m.Photos != nil && *m.Photos != "" {
		_ = json.Unmarshal([]byte(*m.Photos), &b.Photos)
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	m := bookingModel{
		ID:            b.ID,
		ClientID:      b.ClientID,
		JovemID:       b.JovemID,
		OngID:         b.OngID,
		ServiceID:     b.ServiceID,
		Status:        string(b.Status),
		Date:          b.Date,
		BasePrice:     b.BasePrice,
		FinalPrice:    b.FinalPrice,
		MarginPercent: b.MarginPercent,
		Rating:        b.Rating,
		Reviewed:      b.Reviewed,
		RescheduledAt: b.RescheduledAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CompletedAt:   b.CompletedAt,
		Version:       b.Version,
	}
	if b.Time != "" {
		v := b.Time
		m.Time = &v
	}
	if b.CheckInPin != "" {
		v := b.CheckInPin
		m.CheckInPin = &v
	}
	if b.Review != "" {
		v := b.Review
		m.Review = &v
	}
	if b.CancelReason != "" {
		v := b.CancelReason
		m.CancelReason = &v
	}
	if len(b.Photos) > 0 {
		raw, _ := json.Marshal(b.Photos)
		s := string(raw)
		m.Photos = &s
	}
	return m
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	b.Version = 1
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		var pgErr *pgconn.PgError
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) || (errors.As(tx.Error, &pgErr) && pgErr.Code == "23505") {
			return ErrConflict
		}
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// Update writes the full record guarded by the version the caller loaded.
// Zero affected rows means either the booking vanished or a concurrent
// command saved first; both surface as ErrConflict for a re-load + retry.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	expected := b.Version
	b.Version = expected + 1
	b.UpdatedAt = time.Now()
	m := toBookingModel(b)

	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND version = ?", b.ID, expected).
		Select("*").Omit("id", "created_at").
		Updates(&m)
	if tx.Error != nil {
		b.Version = expected
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		b.Version = expected
		return ErrConflict
	}
	return nil
}

func (r *BookingRepository) GetByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).Where("status = ?", string(status)).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByClient(ctx context.Context, clientID int64, limit, offset int) ([]domain.Booking, error) {
	return r.list(ctx, "client_id = ?", clientID, limit, offset)
}

func (r *BookingRepository) ListByJovem(ctx context.Context, jovemID int64, limit, offset int) ([]domain.Booking, error) {
	return r.list(ctx, "jovem_id = ?", jovemID, limit, offset)
}

func (r *BookingRepository) ListByOng(ctx context.Context, ongID int64, limit, offset int) ([]domain.Booking, error) {
	return r.list(ctx, "ong_id = ?", ongID, limit, offset)
}

func (r *BookingRepository) list(ctx context.Context, cond string, arg int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var rows []bookingModel
	tx := r.db.WithContext(ctx).Where(cond, arg).
		Order("created_at desc").Limit(limit).Offset(offset).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
