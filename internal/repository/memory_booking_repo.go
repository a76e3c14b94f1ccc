package repository

import (
	"context"
	"sync"
	"time"

	"jovemservicos/internal/domain"
)

// MemoryBookingRepository is the reference BookingStore used by tests and
// local development. It honors the same version-check contract as the GORM
// repository: a save carrying a stale version is rejected with ErrConflict.
type MemoryBookingRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Booking
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{nextID: 1, rows: make(map[int64]domain.Booking)}
}

func cloneBooking(b domain.Booking) domain.Booking {
	if b.Photos != nil {
		photos := make([]string, len(b.Photos))
		copy(photos, b.Photos)
		b.Photos = photos
	}
	return b
}

func (r *MemoryBookingRepository) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.nextID
	r.nextID++
	b.Version = 1
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.rows[b.ID] = cloneBooking(*b)
	return nil
}

func (r *MemoryBookingRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneBooking(row)
	return &out, nil
}

func (r *MemoryBookingRepository) Update(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[b.ID]
	if !ok {
		return ErrConflict
	}
	if row.Version != b.Version {
		return ErrConflict
	}
	b.Version++
	b.UpdatedAt = time.Now()
	r.rows[b.ID] = cloneBooking(*b)
	return nil
}

func (r *MemoryBookingRepository) GetByStatus(_ context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Booking, 0)
	for id := int64(1); id < r.nextID; id++ {
		if row, ok := r.rows[id]; ok && row.Status == status {
			out = append(out, cloneBooking(row))
		}
	}
	return out, nil
}

func (r *MemoryBookingRepository) ListByClient(ctx context.Context, clientID int64, _, _ int) ([]domain.Booking, error) {
	return r.filter(func(b domain.Booking) bool { return b.ClientID == clientID })
}

func (r *MemoryBookingRepository) ListByJovem(ctx context.Context, jovemID int64, _, _ int) ([]domain.Booking, error) {
	return r.filter(func(b domain.Booking) bool { return b.JovemID != nil && *b.JovemID == jovemID })
}

func (r *MemoryBookingRepository) ListByOng(ctx context.Context, ongID int64, _, _ int) ([]domain.Booking, error) {
	return r.filter(func(b domain.Booking) bool { return b.OngID != nil && *b.OngID == ongID })
}

func (r *MemoryBookingRepository) filter(keep func(domain.Booking) bool) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Booking, 0)
	for id := int64(1); id < r.nextID; id++ {
		if row, ok := r.rows[id]; ok && keep(row) {
			out = append(out, cloneBooking(row))
		}
	}
	return out, nil
}
