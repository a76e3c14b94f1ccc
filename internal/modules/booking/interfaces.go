package booking

import (
	"context"

	"jovemservicos/internal/domain"
)

// BookingRepository is the store contract the lifecycle runs against.
// Update must reject a save carrying a stale version with the repository
// conflict error, so that two racing commands cannot both apply.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	GetByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
	ListByClient(ctx context.Context, clientID int64, limit, offset int) ([]domain.Booking, error)
	ListByJovem(ctx context.Context, jovemID int64, limit, offset int) ([]domain.Booking, error)
	ListByOng(ctx context.Context, ongID int64, limit, offset int) ([]domain.Booking, error)
}

// ServiceCatalog supplies base prices at booking creation.
type ServiceCatalog interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// JovemDirectory resolves a provider and the ONG it belongs to.
type JovemDirectory interface {
	GetJovemByID(ctx context.Context, id int64) (*domain.Jovem, error)
	GetJovemByUserID(ctx context.Context, userID int64) (*domain.Jovem, error)
}

// ProfitMarginReader returns the margin percent in effect right now.
// The lifecycle reads it once per finalize and stamps it into the booking.
type ProfitMarginReader interface {
	GetMarginPercent(ctx context.Context) (float64, error)
}

type PinGenerator interface {
	Generate() (string, error)
}

// NotificationSender receives fire-and-forget lifecycle events. Failures
// are logged by the lifecycle, never propagated to the caller.
type NotificationSender interface {
	NotifyProviderAssigned(ctx context.Context, b *domain.Booking) error
	NotifyCheckedIn(ctx context.Context, b *domain.Booking) error
	NotifyCompleted(ctx context.Context, b *domain.Booking, amount float64) error
	NotifyCancelled(ctx context.Context, b *domain.Booking, reason string) error
}

// WalletCreditor credits the provider's balance after a finalize.
type WalletCreditor interface {
	Credit(ctx context.Context, jovemID int64, amount float64, bookingID int64) error
}
