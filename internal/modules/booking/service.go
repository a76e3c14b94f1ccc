package booking

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"jovemservicos/internal/domain"
	"jovemservicos/internal/modules/profit"
	"jovemservicos/internal/pkg/pin"
	"jovemservicos/internal/repository"
)

// Service is the booking lifecycle engine. All writes go through the
// version-checked repository, so a failed command never leaves a partial
// record behind and racing commands resolve to exactly one winner.
type Service struct {
	bookings BookingRepository
	catalog  ServiceCatalog
	jovens   JovemDirectory
	margins  ProfitMarginReader
	pins     PinGenerator
	notifs   NotificationSender
	wallet   WalletCreditor
}

func NewService(
	bookings BookingRepository,
	catalog ServiceCatalog,
	jovens JovemDirectory,
	margins ProfitMarginReader,
	pins PinGenerator,
	notifs NotificationSender,
	wallet WalletCreditor,
) *Service {
	return &Service{
		bookings: bookings,
		catalog:  catalog,
		jovens:   jovens,
		margins:  margins,
		pins:     pins,
		notifs:   notifs,
		wallet:   wallet,
	}
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrConflict):
		return ErrConflict
	default:
		return err
	}
}

// parseFutureDate accepts "2006-01-02" and rejects days before today.
// Date-only comparison, no timezone normalization.
func parseFutureDate(dateStr string) (time.Time, error) {
	if strings.TrimSpace(dateStr) == "" {
		return time.Time{}, ErrValidation
	}
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, ErrValidation
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return time.Time{}, ErrValidation
	}
	return day, nil
}

func validSlotTime(timeStr string) bool {
	if timeStr == "" {
		return true
	}
	_, err := time.Parse("15:04", timeStr)
	return err == nil
}

func (s *Service) Create(ctx context.Context, clientID int64, req CreateBookingRequest) (*domain.Booking, error) {
	day, err := parseFutureDate(req.Date)
	if err != nil {
		return nil, err
	}
	if !validSlotTime(req.Time) {
		return nil, ErrValidation
	}

	svc, err := s.catalog.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if !svc.Active {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		ClientID:  clientID,
		ServiceID: svc.ID,
		Status:    domain.BookingPending,
		Date:      day,
		Time:      req.Time,
		BasePrice: svc.BasePrice,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, mapStoreErr(err)
	}
	return b, nil
}

// Assign binds a provider (and, through it, the sponsoring ONG) to a
// pending booking.
func (s *Service) Assign(ctx context.Context, bookingID, jovemID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if b.Status != domain.BookingPending {
		return nil, ErrInvalidStatusTransition
	}

	j, err := s.jovens.GetJovemByID(ctx, jovemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}
	if !j.Active {
		return nil, ErrValidation
	}

	b.JovemID = &j.ID
	b.OngID = &j.OngID
	b.Status = domain.BookingAssigned
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, mapStoreErr(err)
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyProviderAssigned(ctx, b); err != nil {
			log.Printf("level=warn msg=assign notification failed booking_id=%d err=%v", b.ID, err)
		}
	}
	return b, nil
}

// ProviderConfirm is the jovem accepting the (possibly rescheduled) slot.
// A fresh single-use PIN is generated and stored; the handler returns it
// to the provider only.
func (s *Service) ProviderConfirm(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if b.Status != domain.BookingAssigned {
		return nil, ErrInvalidStatusTransition
	}

	code, err := s.pins.Generate()
	if err != nil {
		return nil, err
	}
	b.CheckInPin = code
	b.Status = domain.BookingConfirmed
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, mapStoreErr(err)
	}
	return b, nil
}

// CheckIn consumes the PIN. An exact match is required; a mismatch leaves
// the booking untouched and may be retried without limit.
func (s *Service) CheckIn(ctx context.Context, bookingID int64, submitted string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidStatusTransition
	}
	if !pin.IsWellFormed(submitted) || submitted != b.CheckInPin {
		return nil, ErrPinMismatch
	}

	b.CheckInPin = ""
	b.Status = domain.BookingInProgress
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, mapStoreErr(err)
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyCheckedIn(ctx, b); err != nil {
			log.Printf("level=warn msg=check-in notification failed booking_id=%d err=%v", b.ID, err)
		}
	}
	return b, nil
}

// Reschedule moves the slot and always forces re-confirmation: state drops
// back to assigned and any outstanding PIN is invalidated.
func (s *Service) Reschedule(ctx context.Context, bookingID int64, newDate, newTime string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if b.Status != domain.BookingAssigned && b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidStatusTransition
	}

	day, err := parseFutureDate(newDate)
	if err != nil {
		return nil, err
	}
	if !validSlotTime(newTime) {
		return nil, ErrValidation
	}

	now := time.Now()
	b.Date = day
	if newTime != "" {
		b.Time = newTime
	}
	b.CheckInPin = ""
	b.Status = domain.BookingAssigned
	b.RescheduledAt = &now
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, mapStoreErr(err)
	}
	return b, nil
}

func (s *Service) Cancel(ctx context.Context, bookingID int64, reason string) (*domain.Booking, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if b.Status != domain.BookingAssigned && b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidStatusTransition
	}

	b.CancelReason = reason
	b.CheckInPin = ""
	b.Status = domain.BookingCancelled
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, mapStoreErr(err)
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyCancelled(ctx, b, reason); err != nil {
			log.Printf("level=warn msg=cancel notification failed booking_id=%d err=%v", b.ID, err)
		}
	}
	return b, nil
}

// Finalize completes an in-progress booking: it snapshots the margin in
// effect right now, stamps the client-facing price, and requests the
// provider payout. The payout basis is the base price; the margin is the
// platform's commission.
func (s *Service) Finalize(ctx context.Context, bookingID int64, req FinalizeRequest) (*domain.Booking, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if b.Status != domain.BookingInProgress {
		return nil, ErrInvalidStatusTransition
	}

	margin, err := s.margins.GetMarginPercent(ctx)
	if err != nil {
		return nil, err
	}
	finalPrice := profit.PriceForClient(b.BasePrice, margin)

	now := time.Now()
	rating := req.Rating
	b.Rating = &rating
	b.Review = req.Review
	if len(req.Photos) > 0 {
		b.Photos = append([]string(nil), req.Photos...)
	}
	b.Reviewed = true
	b.FinalPrice = &finalPrice
	b.MarginPercent = &margin
	b.CompletedAt = &now
	b.Status = domain.BookingCompleted
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, mapStoreErr(err)
	}

	if s.wallet != nil && b.JovemID != nil {
		if err := s.wallet.Credit(ctx, *b.JovemID, b.BasePrice, b.ID); err != nil {
			log.Printf("level=error msg=provider credit failed booking_id=%d jovem_id=%d amount=%.2f err=%v",
				b.ID, *b.JovemID, b.BasePrice, err)
		}
	}
	if s.notifs != nil {
		if err := s.notifs.NotifyCompleted(ctx, b, finalPrice); err != nil {
			log.Printf("level=warn msg=completion notification failed booking_id=%d err=%v", b.ID, err)
		}
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return b, nil
}

func (s *Service) ListForClient(ctx context.Context, clientID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByClient(ctx, clientID, limit, offset)
}

func (s *Service) ListForJovem(ctx context.Context, jovemID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByJovem(ctx, jovemID, limit, offset)
}

func (s *Service) ListForOng(ctx context.Context, ongID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByOng(ctx, ongID, limit, offset)
}
