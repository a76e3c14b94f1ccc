package notification

import (
	"context"
	"log"

	"jovemservicos/internal/domain"

	"gorm.io/gorm"
)

// JovemUserResolver maps a jovem profile to its user account, so provider
// dashboards receive their events.
type JovemUserResolver interface {
	GetJovemByID(ctx context.Context, id int64) (*domain.Jovem, error)
}

// Service persists lifecycle events and pushes them to any connected
// dashboard. It is a best-effort sink: a broadcast miss is not an error.
type Service struct {
	db     *gorm.DB
	hub    *Hub
	jovens JovemUserResolver
}

func NewService(db *gorm.DB, hub *Hub, jovens JovemUserResolver) *Service {
	return &Service{db: db, hub: hub, jovens: jovens}
}

func (s *Service) NotifyProviderAssigned(ctx context.Context, b *domain.Booking) error {
	return s.emit(ctx, Event{
		Type:      EventProviderAssigned,
		BookingID: b.ID,
		ClientID:  b.ClientID,
		JovemID:   b.JovemID,
		OngID:     b.OngID,
	})
}

func (s *Service) NotifyCheckedIn(ctx context.Context, b *domain.Booking) error {
	return s.emit(ctx, Event{
		Type:      EventCheckedIn,
		BookingID: b.ID,
		ClientID:  b.ClientID,
		JovemID:   b.JovemID,
		OngID:     b.OngID,
	})
}

func (s *Service) NotifyCompleted(ctx context.Context, b *domain.Booking, amount float64) error {
	return s.emit(ctx, Event{
		Type:      EventCompleted,
		BookingID: b.ID,
		ClientID:  b.ClientID,
		JovemID:   b.JovemID,
		OngID:     b.OngID,
		Amount:    &amount,
	})
}

func (s *Service) NotifyCancelled(ctx context.Context, b *domain.Booking, reason string) error {
	return s.emit(ctx, Event{
		Type:      EventCancelled,
		BookingID: b.ID,
		ClientID:  b.ClientID,
		JovemID:   b.JovemID,
		OngID:     b.OngID,
		Reason:    &reason,
	})
}

func (s *Service) emit(ctx context.Context, e Event) error {
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return err
	}
	s.broadcast(ctx, e)
	return nil
}

func (s *Service) broadcast(ctx context.Context, e Event) {
	if s.hub == nil {
		return
	}
	s.hub.SendToUser(e.ClientID, e)
	if e.JovemID != nil && s.jovens != nil {
		j, err := s.jovens.GetJovemByID(ctx, *e.JovemID)
		if err != nil {
			log.Printf("level=warn msg=jovem resolve failed for broadcast event=%s booking_id=%d err=%v", e.Type, e.BookingID, err)
			return
		}
		s.hub.SendToUser(j.UserID, e)
	}
}

func (s *Service) ListForUser(ctx context.Context, userID int64, limit int) ([]Event, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var events []Event
	err := s.db.WithContext(ctx).
		Where("client_id = ?", userID).
		Order("created_at desc").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
