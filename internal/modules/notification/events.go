package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventType string

const (
	EventProviderAssigned EventType = "ProviderAssigned"
	EventCheckedIn        EventType = "CheckedIn"
	EventCompleted        EventType = "Completed"
	EventCancelled        EventType = "Cancelled"
)

// Event is a persisted lifecycle notification. Amount is set only for
// Completed events, Reason only for Cancelled ones.
type Event struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Type      EventType `json:"type" gorm:"type:varchar(32);not null;index"`
	BookingID int64     `json:"booking_id" gorm:"not null;index"`
	ClientID  int64     `json:"client_id" gorm:"not null;index"`
	JovemID   *int64    `json:"jovem_id,omitempty" gorm:"index"`
	OngID     *int64    `json:"ong_id,omitempty" gorm:"index"`
	Amount    *float64  `json:"amount,omitempty"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Event) TableName() string { return "notification_events" }

func (e *Event) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
