package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingAssigned   BookingStatus = "assigned"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

type Booking struct {
	ID        int64  `json:"id"`
	ClientID  int64  `json:"client_id" validate:"required"`
	JovemID   *int64 `json:"jovem_id,omitempty"`
	OngID     *int64 `json:"ong_id,omitempty"`
	ServiceID int64  `json:"service_id" validate:"required"`

	Status BookingStatus `json:"status"`

	// Date is the scheduled day at midnight; Time is an optional "15:04" slot.
	Date time.Time `json:"date"`
	Time string    `json:"time,omitempty"`

	// CheckInPin is present only while Status == BookingConfirmed.
	CheckInPin string `json:"-"`

	// BasePrice is copied from the service catalog at creation time.
	// FinalPrice and MarginPercent are stamped at finalize and never
	// recomputed, so reports stay reproducible after margin changes.
	BasePrice     float64  `json:"base_price"`
	FinalPrice    *float64 `json:"final_price,omitempty"`
	MarginPercent *float64 `json:"margin_percent,omitempty"`

	Rating   *int     `json:"rating,omitempty"`
	Review   string   `json:"review,omitempty"`
	Photos   []string `json:"photos,omitempty"`
	Reviewed bool     `json:"reviewed"`

	CancelReason string `json:"cancel_reason,omitempty"`

	RescheduledAt *time.Time `json:"rescheduled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`

	// Version guards concurrent writes: every save must carry the version
	// it loaded, and a stale save is rejected as a conflict.
	Version int64 `json:"-"`
}
