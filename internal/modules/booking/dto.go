package booking

type CreateBookingRequest struct {
	ServiceID int64  `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time"`
}

type AssignRequest struct {
	JovemID int64 `json:"jovem_id" binding:"required"`
}

type CheckInRequest struct {
	Pin string `json:"pin" binding:"required"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type FinalizeRequest struct {
	Rating int      `json:"rating" binding:"required"`
	Review string   `json:"review"`
	Photos []string `json:"photos"`
}
