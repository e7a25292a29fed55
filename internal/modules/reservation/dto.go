package reservation

import "time"

type CreateReservationRequest struct {
	StadiumID int64     `json:"stadium_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Notes     string    `json:"notes"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

type RecordPaymentRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Method    string  `json:"method" binding:"required,oneof=cash card transfer"`
	Reference string  `json:"reference"`
}
