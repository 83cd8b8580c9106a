package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingCancellation rows are insert-only from the action workflow and
// read by the owner dashboards.
type BookingCancellation struct {
	ID                     uuid.UUID  `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID              uint       `json:"booking_id"`
	ResourceID             uint       `json:"resource_id"`
	CancelledBy            uint       `json:"cancelled_by"`
	CancellationReason     string     `json:"cancellation_reason,omitempty"`
	OriginalClientName     string     `json:"original_client_name,omitempty"`
	OriginalAdvanceDate    *time.Time `json:"original_advance_date,omitempty"`
	DurationAtCancellation *int       `json:"duration_at_cancellation,omitempty"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at,omitempty"`
}
