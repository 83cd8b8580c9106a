package models

import (
	"lpst/src/types"
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID            uuid.UUID           `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID     uint                `json:"booking_id"`
	ResourceID    uint                `json:"resource_id"`
	Amount        int64               `json:"amount"`
	PaymentMethod types.PaymentMethod `json:"payment_method"`
	PaymentStatus types.PaymentStatus `json:"payment_status"`
	AdminID       uint                `json:"admin_id"`
	PaymentNotes  string              `json:"payment_notes,omitempty"`
	CreatedAt     time.Time           `gorm:"autoCreateTime" json:"created_at,omitempty"`
}
