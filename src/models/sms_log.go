package models

import (
	"lpst/src/types"
	"time"

	"github.com/google/uuid"
)

type SmsLog struct {
	ID           uuid.UUID       `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID    uint            `json:"booking_id"`
	Mobile       string          `json:"mobile"`
	Message      string          `json:"message"`
	SmsType      types.SmsType   `json:"sms_type"`
	Status       types.SmsStatus `json:"status"`
	ResponseData string          `json:"response_data,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at,omitempty"`
}
