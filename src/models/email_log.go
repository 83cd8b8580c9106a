package models

import (
	"lpst/src/types"
	"time"

	"github.com/google/uuid"
)

type EmailLog struct {
	ID             uuid.UUID         `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	RecipientEmail string            `json:"recipient_email"`
	Subject        string            `json:"subject"`
	EmailType      string            `json:"email_type"`
	Status         types.EmailStatus `json:"status"`
	ResponseData   string            `json:"response_data,omitempty"`
	AdminID        uint              `json:"admin_id,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at,omitempty"`
}
