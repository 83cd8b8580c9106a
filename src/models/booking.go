package models

import (
	"lpst/src/types"
	"time"
)

type Booking struct {
	ID             uint                `gorm:"primarykey" json:"id"`
	ResourceID     uint                `json:"resource_id,omitempty"`
	AdminID        uint                `json:"admin_id,omitempty"`
	ClientName     string              `json:"client_name,omitempty"`
	ClientMobile   string              `json:"client_mobile,omitempty"`
	ClientAadhar   string              `json:"client_aadhar,omitempty"`
	ClientLicense  string              `json:"client_license,omitempty"`
	ReceiptNumber  string              `json:"receipt_number,omitempty"`
	PaymentMode    string              `json:"payment_mode,omitempty"`
	BookingType    types.BookingType   `gorm:"default:regular" json:"booking_type,omitempty"`
	Status         types.BookingStatus `gorm:"default:ACTIVE" json:"status,omitempty"`
	CheckIn        time.Time           `json:"check_in,omitempty"`
	CheckOut       *time.Time          `json:"check_out,omitempty"`
	ActualCheckOut *time.Time          `json:"actual_check_out,omitempty"`
	AdvanceDate    *time.Time          `json:"advance_date,omitempty"`
	IsPaid         bool                `json:"is_paid,omitempty"`
	TotalAmount    int64               `json:"total_amount,omitempty"`
	PaymentNotes   string              `json:"payment_notes,omitempty"`

	Resource *Resource `gorm:"foreignKey:resource_id" json:"resource,omitempty"`
	Admin    *User     `gorm:"foreignKey:admin_id" json:"admin,omitempty"`

	types.Timestamps
}

// IsAdvance reports whether the booking was made for a future date
// rather than immediate occupancy.
func (b *Booking) IsAdvance() bool {
	return b.BookingType == types.BOOKING_TYPE_ADVANCED
}
