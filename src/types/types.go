package types

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Handler consumes a raw queue message body.
type Handler func(body string)

type BookingStatus string

const (
	BOOKING_ACTIVE    BookingStatus = "ACTIVE"
	BOOKING_COMPLETED BookingStatus = "COMPLETED"
)

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BOOKING_ACTIVE, BOOKING_COMPLETED:
		return true
	default:
		return false
	}
}

// IsCompleted reports whether the booking no longer occupies its resource.
func (s BookingStatus) IsCompleted() bool {
	return s == BOOKING_COMPLETED
}

type BookingType string

const (
	BOOKING_TYPE_REGULAR  BookingType = "regular"
	BOOKING_TYPE_ADVANCED BookingType = "advanced"
)

type BookingAction string

const (
	ACTION_CANCEL_ADVANCED BookingAction = "cancel_advanced"
	ACTION_MARK_PAID       BookingAction = "mark_paid"
	ACTION_CHECKOUT        BookingAction = "checkout"
	ACTION_CANCEL_BOOKING  BookingAction = "cancel_booking"
)

func (a BookingAction) IsValid() bool {
	switch a {
	case ACTION_CANCEL_ADVANCED, ACTION_MARK_PAID, ACTION_CHECKOUT, ACTION_CANCEL_BOOKING:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PAYMENT_CHECKOUT          PaymentMethod = "CHECKOUT"
	PAYMENT_CHECKOUT_COMPLETE PaymentMethod = "CHECKOUT_COMPLETE"
)

type PaymentStatus string

const (
	PAYMENT_STATUS_COMPLETED PaymentStatus = "COMPLETED"
)

type EmailStatus string

const (
	EMAIL_PENDING EmailStatus = "PENDING"
	EMAIL_SENT    EmailStatus = "SENT"
	EMAIL_FAILED  EmailStatus = "FAILED"
)

type SmsType string

const (
	SMS_CANCELLATION SmsType = "CANCELLATION"
	SMS_CHECKOUT     SmsType = "CHECKOUT"
)

type SmsStatus string

const (
	SMS_SENT   SmsStatus = "SENT"
	SMS_FAILED SmsStatus = "FAILED"
)

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_OWNER = "OWNER"
)

type BookingActionRequestBody struct {
	Action    string `form:"action"`
	BookingID string `form:"booking_id"`
	CSRFToken string `form:"csrf_token"`
}

type LoginRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ExportEmailRequestBody struct {
	Email     string `json:"email" binding:"required,email"`
	StartDate string `json:"start_date,omitempty" binding:"omitempty,exportdate"`
	EndDate   string `json:"end_date,omitempty" binding:"omitempty,exportdate"`
	Status    string `json:"status,omitempty"`
}

type TestEmailRequestBody struct {
	Email string `json:"email" binding:"required,email"`
}
