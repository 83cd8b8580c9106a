package models

import "lpst/src/types"

type User struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Username     string `gorm:"uniqueIndex" json:"username,omitempty"`
	PasswordHash string `json:"-"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role,omitempty"`

	Bookings []Booking `gorm:"foreignKey:admin_id" json:"bookings,omitempty"`

	types.Timestamps
}
