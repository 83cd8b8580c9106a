package common

import (
	"lpst/src/db"
	"lpst/src/models"
	"lpst/src/types"
	"time"

	"gorm.io/gorm"
)

const (
	advancedCancelMarker = " - Advanced booking cancelled by admin"
	regularCancelMarker  = " - Booking cancelled by admin"
)

func GetBookingDetail(id uint) (*models.Booking, error) {
	db := db.GetDb()
	var booking models.Booking
	err := db.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: id}).
		Preload("Resource").
		Preload("Admin").
		First(&booking).
		Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func appendNotes(marker string) any {
	return gorm.Expr("COALESCE(payment_notes, '') || ?", marker)
}

func updateBooking(id uint, values map[string]any) error {
	db := db.GetDb()
	tx := db.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: id}).
		Updates(values)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CancelAdvancedBooking releases a future-dated booking. The status flip
// is the authoritative mutation, the note append is part of the same
// statement.
func CancelAdvancedBooking(id uint) error {
	return updateBooking(id, map[string]any{
		"status":        types.BOOKING_COMPLETED,
		"payment_notes": appendNotes(advancedCancelMarker),
	})
}

// CancelBooking closes an occupied booking, stamping the actual checkout
// time at the moment of cancellation.
func CancelBooking(id uint) error {
	return updateBooking(id, map[string]any{
		"status":           types.BOOKING_COMPLETED,
		"actual_check_out": time.Now(),
		"payment_notes":    appendNotes(regularCancelMarker),
	})
}

func MarkBookingPaid(id uint, amount int64) error {
	return updateBooking(id, map[string]any{
		"is_paid":          true,
		"status":           types.BOOKING_COMPLETED,
		"actual_check_out": time.Now(),
		"total_amount":     amount,
	})
}

func CompleteCheckout(id uint, amount int64) error {
	return updateBooking(id, map[string]any{
		"status":           types.BOOKING_COMPLETED,
		"actual_check_out": time.Now(),
		"total_amount":     amount,
	})
}
