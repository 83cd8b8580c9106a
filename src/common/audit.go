package common

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"lpst/src/db"
	"lpst/src/lib"
	"lpst/src/models"
	"lpst/src/types"
)

// AuditRetryQueue receives audit rows whose initial insert failed. The
// primary booking mutation is never held back by these, the queue gives
// the trail eventual completeness instead.
const AuditRetryQueue = "AuditRetryQueue"

const (
	auditKindCancellation = "cancellation"
	auditKindPayment      = "payment"
)

type auditRetryMessage struct {
	Kind   string          `json:"kind"`
	Record json.RawMessage `json:"record"`
}

// RecordCancellation writes the cancellation audit row for the owner
// dashboard. Pass the stay duration for regular bookings, nil for
// advance bookings.
func RecordCancellation(booking *models.Booking, adminID uint, adminName string, duration *Duration) error {
	record := models.BookingCancellation{
		BookingID:          booking.ID,
		ResourceID:         booking.ResourceID,
		CancelledBy:        adminID,
		OriginalClientName: booking.ClientName,
	}
	if duration != nil {
		record.CancellationReason = fmt.Sprintf("Regular booking cancelled by %s after %s", adminName, duration.Formatted)
		minutes := duration.TotalMinutes
		record.DurationAtCancellation = &minutes
	} else {
		record.CancellationReason = fmt.Sprintf("Advanced booking cancelled by %s", adminName)
		record.OriginalAdvanceDate = booking.AdvanceDate
	}
	db := db.GetDb()
	if err := db.Create(&record).Error; err != nil {
		enqueueAuditRetry(auditKindCancellation, &record)
		return err
	}
	return nil
}

// RecordPayment writes the payment audit row for a checkout event.
func RecordPayment(booking *models.Booking, method types.PaymentMethod, amount int64, adminID uint, notes string) error {
	record := models.Payment{
		BookingID:     booking.ID,
		ResourceID:    booking.ResourceID,
		Amount:        amount,
		PaymentMethod: method,
		PaymentStatus: types.PAYMENT_STATUS_COMPLETED,
		AdminID:       adminID,
		PaymentNotes:  notes,
	}
	db := db.GetDb()
	if err := db.Create(&record).Error; err != nil {
		enqueueAuditRetry(auditKindPayment, &record)
		return err
	}
	return nil
}

func enqueueAuditRetry(kind string, record any) {
	raw, err := json.Marshal(record)
	if err != nil {
		log.Printf("Error serializing %s audit record: %s\n", kind, err.Error())
		return
	}
	body, err := json.Marshal(&auditRetryMessage{Kind: kind, Record: raw})
	if err != nil {
		log.Printf("Error serializing %s retry message: %s\n", kind, err.Error())
		return
	}
	if err := lib.ProduceQueueMessage(context.Background(), AuditRetryQueue, string(body)); err != nil {
		log.Printf("Could not enqueue %s audit record for retry: %s\n", kind, err.Error())
	}
}

// AuditRetryConsumer replays audit inserts that failed during the
// request, at most once per delivery.
func AuditRetryConsumer() {
	c := lib.NewSQSConsumer(AuditRetryQueue, func(body string) {
		var msg auditRetryMessage
		if err := json.Unmarshal([]byte(body), &msg); err != nil {
			log.Printf("[%s] Received invalid message body: %s\n", AuditRetryQueue, err.Error())
			return
		}
		db := db.GetDb()
		switch msg.Kind {
		case auditKindCancellation:
			var record models.BookingCancellation
			if err := json.Unmarshal(msg.Record, &record); err != nil {
				log.Printf("[%s] Invalid cancellation record: %s\n", AuditRetryQueue, err.Error())
				return
			}
			if err := db.Create(&record).Error; err != nil {
				log.Printf("[%s] Replay failed for booking [%d]: %s\n", AuditRetryQueue, record.BookingID, err.Error())
			}
		case auditKindPayment:
			var record models.Payment
			if err := json.Unmarshal(msg.Record, &record); err != nil {
				log.Printf("[%s] Invalid payment record: %s\n", AuditRetryQueue, err.Error())
				return
			}
			if err := db.Create(&record).Error; err != nil {
				log.Printf("[%s] Replay failed for booking [%d]: %s\n", AuditRetryQueue, record.BookingID, err.Error())
			}
		default:
			log.Printf("[%s] Unknown audit kind: %s\n", AuditRetryQueue, msg.Kind)
		}
	})
	c.Listen()
}
