package common

import (
	"fmt"
	"log"
	"time"
)

// Duration holds the elapsed stay time since check-in, floored to whole
// hours for billing.
type Duration struct {
	Hours        int
	Minutes      int
	TotalMinutes int
	Formatted    string
}

func CalculateDuration(checkIn time.Time, now time.Time) Duration {
	elapsed := now.Sub(checkIn)
	if elapsed < 0 {
		elapsed = 0
	}
	totalMinutes := int(elapsed.Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	return Duration{
		Hours:        hours,
		Minutes:      minutes,
		TotalMinutes: totalMinutes,
		Formatted:    fmt.Sprintf("%dh %dm", hours, minutes),
	}
}

// CheckoutAmount is the placeholder billing rule: minimum 500, then 100
// per whole hour since check-in.
func CheckoutAmount(d Duration) int64 {
	amount := int64(d.Hours) * 100
	if amount < 500 {
		amount = 500
	}
	return amount
}

// BestEffort runs a secondary effect whose failure must never block or
// roll back the primary mutation.
func BestEffort(op string, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("%s failed (continuing): %s\n", op, err.Error())
	}
}
