package common

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"lpst/src/models"
	"lpst/src/types"

	"github.com/stretchr/testify/assert"
)

func TestExportFiltersDateRange(t *testing.T) {
	assert.Equal(t, "All to All", ExportFilters{}.DateRange())
	assert.Equal(t, "2026-08-01 to All", ExportFilters{StartDate: "2026-08-01"}.DateRange())
	assert.Equal(t, "2026-08-01 to 2026-08-27", ExportFilters{StartDate: "2026-08-01", EndDate: "2026-08-27"}.DateRange())
}

func TestBuildBookingExportCSV(t *testing.T) {
	checkIn := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)
	bookings := []models.Booking{
		{
			ID:             12,
			ClientName:     "Asha Rao",
			ClientMobile:   "+911234567890",
			ClientAadhar:   "1234-5678-9012",
			ReceiptNumber:  "R-1001",
			PaymentMode:    "CASH",
			BookingType:    types.BOOKING_TYPE_REGULAR,
			Status:         types.BOOKING_COMPLETED,
			CheckIn:        checkIn,
			ActualCheckOut: &checkOut,
			IsPaid:         true,
			TotalAmount:    800,
			Resource:       &models.Resource{DisplayName: "Room 101", CustomName: "Deluxe 101"},
			Admin:          &models.User{Username: "frontdesk"},
		},
		{
			ID:            13,
			ClientName:    "Vikram Singh",
			ClientLicense: "DL-0420110012345",
			BookingType:   types.BOOKING_TYPE_ADVANCED,
			Status:        types.BOOKING_ACTIVE,
			CheckIn:       checkIn,
			Resource:      &models.Resource{DisplayName: "Room 102"},
		},
	}

	data, err := BuildBookingExportCSV(bookings)
	assert.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Equal(t, []string{
		"ID", "Resource", "Type", "Client Name", "Mobile", "Aadhar/License",
		"Receipt No", "Payment Mode", "Check-in", "Check-out", "Status",
		"Paid", "Amount", "Admin", "Created",
	}, records[0])

	first := records[1]
	assert.Equal(t, "12", first[0])
	assert.Equal(t, "Deluxe 101", first[1])
	assert.Equal(t, "1234-5678-9012", first[5])
	assert.Equal(t, "2026-08-20 14:00:00", first[8])
	assert.Equal(t, "2026-08-20 22:00:00", first[9])
	assert.Equal(t, "Yes", first[11])
	assert.Equal(t, "800", first[12])
	assert.Equal(t, "frontdesk", first[13])

	second := records[2]
	assert.Equal(t, "Room 102", second[1])
	// license stands in when no aadhar was captured
	assert.Equal(t, "DL-0420110012345", second[5])
	assert.Equal(t, "", second[9])
	assert.Equal(t, "No", second[11])
	assert.Equal(t, "0", second[12])
}

func TestExportEmailBody(t *testing.T) {
	body := ExportEmailBody("Booking Records", "2026-08-01 to 2026-08-27", 42, 21000, "L.P.S.T Hotel")
	assert.Contains(t, body, "<h2>L.P.S.T Hotel</h2>")
	assert.Contains(t, body, "<strong>Export Type:</strong> Booking Records")
	assert.Contains(t, body, "<strong>Date Range:</strong> 2026-08-01 to 2026-08-27")
	assert.Contains(t, body, "<strong>Total Bookings:</strong> 42")
	assert.Contains(t, body, "<strong>Total Revenue:</strong> 21000")
}

func TestRenderSMSTemplate(t *testing.T) {
	booking := &models.Booking{
		ClientName: "Asha Rao",
		Resource:   &models.Resource{DisplayName: "Room 101"},
	}
	msg := renderSMSTemplate(defaultCancellationTemplate, booking, "L.P.S.T Hotel")
	assert.Equal(t, "Dear Asha Rao, your booking for Room 101 at L.P.S.T Hotel has been cancelled. Please contact the front desk for details.", msg)

	msg = renderSMSTemplate(defaultCheckoutTemplate, booking, "L.P.S.T Hotel")
	assert.Contains(t, msg, "checkout for Room 101")
}
