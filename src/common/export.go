package common

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"lpst/src/config"
	"lpst/src/db"
	"lpst/src/lib"
	"lpst/src/models"
	"strconv"
	"time"
)

type ExportFilters struct {
	StartDate string
	EndDate   string
	Status    string
}

func (f ExportFilters) DateRange() string {
	start := f.StartDate
	if start == "" {
		start = "All"
	}
	end := f.EndDate
	if end == "" {
		end = "All"
	}
	return fmt.Sprintf("%s to %s", start, end)
}

func QueryBookingsForExport(filters ExportFilters) ([]models.Booking, error) {
	db := db.GetDb()
	query := db.
		Model(&models.Booking{}).
		Preload("Resource").
		Preload("Admin")
	if filters.StartDate != "" {
		if start, err := time.Parse(config.DATE_PARSE_FORMAT, filters.StartDate); err == nil {
			query = query.Where("check_in >= ?", start)
		}
	}
	if filters.EndDate != "" {
		if end, err := time.Parse(config.DATE_PARSE_FORMAT, filters.EndDate); err == nil {
			query = query.Where("check_in < ?", end.AddDate(0, 0, 1))
		}
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	var bookings []models.Booking
	if err := query.Order("check_in").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func BuildBookingExportCSV(bookings []models.Booking) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		"ID", "Resource", "Type", "Client Name", "Mobile", "Aadhar/License",
		"Receipt No", "Payment Mode", "Check-in", "Check-out", "Status",
		"Paid", "Amount", "Admin", "Created",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, b := range bookings {
		idProof := b.ClientAadhar
		if idProof == "" {
			idProof = b.ClientLicense
		}
		paid := "No"
		if b.IsPaid {
			paid = "Yes"
		}
		checkOut := ""
		if b.ActualCheckOut != nil {
			checkOut = b.ActualCheckOut.Format(config.TIME_PARSE_FORMAT)
		} else if b.CheckOut != nil {
			checkOut = b.CheckOut.Format(config.TIME_PARSE_FORMAT)
		}
		adminName := ""
		if b.Admin != nil {
			adminName = b.Admin.Username
		}
		record := []string{
			strconv.Itoa(int(b.ID)),
			b.Resource.DisplayLabel(),
			string(b.BookingType),
			b.ClientName,
			b.ClientMobile,
			idProof,
			b.ReceiptNumber,
			b.PaymentMode,
			b.CheckIn.Format(config.TIME_PARSE_FORMAT),
			checkOut,
			string(b.Status),
			paid,
			strconv.FormatInt(b.TotalAmount, 10),
			adminName,
			b.CreatedAt.Format(config.TIME_PARSE_FORMAT),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ExportEmailBody(exportType string, dateRange string, totalBookings int, totalRevenue int64, hotelName string) string {
	generatedOn := time.Now().Format(config.REPORT_TIME_FORMAT)
	return fmt.Sprintf(`<html>
<body>
	<h2>%s</h2>
	<h3>Booking Export Report</h3>
	<p>Dear Owner,</p>
	<p>Please find attached the booking export report as requested.</p>
	<h4>Export Summary:</h4>
	<ul>
		<li><strong>Export Type:</strong> %s</li>
		<li><strong>Date Range:</strong> %s</li>
		<li><strong>Total Bookings:</strong> %d</li>
		<li><strong>Total Revenue:</strong> %d</li>
		<li><strong>Generated On:</strong> %s</li>
	</ul>
	<p>The attached CSV file contains guest, booking and payment details for every record in range.</p>
	<p>This is an automated email from %s. Please do not reply.</p>
</body>
</html>`, hotelName, exportType, dateRange, totalBookings, totalRevenue, generatedOn, hotelName)
}

// SendExportEmail queries the filtered bookings, renders the CSV and
// mails it with the summary body.
func SendExportEmail(to string, filters ExportFilters, adminID uint) error {
	bookings, err := QueryBookingsForExport(filters)
	if err != nil {
		return err
	}
	data, err := BuildBookingExportCSV(bookings)
	if err != nil {
		return err
	}
	var totalRevenue int64
	for _, b := range bookings {
		totalRevenue += b.TotalAmount
	}
	hotelName := GetSetting("hotel_name", defaultHotelName)
	filename := fmt.Sprintf("lpst_bookings_export_%s.csv", time.Now().Format("2006-01-02_15-04-05"))
	subject := fmt.Sprintf("%s - Booking Export Report - %s", hotelName, time.Now().Format(config.REPORT_DATE_FORMAT))
	body := ExportEmailBody("Booking Records", filters.DateRange(), len(bookings), totalRevenue, hotelName)
	attachment := &lib.Attachment{Name: filename, Data: data}
	return SendEmailWithLog(to, subject, body, attachment, "EXPORT", adminID)
}

func SendTestEmail(to string, adminID uint) error {
	subject := "L.P.S.T Bookings - Email Configuration Test"
	body := fmt.Sprintf(`<html>
<body>
	<h3>Email Configuration Test</h3>
	<p>This is a test email from L.P.S.T Bookings.</p>
	<p>If you receive this email, your SMTP configuration is working correctly!</p>
	<p>Test sent on: %s</p>
</body>
</html>`, time.Now().Format(config.REPORT_TIME_FORMAT))
	return SendEmailWithLog(to, subject, body, nil, "TEST", adminID)
}

// RunDailyExport mails the previous day's bookings to the configured
// recipient. A missing recipient disables the job silently.
func RunDailyExport() {
	recipient := GetSetting("export_recipient", "")
	if recipient == "" {
		return
	}
	yesterday := time.Now().AddDate(0, 0, -1).Format(config.DATE_PARSE_FORMAT)
	filters := ExportFilters{StartDate: yesterday, EndDate: yesterday}
	if err := SendExportEmail(recipient, filters, 0); err != nil {
		log.Printf("Daily export to %s failed: %s\n", recipient, err.Error())
		return
	}
	log.Printf("Daily export sent to %s\n", recipient)
}
