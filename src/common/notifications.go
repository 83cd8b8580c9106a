package common

import (
	"context"
	"errors"
	"log"
	"lpst/src/db"
	"lpst/src/lib"
	"lpst/src/models"
	"lpst/src/types"
	"strings"
)

const (
	defaultHotelName            = "L.P.S.T Hotel"
	defaultCancellationTemplate = "Dear {client_name}, your booking for {resource} at {hotel_name} has been cancelled. Please contact the front desk for details."
	defaultCheckoutTemplate     = "Dear {client_name}, checkout for {resource} at {hotel_name} is complete. Thank you for staying with us!"
)

func SendCancellationSMS(booking *models.Booking) error {
	return sendBookingSMS(booking, types.SMS_CANCELLATION)
}

func SendCheckoutConfirmationSMS(booking *models.Booking) error {
	return sendBookingSMS(booking, types.SMS_CHECKOUT)
}

func sendBookingSMS(booking *models.Booking, smsType types.SmsType) error {
	if booking.ClientMobile == "" {
		return errors.New("booking has no client mobile number")
	}
	settings, err := GetSettings("hotel_name", "sms_cancellation_template", "sms_checkout_template")
	if err != nil {
		log.Printf("Could not load SMS settings, using defaults: %s\n", err.Error())
		settings = map[string]string{}
	}
	var template string
	switch smsType {
	case types.SMS_CANCELLATION:
		template = settingOr(settings, "sms_cancellation_template", defaultCancellationTemplate)
	default:
		template = settingOr(settings, "sms_checkout_template", defaultCheckoutTemplate)
	}
	message := renderSMSTemplate(template, booking, settingOr(settings, "hotel_name", defaultHotelName))

	sender := lib.GetSMSSender()
	ref, err := sender.Send(context.Background(), booking.ClientMobile, message)

	logRow := models.SmsLog{
		BookingID: booking.ID,
		Mobile:    booking.ClientMobile,
		Message:   message,
		SmsType:   smsType,
		Status:    types.SMS_SENT,
	}
	if err != nil {
		logRow.Status = types.SMS_FAILED
		logRow.ResponseData = err.Error()
	} else {
		logRow.ResponseData = ref
	}
	if dberr := db.GetDb().Create(&logRow).Error; dberr != nil {
		log.Printf("Could not record SMS log for booking [%d]: %s\n", booking.ID, dberr.Error())
	}
	return err
}

func renderSMSTemplate(template string, booking *models.Booking, hotelName string) string {
	replacer := strings.NewReplacer(
		"{client_name}", booking.ClientName,
		"{resource}", booking.Resource.DisplayLabel(),
		"{hotel_name}", hotelName,
	)
	return replacer.Replace(template)
}
