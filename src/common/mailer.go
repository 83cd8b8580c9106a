package common

import (
	"errors"
	"log"
	"lpst/src/db"
	"lpst/src/lib"
	"lpst/src/models"
	"lpst/src/types"
	"strconv"

	"github.com/google/uuid"
)

// SendEmailWithLog delivers a message over the settings-configured SMTP
// account and keeps an email_logs row per attempt.
func SendEmailWithLog(to string, subject string, body string, attachment *lib.Attachment, emailType string, adminID uint) error {
	settings, err := GetSettings("smtp_host", "smtp_port", "smtp_username", "smtp_password", "smtp_encryption", "hotel_name")
	if err != nil {
		return err
	}
	host := settings["smtp_host"]
	username := settings["smtp_username"]
	password := settings["smtp_password"]
	if host == "" || username == "" || password == "" {
		return errors.New("email SMTP configuration not found, configure email settings first")
	}
	port, err := strconv.Atoi(settingOr(settings, "smtp_port", "587"))
	if err != nil {
		port = 587
	}

	d := db.GetDb()
	logRow := models.EmailLog{
		RecipientEmail: to,
		Subject:        subject,
		EmailType:      emailType,
		Status:         types.EMAIL_PENDING,
		AdminID:        adminID,
	}
	if err := d.Create(&logRow).Error; err != nil {
		log.Printf("Could not record email log for %s: %s\n", to, err.Error())
	}

	input := &lib.SendMailInput{
		From:     username,
		FromName: settingOr(settings, "hotel_name", defaultHotelName),
		To:       []string{to},
		Subject:  subject,
		Body:     body,
		Html:     true,
	}
	if attachment != nil {
		input.Attachments = append(input.Attachments, *attachment)
	}
	cfg := &lib.SMTPConfig{
		Host:       host,
		Port:       port,
		Username:   username,
		Password:   password,
		Encryption: settingOr(settings, "smtp_encryption", "tls"),
	}
	sendErr := lib.SendMail(cfg, input)

	status := types.EMAIL_SENT
	response := "Email sent successfully"
	if sendErr != nil {
		status = types.EMAIL_FAILED
		response = sendErr.Error()
	}
	if logRow.ID != uuid.Nil {
		if err := d.
			Model(&models.EmailLog{}).
			Where("id = ?", logRow.ID).
			Updates(map[string]any{"status": status, "response_data": response}).
			Error; err != nil {
			log.Printf("Could not update email log [%s]: %s\n", logRow.ID, err.Error())
		}
	}
	return sendErr
}
