package lib

import (
	"bytes"
	"log"

	"github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Encryption string
}

type Attachment struct {
	Name string
	Data []byte
}

type SendMailInput struct {
	From        string
	FromName    string
	To          []string
	Subject     string
	Body        string
	Html        bool
	Attachments []Attachment
}

func GetSMTPClient(cfg *SMTPConfig) (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
	if cfg.Encryption == "ssl" {
		opts = append(opts, mail.WithSSL())
	}
	c, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		log.Printf("Could not initialize smtp client: %s\n", err.Error())
		return nil, err
	}
	return c, nil
}

func SendMail(cfg *SMTPConfig, inputParams *SendMailInput) error {
	c, err := GetSMTPClient(cfg)
	if err != nil {
		return err
	}
	msg := mail.NewMsg()
	if err := msg.FromFormat(inputParams.FromName, inputParams.From); err != nil {
		log.Printf("Failed to set From address: %s\n", err.Error())
	}
	if err := msg.To(inputParams.To...); err != nil {
		log.Printf("Failed to set To address: %s\n", err.Error())
	}
	msg.Subject(inputParams.Subject)
	if inputParams.Html {
		msg.SetBodyString(mail.TypeTextHTML, inputParams.Body)
	} else {
		msg.SetBodyString(mail.TypeTextPlain, inputParams.Body)
	}
	for _, a := range inputParams.Attachments {
		if err := msg.AttachReader(a.Name, bytes.NewReader(a.Data)); err != nil {
			log.Printf("Failed to attach %s: %s\n", a.Name, err.Error())
		}
	}
	if err := c.DialAndSend(msg); err != nil {
		return err
	}
	return nil
}
