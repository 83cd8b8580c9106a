package lib

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SMSSender abstracts the SMS provider so delivery can be swapped or
// stubbed out without touching the booking workflow.
type SMSSender interface {
	Send(ctx context.Context, mobile string, message string) (string, error)
}

type SNSSender struct {
	inner *sns.Client
}

func NewSNSSender() *SNSSender {
	return &SNSSender{inner: AWSGetSNSClient()}
}

func (s *SNSSender) Send(ctx context.Context, mobile string, message string) (string, error) {
	if s.inner == nil {
		return "", errors.New("sns client is not configured")
	}
	output, err := s.inner.Publish(ctx, &sns.PublishInput{
		Message:     aws.String(message),
		PhoneNumber: aws.String(mobile),
	})
	if err != nil {
		log.Printf("[SNS] Error publishing SMS to %s: %s\n", mobile, err.Error())
		return "", err
	}
	return aws.ToString(output.MessageId), nil
}

// ConsoleSender logs instead of dialing a provider, for local runs.
type ConsoleSender struct{}

func (c *ConsoleSender) Send(ctx context.Context, mobile string, message string) (string, error) {
	log.Printf("[sms] to=%s body=%s\n", mobile, message)
	return "console", nil
}

var smsSender SMSSender

func GetSMSSender() SMSSender {
	if smsSender != nil {
		return smsSender
	}
	if os.Getenv("SMS_PROVIDER") == "sns" {
		smsSender = NewSNSSender()
	} else {
		smsSender = &ConsoleSender{}
	}
	return smsSender
}

// SetSMSSender Replace sender with custom implementation
func SetSMSSender(s SMSSender) {
	smsSender = s
}
