package notifications

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/raghunathreddymustur/bike-mechanic-discovery/domain"
)

// TwilioSender delivers OTP codes over SMS.
type TwilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioSender creates a new Twilio-backed SMS sender.
func NewTwilioSender(accountSID, authToken, fromNumber string) domain.NotificationSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSender{
		client:     client,
		fromNumber: fromNumber,
	}
}

// Send implements domain.NotificationSender.
func (t *TwilioSender) Send(destination, code string) error {
	// If credentials are not configured, log instead of sending
	if t.fromNumber == "" {
		fmt.Printf("[MOCK SMS] To: %s, Code: %s\n", destination, code)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(destination)
	params.SetFrom(t.fromNumber)
	params.SetBody(fmt.Sprintf("Your verification code is %s. It expires in 5 minutes.", code))

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	return nil
}
