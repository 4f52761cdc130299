// Package whatsapp sends booking confirmations as Twilio WhatsApp content
// templates. Template variables are {{1}} name, {{2}} seat, {{3}} event time.
package whatsapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"seatBooker/internal/booking"
	"seatBooker/internal/config"
	"seatBooker/internal/lib/logger/sl"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

const (
	countryCode = "91"
	addrPrefix  = "whatsapp:+"
)

var ErrNotConfigured = errors.New("twilio credentials or content sid missing")

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MessageCreator
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type Notifier struct {
	log        *slog.Logger
	api        MessageCreator
	from       string
	contentSID string
}

// New builds a Notifier from config. Without full credentials the returned
// Notifier refuses every send with ErrNotConfigured.
func New(log *slog.Logger, cfg config.Twilio) *Notifier {
	n := &Notifier{
		log:        log.With(slog.String("component", "notifier/whatsapp")),
		from:       cfg.From,
		contentSID: cfg.ContentSID,
	}

	if cfg.Configured() {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
		n.api = client.Api
	}

	return n
}

// NewWithAPI builds a Notifier over an existing message API.
func NewWithAPI(log *slog.Logger, api MessageCreator, from, contentSID string) *Notifier {
	return &Notifier{
		log:        log.With(slog.String("component", "notifier/whatsapp")),
		api:        api,
		from:       from,
		contentSID: contentSID,
	}
}

// Notify sends the confirmation template for one seat and returns the message SID.
func (n *Notifier) Notify(to, name string, seat int, eventTime string) (string, error) {
	const op = "notifier.whatsapp.Notify"

	if n.api == nil || n.from == "" || n.contentSID == "" {
		return "", fmt.Errorf("%s: %w", op, ErrNotConfigured)
	}

	dest, ok := FormatDestination(to)
	if !ok {
		n.log.Warn("unexpected mobile format",
			slog.String("mobile", to),
			slog.String("destination", dest),
		)
	}

	vars, err := json.Marshal(map[string]string{
		"1": name,
		"2": strconv.Itoa(seat),
		"3": eventTime,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	params := &openapi.CreateMessageParams{}
	params.SetFrom(n.from)
	params.SetTo(dest)
	params.SetContentSid(n.contentSID)
	params.SetContentVariables(string(vars))

	n.log.Info("sending whatsapp template",
		slog.String("to", dest),
		slog.Int("seat", seat),
	)

	msg, err := n.api.CreateMessage(params)
	if err != nil {
		n.log.Error("whatsapp template send failed", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var sid string
	if msg != nil && msg.Sid != nil {
		sid = *msg.Sid
	}

	n.log.Info("whatsapp template sent", slog.String("sid", sid))

	return sid, nil
}

// FormatDestination converts a phone number to a WhatsApp address. It reports
// false when the number is neither a 10-digit local nor a 12-digit "91" number;
// the digits are then passed through unchanged.
func FormatDestination(number string) (string, bool) {
	digits := booking.Digits(number)

	switch {
	case strings.HasPrefix(digits, countryCode) && len(digits) == 12:
		return addrPrefix + digits, true
	case len(digits) == 10:
		return addrPrefix + countryCode + digits, true
	default:
		return addrPrefix + digits, false
	}
}
