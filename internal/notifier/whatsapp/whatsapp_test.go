package whatsapp

import (
	"encoding/json"
	"errors"
	"testing"

	"seatBooker/internal/config"
	"seatBooker/internal/lib/logger/handlers/slogdiscard"
	"seatBooker/internal/notifier/whatsapp/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

func TestFormatDestination(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
		ok       bool
	}{
		{input: "9876543210", expected: "whatsapp:+919876543210", ok: true},
		{input: "919876543210", expected: "whatsapp:+919876543210", ok: true},
		{input: "+91 98765-43210", expected: "whatsapp:+919876543210", ok: true},
		{input: "+1234567890123", expected: "whatsapp:+1234567890123", ok: false},
		{input: "12345", expected: "whatsapp:+12345", ok: false},
		{input: "", expected: "whatsapp:+", ok: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			dest, ok := FormatDestination(tc.input)
			assert.Equal(t, tc.expected, dest)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestNotify(t *testing.T) {
	t.Parallel()

	api := mocks.NewMessageCreator(t)
	sid := "SM123"

	api.On("CreateMessage", mock.MatchedBy(func(p *openapi.CreateMessageParams) bool {
		if p.To == nil || p.From == nil || p.ContentSid == nil || p.ContentVariables == nil {
			return false
		}

		var vars map[string]string
		if err := json.Unmarshal([]byte(*p.ContentVariables), &vars); err != nil {
			return false
		}

		return *p.To == "whatsapp:+919876543210" &&
			*p.From == "whatsapp:+10000000000" &&
			*p.ContentSid == "HX1" &&
			vars["1"] == "Asha" && vars["2"] == "10" && vars["3"] == "Tonight"
	})).Return(&openapi.ApiV2010Message{Sid: &sid}, nil)

	n := NewWithAPI(slogdiscard.NewDiscardLogger(), api, "whatsapp:+10000000000", "HX1")

	got, err := n.Notify("9876543210", "Asha", 10, "Tonight")
	require.NoError(t, err)
	assert.Equal(t, "SM123", got)
}

func TestNotifyAPIError(t *testing.T) {
	t.Parallel()

	api := mocks.NewMessageCreator(t)
	api.On("CreateMessage", mock.Anything).Return(nil, errors.New("twilio down"))

	n := NewWithAPI(slogdiscard.NewDiscardLogger(), api, "whatsapp:+10000000000", "HX1")

	got, err := n.Notify("9876543210", "Asha", 10, "Tonight")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twilio down")
	assert.Empty(t, got)
}

func TestNotifyNotConfigured(t *testing.T) {
	t.Parallel()

	n := New(slogdiscard.NewDiscardLogger(), config.Twilio{AccountSID: "AC1"})

	_, err := n.Notify("9876543210", "Asha", 10, "Tonight")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNotifyNilSid(t *testing.T) {
	t.Parallel()

	api := mocks.NewMessageCreator(t)
	api.On("CreateMessage", mock.Anything).Return(&openapi.ApiV2010Message{}, nil)

	n := NewWithAPI(slogdiscard.NewDiscardLogger(), api, "from", "HX1")

	got, err := n.Notify("+1234567890123", "Asha", 1, "Tonight")
	require.NoError(t, err)
	assert.Empty(t, got)
}
