package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "taller/internal/pkg/errors"
)

type nopLogger struct{}

func (nopLogger) Error(msg string, err error) {}
func (nopLogger) Warn(msg string)             {}
func (nopLogger) Info(msg string)             {}
func (nopLogger) Debug(msg string)            {}

func testClient(apiBase string, enabled bool) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: 5 * time.Second},
		log:           nopLogger{},
		enabled:       enabled,
		apiBase:       apiBase,
		token:         "test-token",
		phoneNumberID: "12345",
		template:      "service_reminder",
		lang:          "es",
	}
}

func TestSend_SimulatedMode(t *testing.T) {
	c := testClient("http://unreachable.invalid", false)

	err := c.Send(context.Background(), "5491100000001", "Ana", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err, "disabled mode must report success without any request")
}

func TestSend_PostsTemplateMessage(t *testing.T) {
	var got templateMessage
	var gotPath, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL, true)
	err := c.Send(context.Background(), "+54 911 0000-0001", "Ana", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "/12345/messages", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "whatsapp", got.MessagingProduct)
	assert.Equal(t, "549110000001", got.To, "destination must be digits only")
	assert.Equal(t, "template", got.Type)
	assert.Equal(t, "service_reminder", got.Template.Name)
	assert.Equal(t, "es", got.Template.Language.Code)
	require.Len(t, got.Template.Components, 1)
	require.Len(t, got.Template.Components[0].Parameters, 2)
	assert.Equal(t, "Ana", got.Template.Components[0].Parameters[0].Text)
	assert.Equal(t, "01/07/2024", got.Template.Components[0].Parameters[1].Text)
}

func TestSend_APIErrorIsNotificationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid token"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := testClient(srv.URL, true)
	err := c.Send(context.Background(), "5491100000001", "Ana", time.Now())
	assert.ErrorIs(t, err, appErrors.ErrNotification)
	assert.ErrorContains(t, err, "401")
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "5491100000001", onlyDigits("+54 911 0000-0001"))
	assert.Equal(t, "", onlyDigits("sin numero"))
}
