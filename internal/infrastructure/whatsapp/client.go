package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	appErrors "taller/internal/pkg/errors"
	"taller/internal/pkg/logger"
)

const defaultAPIBase = "https://graph.facebook.com/v20.0"

// Client sends reminder notifications through the WhatsApp Cloud API using a
// pre-approved message template. When WHATSAPP_ENABLED is not "true" the
// client runs in simulated mode: sends are logged and reported as delivered.
type Client struct {
	httpClient    *http.Client
	log           logger.Logger
	enabled       bool
	apiBase       string
	token         string
	phoneNumberID string
	template      string
	lang          string
}

var (
	clientInstance *Client
	once           sync.Once
)

// NewClient creates a new singleton instance of the WhatsApp client.
// It reads credentials from environment variables.
func NewClient(log logger.Logger) *Client {
	once.Do(func() {
		enabled := os.Getenv("WHATSAPP_ENABLED") == "true"
		token := os.Getenv("WHATSAPP_TOKEN")
		phoneNumberID := os.Getenv("WHATSAPP_PHONE_NUMBER_ID")

		if enabled && (token == "" || phoneNumberID == "") {
			log.Error("WHATSAPP_TOKEN and WHATSAPP_PHONE_NUMBER_ID must be set when WHATSAPP_ENABLED=true", nil)
			os.Exit(1)
		}
		if !enabled {
			log.Warn("WhatsApp disabled, notifications will be simulated")
		}

		template := os.Getenv("WHATSAPP_TEMPLATE")
		if template == "" {
			template = "service_reminder"
		}
		lang := os.Getenv("WHATSAPP_TEMPLATE_LANG")
		if lang == "" {
			lang = "es"
		}

		clientInstance = &Client{
			httpClient:    &http.Client{Timeout: 15 * time.Second},
			log:           log,
			enabled:       enabled,
			apiBase:       defaultAPIBase,
			token:         token,
			phoneNumberID: phoneNumberID,
			template:      template,
			lang:          lang,
		}
	})
	return clientInstance
}

type templateMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Template         template `json:"template"`
}

type template struct {
	Name       string      `json:"name"`
	Language   language    `json:"language"`
	Components []component `json:"components"`
}

type language struct {
	Code string `json:"code"`
}

type component struct {
	Type       string      `json:"type"`
	Parameters []parameter `json:"parameters"`
}

type parameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Send delivers a reminder template message to the given phone number with
// the client's display name and the formatted next service date.
func (c *Client) Send(ctx context.Context, phone, name string, nextDate time.Time) error {
	if !c.enabled {
		c.log.Info(fmt.Sprintf("[simulated] WhatsApp -> %s %s %s", phone, name, nextDate.Format("02/01/2006")))
		return nil
	}

	body := templateMessage{
		MessagingProduct: "whatsapp",
		To:               onlyDigits(phone),
		Type:             "template",
		Template: template{
			Name:     c.template,
			Language: language{Code: c.lang},
			Components: []component{{
				Type: "body",
				Parameters: []parameter{
					{Type: "text", Text: name},
					{Type: "text", Text: nextDate.Format("02/01/2006")},
				},
			}},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrNotification, err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.apiBase, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrNotification, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrNotification, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status %d: %s", appErrors.ErrNotification, resp.StatusCode, string(detail))
	}

	c.log.Debug(fmt.Sprintf("Sent WhatsApp reminder to %s", phone))
	return nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
