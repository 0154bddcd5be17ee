package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Sender delivers one text message to a normalized phone number.
type Sender interface {
	Send(to, body string) error
}

// WhatsAppClient posts messages to the WhatsApp gateway. The gateway
// expects digits-only numbers with the country code already prefixed
// (see utils.NormalizePhone).
type WhatsAppClient struct {
	url    string
	token  string
	client *http.Client
}

func NewWhatsAppClient() *WhatsAppClient {
	return &WhatsAppClient{
		url:   os.Getenv("WHATSAPP_API_URL"),
		token: os.Getenv("WHATSAPP_API_TOKEN"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (w *WhatsAppClient) Send(to, body string) error {
	if w.url == "" {
		return fmt.Errorf("WHATSAPP_API_URL is not set")
	}

	payload, err := json.Marshal(map[string]string{
		"phone":   to,
		"message": body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if w.token != "" {
		req.Header.Set("Authorization", "Bearer "+w.token)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}
	return nil
}
