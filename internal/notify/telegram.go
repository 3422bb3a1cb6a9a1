package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

const (
	// DefaultAPIBase is the production Bot API endpoint; tests and
	// self-hosted gateways override it.
	DefaultAPIBase = "https://api.telegram.org"

	defaultTimeout  = 10 * time.Second
	timestampLayout = "2006-01-02 15:04:05"
)

// Sender delivers one notification body to the remote endpoint.
type Sender interface {
	Send(text string) error
}

// sendMessageRequest is the Bot API sendMessage body.
type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// Telegram sends messages through the Bot API sendMessage endpoint.
type Telegram struct {
	baseURL string
	token   string
	chatID  string
	client  *http.Client
	now     func() time.Time
}

// NewTelegram creates a sender for the given chat. An empty baseURL
// selects the production API; a non-positive timeout selects 10s.
func NewTelegram(baseURL, token, chatID string, timeout time.Duration) *Telegram {
	if baseURL == "" {
		baseURL = DefaultAPIBase
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Telegram{
		baseURL: baseURL,
		token:   token,
		chatID:  chatID,
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// Send posts text to the configured chat. The timestamp and host
// prefix are stamped here, at delivery time, so wall-clock order in the
// chat matches the dispatcher's delivery order.
func (t *Telegram) Send(text string) error {
	host, _ := os.Hostname()
	body := FormatMessage(t.now().Format(timestampLayout), host, text)
	data, err := json.Marshal(sendMessageRequest{
		ChatID:                t.chatID,
		Text:                  body,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	resp, err := t.client.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendMessage: unexpected status %s", resp.Status)
	}
	return nil
}
