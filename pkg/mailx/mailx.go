// Package mailx delivers transactional email.
package mailx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	DriverLog    = "log"
	DriverResend = "resend"

	defaultResendURL = "https://api.resend.com"
)

// Message is one outgoing email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends a Message.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// VerificationMessage builds the email carrying an email verification key.
func VerificationMessage(to, key string) Message {
	return Message{
		To:      to,
		Subject: "Your verification code",
		HTML: `<p>Enter the following code to verify your email address:</p>` +
			`<p><strong>` + html.EscapeString(key) + `</strong></p>`,
	}
}

// LogMailer writes messages to the logger instead of sending them.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	if log == nil {
		log = slog.Default()
	}
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.log.InfoContext(ctx, "mail",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("html", msg.HTML),
	)
	return nil
}

// ResendMailer posts messages to the Resend HTTP API.
type ResendMailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
}

type ResendOption func(*ResendMailer)

// WithBaseURL points the mailer at a different API host.
func WithBaseURL(u string) ResendOption {
	return func(m *ResendMailer) { m.baseURL = u }
}

func WithHTTPClient(c *http.Client) ResendOption {
	return func(m *ResendMailer) { m.client = c }
}

func NewResendMailer(apiKey, from string, opts ...ResendOption) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, errors.New("resend api key not set")
	}
	if from == "" {
		return nil, errors.New("mail from address not set")
	}

	m := &ResendMailer{
		apiKey:  apiKey,
		from:    from,
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: defaultResendURL,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	b, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("send mail: status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}

// New returns the mailer selected by driver.
func New(driver, apiKey, from string, log *slog.Logger) (Mailer, error) {
	switch driver {
	case "", DriverLog:
		return NewLogMailer(log), nil
	case DriverResend:
		return NewResendMailer(apiKey, from)
	default:
		return nil, fmt.Errorf("unknown mail driver %q", driver)
	}
}
