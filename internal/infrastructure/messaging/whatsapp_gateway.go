package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingWhatsAppAPIURL        = errors.New("missing WHATSAPP_API_URL")
	ErrWhatsAppGatewayNotConfigured = errors.New("whatsapp gateway not configured")
)

const defaultSendTimeout = 10 * time.Second

// WhatsAppGateway sends reminder messages through the WhatsApp HTTP API.
//
// Supported env vars:
//   - WHATSAPP_API_URL (send endpoint)
//   - WHATSAPP_API_TOKEN (bearer token, optional for self-hosted bridges)
//   - WHATSAPP_GATEWAY_MOCK (1/true/yes/on/mock: skip the provider entirely)

type WhatsAppGateway struct {
	apiURL   string
	apiToken string
	client   *http.Client
	mockMode bool
}

func NewWhatsAppGateway(apiURL, apiToken string) (*WhatsAppGateway, error) {
	if isMessageGatewayMockEnabled() {
		log.Printf("[reminder][gateway] mock mode enabled")
		return &WhatsAppGateway{mockMode: true}, nil
	}

	if apiURL == "" {
		log.Printf("[reminder][gateway] missing WHATSAPP_API_URL")
		return nil, ErrMissingWhatsAppAPIURL
	}

	return &WhatsAppGateway{
		apiURL:   apiURL,
		apiToken: apiToken,
		client:   &http.Client{Timeout: defaultSendTimeout},
	}, nil
}

type sendMessageRequest struct {
	To   string `json:"to"`
	Type string `json:"type"`
	Text string `json:"text"`
}

type sendMessageResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

func (g *WhatsAppGateway) SendMessage(ctx context.Context, recipient string, message string) (string, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[reminder][gateway] mock send success recipient=%s provider_message_id=%s", recipient, id)
		return id, nil
	}

	if g == nil || g.client == nil {
		return "", ErrWhatsAppGatewayNotConfigured
	}

	body, err := json.Marshal(sendMessageRequest{To: recipient, Type: "text", Text: message})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiToken)
	}

	log.Printf("[reminder][gateway] send start recipient=%s payload_len=%d", recipient, len(body))
	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[reminder][gateway] send failed recipient=%s err=%v", recipient, err)
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[reminder][gateway] provider error recipient=%s status=%d body=%s", recipient, resp.StatusCode, truncate(string(raw), 512))
		return "", fmt.Errorf("whatsapp api returned status %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}

	var parsed sendMessageResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		// Some bridges answer with an empty or non-JSON body on success.
		log.Printf("[reminder][gateway] send success recipient=%s (unparseable provider body)", recipient)
		return "", nil
	}

	log.Printf("[reminder][gateway] send success recipient=%s provider_message_id=%s provider_status=%s", recipient, parsed.MessageID, parsed.Status)
	return parsed.MessageID, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func isMessageGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("WHATSAPP_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
