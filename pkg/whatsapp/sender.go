package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ducochat-be/internal/pkg/logger"
)

// Client sends messages through the WhatsApp Cloud API (Graph API).
type Client struct {
	baseURL       string
	accessToken   string
	phoneNumberID string
	httpClient    *http.Client
	logger        logger.ILogger
}

func NewClient(baseURL, accessToken, phoneNumberID string, log logger.ILogger) *Client {
	return &Client{
		baseURL:       baseURL,
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: log,
	}
}

type textMessageRequest struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             textPayload `json:"text"`
}

type textPayload struct {
	Body string `json:"body"`
}

// SendText delivers a plain text message to a phone number. Delivery
// failures are logged and returned; callers decide whether to retry.
func (c *Client) SendText(ctx context.Context, to string, body string) error {
	reqBody := textMessageRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textPayload{Body: body},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("whatsapp", "failed to send message", map[string]interface{}{
			"to":    to,
			"error": err.Error(),
		})
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("whatsapp", "graph api rejected message", map[string]interface{}{
			"to":     to,
			"status": resp.StatusCode,
			"body":   string(respBody),
		})
		return fmt.Errorf("graph api returned status %d", resp.StatusCode)
	}

	c.logger.Debug("whatsapp", "message sent", map[string]interface{}{
		"to": to,
	})
	return nil
}
