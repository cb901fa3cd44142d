package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxResponseBody bounds how much of a webhook response is kept for diagnostics.
const maxResponseBody = 1024

// Observer is notified after every delivery attempt.
type Observer interface {
	ObserveDelivery(statusCode int, elapsed time.Duration, err error)
}

type Client struct {
	HTTP     *http.Client
	Observer Observer
}

func NewClient(timeout time.Duration, observer Observer) *Client {
	return &Client{
		HTTP:     &http.Client{Timeout: timeout},
		Observer: observer,
	}
}

// Send performs a single POST of msg to targetURL. A non-2xx answer is not an error;
// callers inspect Result.OK. Errors are transport failures and never include the url.
func (c *Client) Send(ctx context.Context, targetURL string, msg Message) (*Result, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode discord message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.New("build discord request failed")
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		c.observe(0, time.Since(start), err)
		// url.Error embeds the target url, which holds the webhook token.
		return nil, fmt.Errorf("discord request failed: %w", unwrapURLError(err))
	}
	defer resp.Body.Close()

	text, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	c.observe(resp.StatusCode, time.Since(start), nil)

	return &Result{StatusCode: resp.StatusCode, Body: string(text)}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) observe(status int, elapsed time.Duration, err error) {
	if c.Observer != nil {
		c.Observer.ObserveDelivery(status, elapsed, err)
	}
}
