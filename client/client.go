// Package client is the Go client for the storefront API used by the admin
// tooling: paginated catalog fetches and the drag-and-drop reorder protocol
// with optimistic local state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNotAuthenticated reports a rejected session. Callers route it to the
// login entry point instead of showing a generic error.
var ErrNotAuthenticated = errors.New("not authenticated")

// Product is the catalog entry the admin list works with.
type Product struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Stock    int       `json:"stock"`
	Sequence int       `json:"sequence"`
	Packages []Package `json:"packages"`
}

type Package struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Order is the admin order-list entry.
type Order struct {
	ID           uint    `json:"id"`
	CustomerName string  `json:"customer_name"`
	TotalAmount  float64 `json:"total_amount"`
	Status       string  `json:"status"`
}

// Client talks to the storefront API with a session token.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New builds a client. httpc may be nil to use http.DefaultClient.
func New(baseURL, token string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{baseURL: baseURL, token: token, httpc: httpc}
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrNotAuthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp.StatusCode, data)
	}
	return data, nil
}

func apiError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("api error (%d): %s", status, payload.Error)
	}
	return fmt.Errorf("api error (%d)", status)
}
