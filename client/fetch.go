package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// FetchProducts retrieves one page of products and re-sorts it by sequence
// ascending, in case the server's sort is not the admin display order. A
// payload that is not a JSON list is a fetch failure, never an empty page.
func (c *Client) FetchProducts(ctx context.Context, page int) ([]Product, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products?page=%d", page), nil)
	if err != nil {
		return nil, err
	}

	products, err := decodeList[Product](data)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Sequence < products[j].Sequence
	})
	return products, nil
}

// FetchOrders retrieves one page of admin orders with the same non-list
// payload rule.
func (c *Client) FetchOrders(ctx context.Context, page int) ([]Order, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/orders?page=%d", page), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Order](data)
}

// decodeList decodes a JSON list strictly: anything else — an object, a bare
// value, malformed JSON — is an error surfaced to the caller.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("unexpected response payload: not a list")
	}
	var out []T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("malformed response payload: %w", err)
	}
	return out, nil
}
