package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProductsResortsBySequence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		// Server order is by creation date, not by sequence.
		w.Write([]byte(`[
			{"id":1,"name":"B","sequence":1},
			{"id":2,"name":"D","sequence":3},
			{"id":3,"name":"A","sequence":0},
			{"id":4,"name":"C","sequence":2}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	products, err := c.FetchProducts(context.Background(), 2)
	require.NoError(t, err)

	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, names)
}

func TestFetchProductsRejectsNonListPayloads(t *testing.T) {
	payloads := []string{
		`{"error":"oops"}`,
		`"a string"`,
		`null`,
		``,
		`[{"id":1},`,
	}

	for _, payload := range payloads {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(payload))
		}))

		c := New(srv.URL, "", nil)
		_, err := c.FetchProducts(context.Background(), 1)
		assert.Error(t, err, "payload %q", payload)

		srv.Close()
	}
}

func TestFetchOrdersSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"customer_name":"Ana","total_amount":42.5,"status":"PENDING"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "admin-token", nil)
	orders, err := c.FetchOrders(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Ana", orders[0].CustomerName)
}

func TestFetchSurfacesUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Not authenticated"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	_, err := c.FetchOrders(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
