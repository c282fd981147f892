package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminList() []Product {
	return []Product{
		{ID: 1, Name: "A", Sequence: 0},
		{ID: 2, Name: "B", Sequence: 1},
		{ID: 3, Name: "C", Sequence: 2},
		{ID: 4, Name: "D", Sequence: 3},
	}
}

func names(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestMoveDragToFront(t *testing.T) {
	var got []ProductSequence
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/products/reorder", r.URL.Path)
		var body struct {
			Products []ProductSequence `json:"products"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		got = body.Products
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Products reordered successfully"}`))
	}))
	defer srv.Close()

	r := NewReorderer(New(srv.URL, "admin-token", nil), adminList())

	require.NoError(t, r.Move(context.Background(), 3, 0))

	assert.Equal(t, []string{"D", "A", "B", "C"}, names(r.Products()))
	assert.Equal(t, StateConfirmed, r.State())

	// Sequences follow the new positions: 0-based and contiguous.
	assert.Equal(t, []ProductSequence{
		{ID: 4, Sequence: 0},
		{ID: 1, Sequence: 1},
		{ID: 2, Sequence: 2},
		{ID: 3, Sequence: 3},
	}, got)

	for i, p := range r.Products() {
		assert.Equal(t, i, p.Sequence)
	}
}

func TestMoveRollsBackOnServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to reorder products"}`))
	}))
	defer srv.Close()

	r := NewReorderer(New(srv.URL, "admin-token", nil), adminList())

	err := r.Move(context.Background(), 3, 0)
	require.Error(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, names(r.Products()))
	assert.Equal(t, StateRolledBack, r.State())
}

func TestMoveMapsUnauthorizedToErrNotAuthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Not authenticated"}`))
	}))
	defer srv.Close()

	r := NewReorderer(New(srv.URL, "", nil), adminList())

	err := r.Move(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(r.Products()))
}

func TestMoveNoOpAndBounds(t *testing.T) {
	r := NewReorderer(New("http://unused.invalid", "", nil), adminList())

	require.NoError(t, r.Move(context.Background(), 2, 2))
	assert.Equal(t, StateIdle, r.State())

	assert.Error(t, r.Move(context.Background(), -1, 0))
	assert.Error(t, r.Move(context.Background(), 0, 4))
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(r.Products()))
}

func TestStaleResponseDoesNotOverwriteNewerMove(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			// First move: hold the response until the second move finished,
			// then fail it.
			<-release
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"too late"}`))
			return
		}
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	r := NewReorderer(New(srv.URL, "admin-token", nil), adminList())

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- r.Move(context.Background(), 3, 0)
	}()

	// Second move supersedes the first while it is still in flight.
	for r.State() != StateReconciling {
		runtime.Gosched()
	}
	require.NoError(t, r.Move(context.Background(), 0, 1))
	after := names(r.Products())
	assert.Equal(t, StateConfirmed, r.State())

	close(release)
	require.NoError(t, <-firstDone) // stale outcome is discarded, not an error

	// The failed stale response must not roll back the newer confirmed order.
	assert.Equal(t, after, names(r.Products()))
	assert.Equal(t, StateConfirmed, r.State())
}
