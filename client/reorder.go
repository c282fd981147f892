package client

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// ReorderState tracks where a drag interaction is in its lifecycle.
type ReorderState int

const (
	StateIdle ReorderState = iota
	StateReconciling
	StateConfirmed
	StateRolledBack
)

// ProductSequence is one {id, sequence} assignment in a reorder batch.
type ProductSequence struct {
	ID       uint `json:"id"`
	Sequence int  `json:"sequence"`
}

// ReorderProducts sends a full batch of sequence assignments. The server
// applies them atomically; a 401 surfaces as ErrNotAuthenticated.
func (c *Client) ReorderProducts(ctx context.Context, products []ProductSequence) error {
	body := struct {
		Products []ProductSequence `json:"products"`
	}{Products: products}

	_, err := c.do(ctx, http.MethodPost, "/admin/products/reorder", body)
	return err
}

// Reorderer owns the admin product list during drag-and-drop reordering. A
// move applies optimistically: the list updates before the server confirms,
// and the pre-move snapshot is kept until confirmation so a failure can
// restore it exactly. A generation counter guards against a stale response
// overwriting the state of a newer move.
type Reorderer struct {
	client *Client

	mu       sync.Mutex
	products []Product
	state    ReorderState
	gen      uint64
}

// NewReorderer takes the current admin list, usually fresh from
// FetchProducts.
func NewReorderer(client *Client, products []Product) *Reorderer {
	return &Reorderer{
		client:   client,
		products: append([]Product(nil), products...),
		state:    StateIdle,
	}
}

// Products returns the current (possibly optimistic) list order.
func (r *Reorderer) Products() []Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Product(nil), r.products...)
}

// State returns the outcome of the most recent move.
func (r *Reorderer) State() ReorderState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Move drags the element at from to position to: the element is spliced out
// and reinserted, and every element gets sequence = its new index (0-based,
// contiguous). The new order shows immediately; the server is then asked to
// confirm. On failure the pre-move order is restored and the error returned —
// ErrNotAuthenticated when the session was rejected.
//
// A move that is superseded by a newer one before its response arrives is
// discarded: it neither confirms nor rolls back the newer state.
func (r *Reorderer) Move(ctx context.Context, from, to int) error {
	r.mu.Lock()

	if from < 0 || from >= len(r.products) || to < 0 || to >= len(r.products) {
		r.mu.Unlock()
		return errors.New("move index out of range")
	}
	if from == to {
		r.mu.Unlock()
		return nil
	}

	snapshot := append([]Product(nil), r.products...)

	// Standard list splice: remove from source, reinsert at destination.
	moved := r.products[from]
	rest := append(append([]Product(nil), r.products[:from]...), r.products[from+1:]...)
	reordered := append(append(append([]Product(nil), rest[:to]...), moved), rest[to:]...)
	for i := range reordered {
		reordered[i].Sequence = i
	}

	r.products = reordered
	r.state = StateReconciling
	r.gen++
	gen := r.gen

	payload := make([]ProductSequence, len(reordered))
	for i, p := range reordered {
		payload[i] = ProductSequence{ID: p.ID, Sequence: p.Sequence}
	}
	r.mu.Unlock()

	err := r.client.ReorderProducts(ctx, payload)

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		// A newer move owns the state now; this response is stale.
		return nil
	}

	if err != nil {
		r.products = snapshot
		r.state = StateRolledBack
		return err
	}

	r.state = StateConfirmed
	return nil
}
