package cartControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdano-shop/storefront-api/cart"
)

func newCartRouter(t *testing.T) (*gin.Engine, cart.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	store := cart.NewRedisStore(rdb, time.Hour)

	r := gin.New()
	r.GET("/cart", GetCart(store))
	r.PUT("/cart/items/:id/quantity", UpdateQuantity(store))
	r.PUT("/cart/items/:id/package", UpdatePackage(store))
	r.DELETE("/cart/items/:id", RemoveItem(store))
	r.DELETE("/cart", ClearCart(store))
	return r, store
}

func seedCart(t *testing.T, store cart.Store, cartID string) {
	t.Helper()
	ct := cart.New()
	ct.AddItem(cart.Product{
		ID:    "1",
		Name:  "Green Tea",
		Price: 100,
		Packages: []cart.Package{
			{ID: "p1", Name: "250g", Price: 150},
		},
	}, 2, "p1")
	require.NoError(t, store.Save(context.Background(), cartID, ct))
}

type cartResponse struct {
	Items []cart.Item `json:"items"`
	Total float64     `json:"total"`
	Count int         `json:"count"`
}

func doCartRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, cartResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: "cart_id", Value: "test-cart"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp cartResponse
	if w.Code == http.StatusOK && strings.Contains(w.Header().Get("Content-Type"), "json") {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func TestGetCartEmptyByDefault(t *testing.T) {
	r, _ := newCartRouter(t)

	w, resp := doCartRequest(t, r, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.Total)
	assert.Zero(t, resp.Count)
}

func TestUpdateQuantityRecomputesTotals(t *testing.T) {
	r, store := newCartRouter(t)
	seedCart(t, store, "test-cart")

	w, resp := doCartRequest(t, r, http.MethodPut, "/cart/items/1/quantity", `{"quantity":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, 150.0*5, resp.Items[0].TotalPrice)
	assert.Equal(t, 150.0*5, resp.Total)
	assert.Equal(t, 5, resp.Count)
}

func TestUpdateQuantityZeroIsNoOp(t *testing.T) {
	r, store := newCartRouter(t)
	seedCart(t, store, "test-cart")

	w, resp := doCartRequest(t, r, http.MethodPut, "/cart/items/1/quantity", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 150.0*2, resp.Items[0].TotalPrice)
}

func TestUpdatePackageUnknownFallsBackToBasePrice(t *testing.T) {
	r, store := newCartRouter(t)
	seedCart(t, store, "test-cart")

	w, resp := doCartRequest(t, r, http.MethodPut, "/cart/items/1/package", `{"package_id":"p2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "p2", resp.Items[0].SelectedPackage)
	assert.Equal(t, 100.0*2, resp.Items[0].TotalPrice)
}

func TestRemoveItemAndClearPersist(t *testing.T) {
	r, store := newCartRouter(t)
	seedCart(t, store, "test-cart")

	w, resp := doCartRequest(t, r, http.MethodDelete, "/cart/items/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Items)

	loaded, err := store.Load(context.Background(), "test-cart")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)

	seedCart(t, store, "test-cart")
	w, _ = doCartRequest(t, r, http.MethodDelete, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	loaded, err = store.Load(context.Background(), "test-cart")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}
