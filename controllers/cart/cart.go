package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/verdano-shop/storefront-api/cart"
	"github.com/verdano-shop/storefront-api/models"
)

// cartCookie scopes a cart to one browsing client, the way the storefront
// scoped it to one browser's local storage. Concurrent clients sharing the
// cookie are last-writer-wins.
const cartCookie = "cart_id"

const cartCookieMaxAge = 90 * 24 * 60 * 60

type AddItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	PackageID string `json:"package_id"`
}

type QuantityInput struct {
	Quantity int `json:"quantity"`
}

type PackageInput struct {
	PackageID string `json:"package_id"`
}

// cartID returns the client's cart id, issuing the cookie on first use.
func cartID(c *gin.Context) string {
	if id, err := c.Cookie(cartCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(cartCookie, id, cartCookieMaxAge, "/", "", false, true)
	return id
}

func respondCart(c *gin.Context, ct *cart.Cart) {
	c.JSON(http.StatusOK, gin.H{
		"items": ct.Items,
		"total": ct.Total(),
		"count": ct.Count(),
	})
}

// GET /cart
func GetCart(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, err := store.Load(c.Request.Context(), cartID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		respondCart(c, ct)
	}
}

// POST /cart/items
//
// Stock is not enforced here; checkout validates it transactionally.
func AddItem(db *gorm.DB, store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.Preload("Packages").Preload("Category").
			First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		id := cartID(c)
		ct, err := store.Load(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		ct.AddItem(toCartProduct(product), input.Quantity, input.PackageID)

		if err := store.Save(c.Request.Context(), id, ct); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		respondCart(c, ct)
	}
}

// PUT /cart/items/:id/quantity
//
// Quantities below 1 leave the cart unchanged and still return 200, matching
// the reducer's no-op contract.
func UpdateQuantity(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		id := cartID(c)
		ct, err := store.Load(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		ct.UpdateQuantity(c.Param("id"), input.Quantity)

		if err := store.Save(c.Request.Context(), id, ct); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		respondCart(c, ct)
	}
}

// PUT /cart/items/:id/package
func UpdatePackage(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		id := cartID(c)
		ct, err := store.Load(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		ct.UpdatePackage(c.Param("id"), input.PackageID)

		if err := store.Save(c.Request.Context(), id, ct); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		respondCart(c, ct)
	}
}

// DELETE /cart/items/:id
func RemoveItem(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cartID(c)
		ct, err := store.Load(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		ct.RemoveItem(c.Param("id"))

		if err := store.Save(c.Request.Context(), id, ct); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		respondCart(c, ct)
	}
}

// DELETE /cart
func ClearCart(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Clear(c.Request.Context(), cartID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// toCartProduct maps a catalog product onto the cart's view of it.
func toCartProduct(p models.Product) cart.Product {
	cp := cart.Product{
		ID:          strconv.FormatUint(uint64(p.ID), 10),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
	}
	if p.Category != nil {
		cp.Category = p.Category.Name
	}
	for _, pkg := range p.Packages {
		cp.Packages = append(cp.Packages, cart.Package{
			ID:    pkg.ID,
			Name:  pkg.Name,
			Price: pkg.Price,
		})
	}
	return cp
}
