package productcontroller

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/verdano-shop/storefront-api/models"
)

const pageSize = 20

// GetProducts returns one page of products with their packages and category.
// The page is re-sorted by sequence ascending after the fetch: the database
// orders by created_at, and sequence is the admin-defined display order.
//
// GET /products?page=N&category_id=&search=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}

		query := db.Model(&models.Product{}).
			Preload("Packages").
			Preload("Category")

		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}

		if categoryID := c.Query("category_id"); categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			query = query.Where("category_id = ?", uint(cid))
		}

		var products []models.Product
		if err := query.
			Order("created_at desc").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Sequence < products[j].Sequence
		})

		c.JSON(http.StatusOK, products)
	}
}
