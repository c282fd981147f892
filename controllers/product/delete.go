package productcontroller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/verdano-shop/storefront-api/models"
	"github.com/verdano-shop/storefront-api/storage"
)

// DeleteProduct removes a product, its packages, and its stored image.
// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB, bucket storage.Bucket) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.ProductPackage{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		// Best effort: a leaked file is not worth failing the delete over.
		if err := bucket.Remove(product.Image); err != nil {
			log.Printf("⚠️ Failed to remove image %s: %v", product.Image, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
