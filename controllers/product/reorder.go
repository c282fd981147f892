package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/verdano-shop/storefront-api/models"
)

type ProductSequence struct {
	ID       uint `json:"id"`
	Sequence int  `json:"sequence"`
}

type ReorderInput struct {
	Products []ProductSequence `json:"products"`
}

// ReorderProducts applies a batch of sequence assignments in one
// transaction: either every product gets its new sequence or none do, so
// display positions never partially apply.
//
// POST /admin/products/reorder
func ReorderProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReorderInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Products == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for _, p := range input.Products {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", p.ID).
					Update("sequence", p.Sequence).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Products reordered successfully"})
	}
}
