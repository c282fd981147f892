package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/verdano-shop/storefront-api/models"
)

type PackageInput struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
}

type CreateProductInput struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Details     string         `json:"details"`
	Price       float64        `json:"price" binding:"required,gt=0"`
	Image       string         `json:"image"` // bare path from the upload endpoint
	Stock       int            `json:"stock" binding:"min=0"`
	CategoryID  *uint          `json:"category_id"`
	Packages    []PackageInput `json:"packages" binding:"dive"`
}

// CreateProduct adds a product with its packages. New products go to the end
// of the display order.
//
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Details:     input.Details,
			Price:       input.Price,
			Image:       input.Image,
			Stock:       input.Stock,
			CategoryID:  input.CategoryID,
		}
		for _, pkg := range input.Packages {
			product.Packages = append(product.Packages, models.ProductPackage{
				ID:    uuid.NewString(),
				Name:  pkg.Name,
				Price: pkg.Price,
			})
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			// Append to the end of the admin display order.
			var maxSeq int
			if err := tx.Model(&models.Product{}).
				Select("COALESCE(MAX(sequence), -1)").
				Scan(&maxSeq).Error; err != nil {
				return err
			}
			product.Sequence = maxSeq + 1
			return tx.Create(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
