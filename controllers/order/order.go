package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/verdano-shop/storefront-api/cart"
	"github.com/verdano-shop/storefront-api/models"
)

const pageSize = 20

type PlaceOrderInput struct {
	CustomerName       string `json:"customer_name" binding:"required"`
	CustomerEmail      string `json:"customer_email" binding:"required,email"`
	CustomerPhone      string `json:"customer_phone"`
	ShippingAddress    string `json:"shipping_address" binding:"required"`
	ShippingCity       string `json:"shipping_city" binding:"required"`
	ShippingPostalCode string `json:"shipping_postal_code"`
	ShippingCountry    string `json:"shipping_country" binding:"required"`
	PaymentMethod      string `json:"payment_method" binding:"required"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(strings.ToUpper(status)) {
	case models.OrderStatusPending:
		return models.OrderStatusPending, nil
	case models.OrderStatusProcessing:
		return models.OrderStatusProcessing, nil
	case models.OrderStatusShipped:
		return models.OrderStatusShipped, nil
	case models.OrderStatusDelivered:
		return models.OrderStatusDelivered, nil
	case models.OrderStatusCancelled:
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// PlaceOrder turns the client's persisted cart into an order. Stock is
// checked and deducted under row locks inside one transaction; the cart
// record is cleared only after the order commits.
//
// POST /orders
func PlaceOrder(db *gorm.DB, store cart.Store, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		userID, _ := userIDVal.(string)

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cartKey, err := c.Cookie("cart_id")
		if err != nil || cartKey == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		ct, err := store.Load(c.Request.Context(), cartKey)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		if len(ct.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		order := models.Order{
			UserID:             userID,
			CustomerName:       input.CustomerName,
			CustomerEmail:      input.CustomerEmail,
			CustomerPhone:      input.CustomerPhone,
			ShippingAddress:    input.ShippingAddress,
			ShippingCity:       input.ShippingCity,
			ShippingPostalCode: input.ShippingPostalCode,
			ShippingCountry:    input.ShippingCountry,
			PaymentMethod:      input.PaymentMethod,
			Status:             models.OrderStatusPending,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var total float64
			for _, item := range ct.Items {
				productID, convErr := strconv.ParseUint(item.ID, 10, 64)
				if convErr != nil {
					return errors.New("invalid product reference in cart: " + item.ID)
				}

				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&product, uint(productID)).Error; err != nil {
					return errors.New("product no longer available: " + item.Name)
				}

				if product.Stock < item.Quantity {
					return errors.New("insufficient stock for product: " + product.Name)
				}
				product.Stock -= item.Quantity
				if err := tx.Save(&product).Error; err != nil {
					return err
				}

				unitPrice := cart.ItemPrice(item)
				total += unitPrice * float64(item.Quantity)

				orderItem := models.OrderItem{
					ProductID:   product.ID,
					ProductName: item.Name,
					PackageID:   item.SelectedPackage,
					UnitPrice:   unitPrice,
					Quantity:    item.Quantity,
				}
				for _, pkg := range item.Packages {
					if pkg.ID == item.SelectedPackage {
						orderItem.PackageName = pkg.Name
						break
					}
				}
				order.Items = append(order.Items, orderItem)
			}

			order.TotalAmount = total
			return tx.Create(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// The order is durable; a failed cart clear only leaves a stale record.
		if err := store.Clear(c.Request.Context(), cartKey); err != nil {
			log.Printf("⚠️ Failed to clear cart %s after checkout: %v", cartKey, err)
		}

		hub.BroadcastOrder(order)

		c.JSON(http.StatusCreated, order)
	}
}

// GetOrders returns one page of orders, newest first, re-sorted so that the
// most recent stay on top even if the upstream sort changes.
//
// GET /admin/orders?page=N
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").
			Order("created_at desc").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		})

		c.JSON(http.StatusOK, orders)
	}
}

// GetUserOrders returns the authenticated user's own orders.
// GET /orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userIDVal).
			Order("created_at desc").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatus moves an order through its lifecycle and notifies
// connected dashboards.
//
// PUT /admin/orders/:id/status
func UpdateOrderStatus(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, err := mapOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			}
			return
		}

		if err := db.Model(&order).Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		order.Status = status

		hub.BroadcastOrder(order)

		c.JSON(http.StatusOK, order)
	}
}
