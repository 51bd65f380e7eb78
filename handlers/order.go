package handlers

import (
	"net/http"
	"time"

	"alama-backend/models"
	"alama-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderHandler struct {
	DB *gorm.DB
}

// PlaceOrder persists an order exactly as given. Item references, the
// category tags and the total price are not cross-checked against the
// catalog; status, payment state, currency and time default in the
// model's create hook when absent.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.SanitizeValidationError(err)})
		return
	}

	if order.BusinessID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "business_id is required"})
		return
	}
	if order.CustomerName == "" || order.TableNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "customer_name and table_number are required"})
		return
	}

	if err := h.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetAllByBusinessID(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}

	var orders []models.Order
	if err := h.DB.Preload("OrderItems").Where("business_id = ?", businessID).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetByBusinessIDForToday returns the business's orders placed since the
// local start of day. There is no upper bound on the range.
func (h *OrderHandler) GetByBusinessIDForToday(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var orders []models.Order
	if err := h.DB.Preload("OrderItems").
		Where("business_id = ? AND time >= ?", businessID, startOfDay).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetByBusinessIDAndStaffID(c *gin.Context) {
	businessID, ok := h.businessID(c)
	if !ok {
		return
	}
	staffID, err := uuid.Parse(c.Param("staff_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid staff ID"})
		return
	}

	var orders []models.Order
	if err := h.DB.Preload("OrderItems").
		Where("business_id = ? AND staff_id = ?", businessID, staffID).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) businessID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("business_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid business ID"})
		return uuid.Nil, false
	}
	return id, true
}
