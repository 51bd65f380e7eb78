package handlers

import (
	"net/http"

	"alama-backend/models"
	"alama-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusinessHandler struct {
	DB *gorm.DB
}

// Create registers a business. The logo and license are pre-resolved
// URLs; this handler performs no uploads.
func (h *BusinessHandler) Create(c *gin.Context) {
	var req struct {
		BusinessOwnerID   uuid.UUID `json:"business_owner_id" binding:"required"`
		BusinessName      string    `json:"business_name" binding:"required"`
		BusinessCategory  string    `json:"business_category" binding:"required"`
		NumberOfEmployees int       `json:"number_of_employees" binding:"required"`
		Logo              string    `json:"logo" binding:"required"`
		License           string    `json:"license" binding:"required"`
		Location          string    `json:"location" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.SanitizeValidationError(err)})
		return
	}

	business := models.Business{
		BusinessOwnerID:   req.BusinessOwnerID,
		BusinessName:      req.BusinessName,
		BusinessCategory:  req.BusinessCategory,
		NumberOfEmployees: req.NumberOfEmployees,
		Logo:              req.Logo,
		License:           req.License,
		Location:          req.Location,
	}

	if err := h.DB.Create(&business).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create business"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Business created successfully",
		"business": business,
	})
}

func (h *BusinessHandler) GetAll(c *gin.Context) {
	var businesses []models.Business
	if err := h.DB.Find(&businesses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch businesses"})
		return
	}
	c.JSON(http.StatusOK, businesses)
}

func (h *BusinessHandler) GetByID(c *gin.Context) {
	business, ok := h.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) Update(c *gin.Context) {
	business, ok := h.find(c)
	if !ok {
		return
	}

	var req struct {
		BusinessOwnerID   *uuid.UUID `json:"business_owner_id"`
		BusinessName      *string    `json:"business_name"`
		BusinessCategory  *string    `json:"business_category"`
		NumberOfEmployees *int       `json:"number_of_employees"`
		Logo              *string    `json:"logo"`
		License           *string    `json:"license"`
		Location          *string    `json:"location"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.SanitizeValidationError(err)})
		return
	}

	if req.BusinessOwnerID != nil {
		business.BusinessOwnerID = *req.BusinessOwnerID
	}
	if req.BusinessName != nil {
		business.BusinessName = *req.BusinessName
	}
	if req.BusinessCategory != nil {
		business.BusinessCategory = *req.BusinessCategory
	}
	if req.NumberOfEmployees != nil {
		business.NumberOfEmployees = *req.NumberOfEmployees
	}
	if req.Logo != nil {
		business.Logo = *req.Logo
	}
	if req.License != nil {
		business.License = *req.License
	}
	if req.Location != nil {
		business.Location = *req.Location
	}

	if err := h.DB.Save(business).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update business"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Business updated successfully",
		"business": business,
	})
}

func (h *BusinessHandler) Delete(c *gin.Context) {
	business, ok := h.find(c)
	if !ok {
		return
	}

	if err := h.DB.Delete(business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete business"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Business deleted successfully"})
}

func (h *BusinessHandler) find(c *gin.Context) (*models.Business, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Business not found"})
		return nil, false
	}

	var business models.Business
	if err := h.DB.Where("id = ?", id).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Business not found"})
		return nil, false
	}
	return &business, true
}
