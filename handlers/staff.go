package handlers

import (
	"net/http"

	"alama-backend/firebase"
	"alama-backend/models"
	"alama-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffHandler struct {
	DB      *gorm.DB
	Storage firebase.StorageClient
}

// Register creates a staff member from a multipart form. An optional
// single "image" part is uploaded before the record is persisted.
func (h *StaffHandler) Register(c *gin.Context) {
	businessOwnerID, err := uuid.Parse(c.PostForm("business_owner_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "business_owner_id is required"})
		return
	}
	businessID, err := uuid.Parse(c.PostForm("business_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "business_id is required"})
		return
	}

	staff := models.Staff{
		BusinessOwnerID:  businessOwnerID,
		BusinessID:       businessID,
		StaffName:        c.PostForm("staff_name"),
		StaffDesignation: c.PostForm("staff_designation"),
		StaffCode:        c.PostForm("staff_code"),
		StaffCategory:    c.PostForm("staff_category"),
		Email:            c.PostForm("email"),
		Phone:            c.PostForm("phone"),
	}

	if staff.StaffName == "" || staff.StaffDesignation == "" || staff.StaffCode == "" || staff.StaffCategory == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "staff_name, staff_designation, staff_code and staff_category are required"})
		return
	}

	if fh, err := c.FormFile("image"); err == nil {
		if err := utils.ValidateFileUpload(fh); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		file, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid image"})
			return
		}
		defer file.Close()

		uploaded, err := h.Storage.UploadImage(file, fh.Filename, fh.Header.Get("Content-Type"), "staffs")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		staff.StaffImage = uploaded
	}

	if err := h.DB.Create(&staff).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to register staff"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Staff registered successfully",
		"staff":   staff,
	})
}

// Login looks a staff member up by code and category. There is no secret
// and no token; the matched record itself is the session payload.
func (h *StaffHandler) Login(c *gin.Context) {
	var req struct {
		StaffCode     string `json:"staff_code" binding:"required"`
		StaffCategory string `json:"staff_category" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.SanitizeValidationError(err)})
		return
	}

	var staff models.Staff
	if err := h.DB.Where("staff_code = ? AND staff_category = ?", req.StaffCode, req.StaffCategory).First(&staff).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"staff":   staff,
	})
}

func (h *StaffHandler) GetByBusinessID(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("business_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid business ID"})
		return
	}

	var staffs []models.Staff
	if err := h.DB.Where("business_id = ?", businessID).Find(&staffs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch staff"})
		return
	}
	c.JSON(http.StatusOK, staffs)
}

// GetByNameAndBusinessID lists the staff matching the staff_name and
// business_id query params; both are required. An empty list is a
// normal result, not a miss.
func (h *StaffHandler) GetByNameAndBusinessID(c *gin.Context) {
	name := c.Query("staff_name")
	businessIDParam := c.Query("business_id")
	if name == "" || businessIDParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "staff_name and business_id are required"})
		return
	}

	businessID, err := uuid.Parse(businessIDParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid business ID"})
		return
	}

	var staffs []models.Staff
	if err := h.DB.Where("staff_name = ? AND business_id = ?", name, businessID).Find(&staffs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch staff"})
		return
	}
	c.JSON(http.StatusOK, staffs)
}

func (h *StaffHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Staff not found"})
		return
	}

	var staff models.Staff
	if err := h.DB.Where("id = ?", id).First(&staff).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Staff not found"})
		return
	}
	c.JSON(http.StatusOK, staff)
}
