package handlers

import (
	"net/http"

	"alama-backend/models"
	"alama-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type BusinessOwnerHandler struct {
	DB *gorm.DB
}

func (h *BusinessOwnerHandler) Create(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Phone     string `json:"phone" binding:"required"`
		Password  string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.SanitizeValidationError(err)})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to hash password"})
		return
	}

	owner := models.BusinessOwner{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  string(hashedPassword),
	}

	if err := h.DB.Create(&owner).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create business owner"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Business owner successfully created",
		"data":    owner,
	})
}

func (h *BusinessOwnerHandler) GetAll(c *gin.Context) {
	var owners []models.BusinessOwner
	if err := h.DB.Find(&owners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch business owners"})
		return
	}
	c.JSON(http.StatusOK, owners)
}

func (h *BusinessOwnerHandler) GetByID(c *gin.Context) {
	owner, ok := h.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, owner)
}

// Update replaces the profile fields supplied in the body; a supplied
// password is re-hashed before persistence.
func (h *BusinessOwnerHandler) Update(c *gin.Context) {
	owner, ok := h.find(c)
	if !ok {
		return
	}

	var req struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
		Password  *string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.SanitizeValidationError(err)})
		return
	}

	if req.FirstName != nil {
		owner.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		owner.LastName = *req.LastName
	}
	if req.Email != nil {
		owner.Email = *req.Email
	}
	if req.Phone != nil {
		owner.Phone = *req.Phone
	}
	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to hash password"})
			return
		}
		owner.Password = string(hashedPassword)
	}

	if err := h.DB.Save(owner).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update business owner"})
		return
	}

	c.JSON(http.StatusOK, owner)
}

func (h *BusinessOwnerHandler) Delete(c *gin.Context) {
	owner, ok := h.find(c)
	if !ok {
		return
	}

	if err := h.DB.Delete(owner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete business owner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Business owner deleted"})
}

// Login authenticates by email OR phone plus password, and issues an
// access token and a refresh token. The owner record in the response
// carries the hashed password field, matching the existing API contract.
func (h *BusinessOwnerHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.SanitizeValidationError(err)})
		return
	}

	var owner models.BusinessOwner
	if err := h.DB.Where("email = ? OR phone = ?", req.Email, req.Phone).First(&owner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Business owner not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(owner.ID, owner.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to generate token"})
		return
	}

	refreshToken, err := utils.GenerateRefreshToken(owner.ID, owner.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to generate refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"user":         owner,
		"token":        token,
		"refreshToken": refreshToken,
	})
}

// RefreshToken exchanges a valid refresh token for a new access token
// bound to the same identity.
func (h *BusinessOwnerHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Refresh token is required"})
		return
	}

	claims, err := utils.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid refresh token"})
		return
	}

	token, err := utils.GenerateToken(claims.OwnerID, claims.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"message": "Token refreshed successfully",
	})
}

func (h *BusinessOwnerHandler) find(c *gin.Context) (*models.BusinessOwner, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Business owner not found"})
		return nil, false
	}

	var owner models.BusinessOwner
	if err := h.DB.Where("id = ?", id).First(&owner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Business owner not found"})
		return nil, false
	}
	return &owner, true
}
