package handlers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"alama-backend/firebase"
	"alama-backend/models"
	"alama-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kind configures the generic menu-item handler for one of the five
// catalog collections. The collections are structurally identical; they
// differ only in the wire field-name prefix, the storage folder, and how
// image sources arrive (multipart file parts for foods, source URLs in
// the JSON body for the rest).
type Kind struct {
	Tag          string // value stored in the menu_items.kind column
	Prefix       string // wire field-name prefix, e.g. "food" -> food_name
	Folder       string // image storage folder
	Label        string // human-readable name used in messages
	RequireImage bool   // both image slots mandatory at registration
	AcceptsFiles bool   // registration/update consume multipart file parts
}

var (
	FoodKind  = Kind{Tag: models.KindFood, Prefix: "food", Folder: "foods", Label: "Food item", RequireImage: true, AcceptsFiles: true}
	FruitKind = Kind{Tag: models.KindFruit, Prefix: "fruit", Folder: "fruits", Label: "Fruit"}
	AddonKind = Kind{Tag: models.KindAddon, Prefix: "addon", Folder: "addons", Label: "Addon"}

	// The drink prefixes are camelCase on the wire while fruit/addon are
	// snake_case; clients depend on the exact field names.
	HotDrinkKind  = Kind{Tag: models.KindHotDrink, Prefix: "hotDrink", Folder: "hot_drinks", Label: "Hot drink"}
	SoftDrinkKind = Kind{Tag: models.KindSoftDrink, Prefix: "softDrink", Folder: "soft_drinks", Label: "Soft drink"}
)

type MenuItemHandler struct {
	DB      *gorm.DB
	Storage firebase.StorageClient
	Kind    Kind
}

type imagePayload struct {
	URL1 string `json:"url1"`
	URL2 string `json:"url2"`
}

// menuItemInput is the parsed request body for register/update. Pointer
// fields distinguish "absent" from "zero" so partial updates only touch
// what the caller supplied.
type menuItemInput struct {
	BusinessID      *uuid.UUID
	Name            *string
	MealCategory    *string
	Category        *string
	Image           *imagePayload
	Price           *models.Price
	Availability    *bool
	Description     *string
	PreparationTime *int
}

// parseJSONInput decodes a prefix-keyed JSON body (fruit_name,
// fruit_image, ...) into the neutral input shape.
func (h *MenuItemHandler) parseJSONInput(c *gin.Context) (*menuItemInput, error) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		return nil, fmt.Errorf("Invalid request body")
	}

	p := h.Kind.Prefix
	in := &menuItemInput{}

	decode := func(key string, dst interface{}) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("invalid value for %s", key)
		}
		return nil
	}

	if err := decode("business_id", &in.BusinessID); err != nil {
		return nil, err
	}
	if err := decode(p+"_name", &in.Name); err != nil {
		return nil, err
	}
	if err := decode("meal_category", &in.MealCategory); err != nil {
		return nil, err
	}
	if err := decode("category", &in.Category); err != nil {
		return nil, err
	}
	if err := decode(p+"_image", &in.Image); err != nil {
		return nil, err
	}
	if err := decode(p+"_price", &in.Price); err != nil {
		return nil, err
	}
	if err := decode(p+"_availability", &in.Availability); err != nil {
		return nil, err
	}
	if err := decode(p+"_description", &in.Description); err != nil {
		return nil, err
	}
	if err := decode("preparation_time", &in.PreparationTime); err != nil {
		return nil, err
	}

	return in, nil
}

// parseFormInput reads the multipart form fields used by file-upload
// kinds. Empty fields are treated as absent.
func (h *MenuItemHandler) parseFormInput(c *gin.Context) (*menuItemInput, error) {
	p := h.Kind.Prefix
	in := &menuItemInput{}

	if v := c.PostForm("business_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("Invalid business ID")
		}
		in.BusinessID = &id
	}
	if v := c.PostForm(p + "_name"); v != "" {
		in.Name = &v
	}
	if v := c.PostForm("meal_category"); v != "" {
		in.MealCategory = &v
	}
	if v := c.PostForm("category"); v != "" {
		in.Category = &v
	}
	if v := c.PostForm(p + "_description"); v != "" {
		in.Description = &v
	}
	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for price")
		}
		in.Price = &models.Price{Price: price, Currency: c.PostForm("currency")}
	}
	if v := c.PostForm(p + "_availability"); v != "" {
		b := v == "true"
		in.Availability = &b
	}
	if v := c.PostForm("preparation_time"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for preparation_time")
		}
		in.PreparationTime = &n
	}

	return in, nil
}

func (h *MenuItemHandler) parseInput(c *gin.Context) (*menuItemInput, error) {
	if h.Kind.AcceptsFiles {
		return h.parseFormInput(c)
	}
	return h.parseJSONInput(c)
}

// uploadFilePart validates and uploads a single multipart image part.
func (h *MenuItemHandler) uploadFilePart(fh *multipart.FileHeader) (string, error) {
	if err := utils.ValidateFileUpload(fh); err != nil {
		return "", err
	}
	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("invalid image")
	}
	defer file.Close()

	return h.Storage.UploadImage(file, fh.Filename, fh.Header.Get("Content-Type"), h.Kind.Folder)
}

func (h *MenuItemHandler) validatePreparationTime(in *menuItemInput) error {
	if in.PreparationTime != nil && (*in.PreparationTime < 0 || *in.PreparationTime > 9) {
		return fmt.Errorf("preparation_time must be between 0 and 9")
	}
	return nil
}

// Register creates a catalog entry. Image sources, when supplied, are
// uploaded (one call per slot) before the document is persisted; if any
// upload fails nothing is saved.
func (h *MenuItemHandler) Register(c *gin.Context) {
	in, err := h.parseInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if in.BusinessID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "business_id is required"})
		return
	}
	if in.Name == nil || *in.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": h.Kind.Prefix + "_name is required"})
		return
	}
	if in.Price == nil || in.Price.Currency == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": h.Kind.Prefix + "_price with price and currency is required"})
		return
	}
	if err := h.validatePreparationTime(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	item := models.MenuItem{
		Kind:       h.Kind.Tag,
		BusinessID: *in.BusinessID,
		Name:       *in.Name,
		Price:      *in.Price,
		// Availability defaults to true unless the caller says otherwise.
		Availability: in.Availability == nil || *in.Availability,
	}
	if in.MealCategory != nil {
		item.MealCategory = *in.MealCategory
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.PreparationTime != nil {
		item.PreparationTime = *in.PreparationTime
	}

	if h.Kind.AcceptsFiles {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to parse form"})
			return
		}
		url1 := form.File["url1"]
		url2 := form.File["url2"]
		if h.Kind.RequireImage && (len(url1) == 0 || len(url2) == 0) {
			c.JSON(http.StatusBadRequest, gin.H{"message": h.Kind.Prefix + "_image requires both url1 and url2"})
			return
		}
		if len(url1) > 0 {
			uploaded, err := h.uploadFilePart(url1[0])
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			item.ImageURL1 = uploaded
		}
		if len(url2) > 0 {
			uploaded, err := h.uploadFilePart(url2[0])
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			item.ImageURL2 = uploaded
		}
	} else if in.Image != nil {
		if in.Image.URL1 != "" {
			uploaded, err := h.Storage.UploadFromURL(in.Image.URL1, h.Kind.Folder)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			item.ImageURL1 = uploaded
		}
		if in.Image.URL2 != "" {
			uploaded, err := h.Storage.UploadFromURL(in.Image.URL2, h.Kind.Folder)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			item.ImageURL2 = uploaded
		}
	}

	if err := h.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create " + h.Kind.Prefix})
		return
	}

	c.JSON(http.StatusCreated, h.render(item))
}

func (h *MenuItemHandler) GetAll(c *gin.Context) {
	var items []models.MenuItem
	if err := h.DB.Where("kind = ?", h.Kind.Tag).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch " + h.Kind.Folder})
		return
	}
	c.JSON(http.StatusOK, h.renderAll(items))
}

func (h *MenuItemHandler) GetByID(c *gin.Context) {
	item, ok := h.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.render(*item))
}

func (h *MenuItemHandler) GetByBusinessID(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("business_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid business ID"})
		return
	}

	var items []models.MenuItem
	if err := h.DB.Where("kind = ? AND business_id = ?", h.Kind.Tag, businessID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch " + h.Kind.Folder})
		return
	}
	c.JSON(http.StatusOK, h.renderAll(items))
}

// Update merges the supplied fields into the stored document. Image slots
// are re-uploaded and replaced individually; a slot that is not supplied
// keeps its current URL.
func (h *MenuItemHandler) Update(c *gin.Context) {
	item, ok := h.find(c)
	if !ok {
		return
	}

	in, err := h.parseInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.validatePreparationTime(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if h.Kind.AcceptsFiles {
		if form, err := c.MultipartForm(); err == nil {
			if files := form.File["url1"]; len(files) > 0 {
				uploaded, err := h.uploadFilePart(files[0])
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
					return
				}
				item.ImageURL1 = uploaded
			}
			if files := form.File["url2"]; len(files) > 0 {
				uploaded, err := h.uploadFilePart(files[0])
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
					return
				}
				item.ImageURL2 = uploaded
			}
		}
	} else if in.Image != nil {
		if in.Image.URL1 != "" {
			uploaded, err := h.Storage.UploadFromURL(in.Image.URL1, h.Kind.Folder)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			item.ImageURL1 = uploaded
		}
		if in.Image.URL2 != "" {
			uploaded, err := h.Storage.UploadFromURL(in.Image.URL2, h.Kind.Folder)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			item.ImageURL2 = uploaded
		}
	}

	if in.BusinessID != nil {
		item.BusinessID = *in.BusinessID
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.MealCategory != nil {
		item.MealCategory = *in.MealCategory
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Availability != nil {
		item.Availability = *in.Availability
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.PreparationTime != nil {
		item.PreparationTime = *in.PreparationTime
	}

	if err := h.DB.Save(item).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update " + h.Kind.Prefix})
		return
	}

	c.JSON(http.StatusOK, h.render(*item))
}

func (h *MenuItemHandler) Delete(c *gin.Context) {
	item, ok := h.find(c)
	if !ok {
		return
	}

	if err := h.DB.Delete(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete " + h.Kind.Prefix})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.Kind.Label + " deleted"})
}

// find loads the item addressed by the :id param, writing a 404 response
// and returning ok=false when it does not exist in this kind's collection.
func (h *MenuItemHandler) find(c *gin.Context) (*models.MenuItem, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": h.Kind.Label + " not found"})
		return nil, false
	}

	var item models.MenuItem
	if err := h.DB.Where("id = ? AND kind = ?", id, h.Kind.Tag).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": h.Kind.Label + " not found"})
		return nil, false
	}
	return &item, true
}

// render produces the prefix-keyed wire representation of an item.
func (h *MenuItemHandler) render(item models.MenuItem) gin.H {
	p := h.Kind.Prefix
	return gin.H{
		"id":            item.ID,
		"business_id":   item.BusinessID,
		p + "_name":     item.Name,
		"meal_category": item.MealCategory,
		"category":      item.Category,
		p + "_image": gin.H{
			"url1": item.ImageURL1,
			"url2": item.ImageURL2,
		},
		p + "_price": gin.H{
			"price":    item.Price.Price,
			"currency": item.Price.Currency,
		},
		p + "_availability": item.Availability,
		p + "_description":  item.Description,
		"preparation_time":  item.PreparationTime,
	}
}

func (h *MenuItemHandler) renderAll(items []models.MenuItem) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, item := range items {
		out = append(out, h.render(item))
	}
	return out
}
