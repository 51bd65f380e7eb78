package routes

import (
	"alama-backend/firebase"
	"alama-backend/handlers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// menuItemRoutes mounts the shared CRUD surface for one catalog kind.
func menuItemRoutes(api *gin.RouterGroup, path string, h *handlers.MenuItemHandler) {
	group := api.Group(path)
	{
		group.POST("", h.Register)
		group.GET("", h.GetAll)
		group.GET("/:id", h.GetByID)
		group.GET("/business/:business_id", h.GetByBusinessID)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, storage firebase.StorageClient) {
	// Initialize handlers
	ownerHandler := &handlers.BusinessOwnerHandler{DB: db}
	businessHandler := &handlers.BusinessHandler{DB: db}
	staffHandler := &handlers.StaffHandler{DB: db, Storage: storage}
	orderHandler := &handlers.OrderHandler{DB: db}

	api := r.Group("/api")
	{
		owners := api.Group("/business_owners")
		{
			owners.POST("", ownerHandler.Create)
			owners.POST("/login", ownerHandler.Login)
			owners.POST("/refresh", ownerHandler.RefreshToken)
			owners.GET("", ownerHandler.GetAll)
			owners.GET("/:id", ownerHandler.GetByID)
			owners.PUT("/:id", ownerHandler.Update)
			owners.DELETE("/:id", ownerHandler.Delete)
		}

		businesses := api.Group("/businesses")
		{
			businesses.POST("", businessHandler.Create)
			businesses.GET("", businessHandler.GetAll)
			businesses.GET("/:id", businessHandler.GetByID)
			businesses.PUT("/:id", businessHandler.Update)
			businesses.DELETE("/:id", businessHandler.Delete)
		}

		staffs := api.Group("/staffs")
		{
			staffs.POST("", staffHandler.Register)
			staffs.POST("/login", staffHandler.Login)
			staffs.GET("/business/:business_id", staffHandler.GetByBusinessID)
			staffs.GET("/search", staffHandler.GetByNameAndBusinessID)
			staffs.GET("/:id", staffHandler.GetByID)
		}

		menuItemRoutes(api, "/foods", &handlers.MenuItemHandler{DB: db, Storage: storage, Kind: handlers.FoodKind})
		menuItemRoutes(api, "/fruits", &handlers.MenuItemHandler{DB: db, Storage: storage, Kind: handlers.FruitKind})
		menuItemRoutes(api, "/addons", &handlers.MenuItemHandler{DB: db, Storage: storage, Kind: handlers.AddonKind})
		menuItemRoutes(api, "/hotDrinks", &handlers.MenuItemHandler{DB: db, Storage: storage, Kind: handlers.HotDrinkKind})
		menuItemRoutes(api, "/softDrinks", &handlers.MenuItemHandler{DB: db, Storage: storage, Kind: handlers.SoftDrinkKind})

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.PlaceOrder)
			orders.GET("/business/:business_id", orderHandler.GetAllByBusinessID)
			orders.GET("/business/:business_id/today", orderHandler.GetByBusinessIDForToday)
			orders.GET("/business/:business_id/staff/:staff_id", orderHandler.GetByBusinessIDAndStaffID)
		}
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
