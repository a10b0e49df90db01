package routes

import (
	"net/http"
	"time"

	"ecoskip/handlers"
	"ecoskip/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and current-user endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.UserHandler.RegisterHandler)
		api.POST("/login", hb.UserHandler.LoginHandler)
		api.GET("/me", middleware.JWTAuthMiddleware(), hb.UserHandler.MeHandler)
	}
}

// RegisterBookingRoutes registers the persisted booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.BookingHandler.CreateBookingHandler)
		api.GET("", hb.BookingHandler.ListBookingsHandler)
		api.GET("/:id", hb.BookingHandler.GetBookingHandler)
	}
}

// RegisterSessionRoutes registers the booking wizard. Only submit needs a token.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	h := hb.SessionHandler
	api := r.Group("/api/booking-sessions")
	{
		api.POST("", h.CreateSessionHandler)
		api.GET("/:id", h.GetSessionHandler)
		api.DELETE("/:id", h.CancelSessionHandler)
		api.PUT("/:id/address", h.SetAddressHandler)
		api.POST("/:id/waste-types/:type", h.ToggleWasteTypeHandler)
		api.GET("/:id/skips", h.SkipOptionsHandler)
		api.PUT("/:id/skip", h.SelectSkipHandler)
		api.PUT("/:id/placement", h.SetPlacementHandler)
		api.PUT("/:id/delivery-date", h.SelectDeliveryDateHandler)
		api.DELETE("/:id/charges/:charge", h.RemoveChargeHandler)
		api.POST("/:id/continue", h.ContinueHandler)
		api.POST("/:id/back", h.BackHandler)
		api.POST("/:id/reset", h.ResetHandler)
		api.GET("/:id/calendar", h.CalendarHandler)
		api.POST("/:id/submit", middleware.JWTAuthMiddleware(), h.SubmitSessionHandler)
	}
}

// RegisterCatalogRoutes registers the public skip and waste type listings.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/skips", hb.CatalogHandler.GetSkipsHandler)
	r.GET("/api/waste-types", hb.CatalogHandler.GetWasteTypesHandler)
}

func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.ContactHandler.SubmitContactHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.HealthHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware(hb.Users))
		adminGroup.GET("/bookings", hb.AdminHandler.GetAllBookingsHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	if hb.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(hb.Metrics))
		r.GET("/metrics", gin.WrapH(hb.Metrics.Handler()))
	}

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterAdminRoutes(r, hb)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
}
