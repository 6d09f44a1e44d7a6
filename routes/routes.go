package routes

import (
	"net/http"
	"time"

	"harithakarmabhoomi/handlers"
	"harithakarmabhoomi/middleware"
	"harithakarmabhoomi/models"
	"harithakarmabhoomi/services/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public login/signup endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		api.Use(middleware.AuthMiddleware(userSvc))
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterUserRoutes registers the citizen dashboard endpoints. All of
// them require an authenticated session with the "user" role.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	api := r.Group("/api/user")
	api.Use(middleware.AuthMiddleware(userSvc))
	api.Use(middleware.RequireRole(models.RoleUser))
	{
		api.GET("/profile", hb.GetProfileHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)
		api.GET("/qr-code", hb.QRCodeHandler)

		api.POST("/bookings", hb.CreateBookingHandler)
		api.GET("/bookings", hb.ListMyBookingsHandler)
		api.POST("/bookings/voice/extract", hb.VoiceExtractHandler)
		api.POST("/bookings/voice/confirm", hb.VoiceConfirmHandler)
		api.POST("/bookings/contact/:channel", hb.ContactBookingHandler)

		api.POST("/complaints", hb.CreateComplaintHandler)
		api.GET("/complaints", hb.ListMyComplaintsHandler)

		api.POST("/exchanges", hb.CreateExchangeHandler)
		api.GET("/exchanges", hb.ListMyExchangesHandler)
		api.GET("/exchanges/rates", hb.GetRatesHandler)

		api.POST("/reports", hb.CreateReportHandler)
		api.GET("/reports", hb.ListMyReportsHandler)
	}
}

// RegisterAdminRoutes registers the administrative console endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	api := r.Group("/api/admin")
	api.Use(middleware.AuthMiddleware(userSvc))
	api.Use(middleware.RequireRole(models.RoleAdmin))
	{
		api.GET("/overview", hb.AdminHandler.OverviewHandler)
		api.GET("/users", hb.AdminHandler.GetAllUsersHandler)

		api.GET("/bookings", hb.AdminHandler.ListBookingsHandler)
		api.PUT("/bookings/:id/status", hb.AdminHandler.TransitionBookingHandler)

		api.GET("/complaints", hb.AdminHandler.ListComplaintsHandler)
		api.PUT("/complaints/:id/status", hb.AdminHandler.TransitionComplaintHandler)
		api.POST("/complaints/:id/respond", hb.AdminHandler.RespondComplaintHandler)

		api.GET("/exchanges", hb.AdminHandler.ListExchangesHandler)
		api.PUT("/exchanges/:id/status", hb.AdminHandler.TransitionExchangeHandler)
		api.PUT("/rates", hb.AdminHandler.SetRatesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm HarithaKarmabhoomi"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb, userSvc)
	RegisterUserRoutes(r, hb, userSvc)
	RegisterAdminRoutes(r, hb, userSvc)
	RegisterHealthRoute(r)
}
