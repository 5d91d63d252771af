package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/zaidJawa/salon/internal/cache"
	"github.com/zaidJawa/salon/internal/config"
	"github.com/zaidJawa/salon/internal/handlers"
	infraRepo "github.com/zaidJawa/salon/internal/infra/repository"
	"github.com/zaidJawa/salon/internal/middleware"
	"github.com/zaidJawa/salon/internal/models"
	ucBooking "github.com/zaidJawa/salon/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	salonCache *cache.SalonCache,
	logger zerolog.Logger,
) {

	// ------------------------------
	// Infra + use cases
	// ------------------------------
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg, logger)
	userHandler := handlers.NewUserHandler(db)
	salonHandler := handlers.NewSalonHandler(db, salonCache, logger)
	serviceHandler := handlers.NewServiceHandler(db)
	bookingHandler := handlers.NewBookingHandler(db, createBookingUC, logger)

	adminOnly := middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin)

	api := r.Group("/api")
	{
		// ------------------------------
		// Auth
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// Users
			// ------------------------------
			secured.PATCH("/user/:userId", adminOnly, userHandler.Update)

			// ------------------------------
			// Beauty salons
			// ------------------------------
			secured.GET("/beautysalons", salonHandler.List)
			secured.POST("/beautysalons", adminOnly, salonHandler.Create)
			secured.GET("/beautysalons/:id", salonHandler.Get)
			secured.PATCH("/beautysalons/:id", adminOnly, salonHandler.Update)
			secured.DELETE("/beautysalons/:id", adminOnly, salonHandler.Delete)

			// ------------------------------
			// Services
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", adminOnly, serviceHandler.Create)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PATCH("/services/:id", adminOnly, serviceHandler.Update)
			secured.DELETE("/services/:id", adminOnly, serviceHandler.Delete)

			// ------------------------------
			// Bookings
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/search", bookingHandler.Search)
			secured.GET("/bookings/pdf", bookingHandler.PDF)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id", adminOnly, bookingHandler.Update)
			secured.DELETE("/bookings/:id", adminOnly, bookingHandler.Delete)
		}
	}
}
