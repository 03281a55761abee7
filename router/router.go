package router

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cleanease/cleanease-api/controllers"
	"github.com/cleanease/cleanease-api/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// ErrorHandler is registered first so it wraps everything downstream,
	// including the auth middlewares.
	r.Use(middlewares.ErrorHandler())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	userCtrl := controllers.NewUserController(db)
	serviceCtrl := controllers.NewServiceController(db)
	bookingCtrl := controllers.NewBookingController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Catalog browsing needs no session.
	r.GET("/services", serviceCtrl.GetAllServices)
	r.GET("/services/:service_id", serviceCtrl.GetServiceByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		auth.GET("/bookings", bookingCtrl.GetAllBookings)
		auth.POST("/bookings", bookingCtrl.CreateBooking)
		auth.GET("/bookings/:booking_id", bookingCtrl.GetBookingByID)
		auth.PUT("/bookings/:booking_id", bookingCtrl.UpdateBooking)
		auth.DELETE("/bookings/:booking_id", bookingCtrl.DeleteBooking)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/")
	admin.Use(middlewares.AdminAuthMiddleware())
	{
		admin.POST("/services", serviceCtrl.CreateService)
		admin.PUT("/services/:service_id", serviceCtrl.UpdateService)
		admin.DELETE("/services/:service_id", serviceCtrl.DeleteService)
	}

	return r
}
