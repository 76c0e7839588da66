package routes

import (
	"net/http"
	"time"

	userRepo "parkwise/database/repository/user"
	"parkwise/handlers"
	"parkwise/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Deps bundles everything route registration needs.
type Deps struct {
	Auth      *handlers.AuthHandler
	Parking   *handlers.ParkingHandler
	UserRepo  userRepo.UserRepository
	AuthCache *redis.Client
}

// RegisterRoutes wires up CORS and all endpoint groups.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	// The web frontend is served from localhost:3000 during development.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, deps)
	RegisterParkingRoutes(r, deps)
}

// RegisterAuthRoutes registers authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/auth")
	{
		api.POST("/login", deps.Auth.Login)
	}
}

// RegisterParkingRoutes registers the parking endpoints. Lookups and
// predictions are public; mutating the ledger requires a session token.
func RegisterParkingRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/parking")
	{
		api.POST("/get_parking_slots", deps.Parking.GetParkingSlots)
		api.POST("/predict_parking_availability", deps.Parking.PredictParkingAvailability)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(deps.UserRepo, deps.AuthCache))
		api.POST("/book_parking", deps.Parking.BookParking)
		api.POST("/cancel_booking", deps.Parking.CancelBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Smart Parking System API is running!"})
	})
}
