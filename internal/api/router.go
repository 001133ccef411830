package api

import (
	"villa_api/internal/middleware" // JWT and admin middleware
	"villa_api/internal/repository" // Persistence layer

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Deps bundles everything the route tree needs
type Deps struct {
	Villas       repository.VillaRepository       // Villa repository
	VillaNumbers repository.VillaNumberRepository // Villa number repository
	Users        repository.UserRepository        // Auth service
	Redis        *redis.Client                    // Cache client, nil disables caching
	JWTSecret    string                           // Symmetric signing key
}

// SetupRoutes registers the full resource surface on the engine
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Auth routes
	auth := r.Group("/api/UsersAuth")
	auth.POST("/login", LoginHandler(deps.Users))       // Login endpoint
	auth.POST("/register", RegisterHandler(deps.Users)) // Registration endpoint

	// Villa routes, delete is gated on the admin role claim
	villa := r.Group("/api/Villa")
	villa.GET("", ListVillasHandler(deps.Villas, deps.Redis))        // List endpoint
	villa.GET("/:id", GetVillaHandler(deps.Villas, deps.Redis))      // Get-by-id endpoint
	villa.POST("", CreateVillaHandler(deps.Villas))                  // Create endpoint
	villa.PUT("/:id", UpdateVillaHandler(deps.Villas, deps.Redis))   // Full update endpoint
	villa.PATCH("/:id", PatchVillaHandler(deps.Villas, deps.Redis))  // Partial update endpoint
	villa.DELETE("/:id", middleware.JWTAuthMiddleware(deps.JWTSecret), middleware.AdminOnlyMiddleware(),
		DeleteVillaHandler(deps.Villas, deps.Redis)) // Delete endpoint, admin only

	// Villa number routes
	villaNumber := r.Group("/api/VillaNumber")
	villaNumber.GET("", ListVillaNumbersHandler(deps.VillaNumbers))                          // List endpoint
	villaNumber.GET("/:id", GetVillaNumberHandler(deps.VillaNumbers))                        // Get endpoint
	villaNumber.POST("", CreateVillaNumberHandler(deps.VillaNumbers, deps.Villas))           // Create endpoint
	villaNumber.PUT("/:id", UpdateVillaNumberHandler(deps.VillaNumbers, deps.Villas))        // Full update endpoint
	villaNumber.DELETE("/:id", DeleteVillaNumberHandler(deps.VillaNumbers))                  // Delete endpoint
}
