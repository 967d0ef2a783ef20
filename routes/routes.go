package routes

import (
	"time"

	"palmcove/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoomRoutes registers the read-only room catalog.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.ListRoomsHandler)
		api.GET("/:id", hb.GetRoomHandler)
	}
}

// RegisterContactRoutes registers the contact form endpoints. Both the
// singular and plural paths accept submissions.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/contact", hb.SubmitContactHandler)
		api.POST("/contacts", hb.SubmitContactHandler)
		api.GET("/contacts", hb.ListContactsHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	corsConfig := cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	RegisterHealthRoute(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
