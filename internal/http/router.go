// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"akshar/internal/ai"
	"akshar/internal/http/handlers"
	"akshar/internal/http/middleware"
)

type RouterDeps struct {
	Pipeline   handlers.Processor
	Translator handlers.Translator
	Routes     handlers.WaypointSource
	Places     handlers.PlaceSource
	Timeout    time.Duration
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery())

	routeHandler := handlers.NewRouteHandler(deps.Pipeline, deps.Translator, deps.Timeout)
	r.POST("/api/routes/text", routeHandler.FromText)
	r.POST("/api/routes/image", routeHandler.FromUpload)
	r.POST("/api/routes/camera", routeHandler.FromCamera)

	poiHandler := handlers.NewPOIHandler(deps.Routes, deps.Places)
	r.GET("/api/pois", poiHandler.Search)
	r.GET("/api/pois/categories", poiHandler.Categories)
	r.GET("/api/places/:id", poiHandler.Details)

	r.GET("/api/languages", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"languages": ai.SupportedLanguages})
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
