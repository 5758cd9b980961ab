// README: Logging middleware.
package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logging logs one line per request with the request ID, status and latency.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s %d %s id=%s",
			c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start), c.GetString(RequestIDKey))
	}
}
