package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a JSON 500 instead of gin's default plain
// text response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"path", c.Request.URL.Path,
					"panic", rec,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "server_error",
				})
			}
		}()
		c.Next()
	}
}
