package httpapi

import (
	"net/http"
	"strings"

	"github.com/fidelisagboli/tropicinfusions/internal/config"
	"github.com/fidelisagboli/tropicinfusions/internal/httpapi/handlers"
	"github.com/fidelisagboli/tropicinfusions/internal/httpapi/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

func NewRouter(cfg config.Config, h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// Credentialed CORS: cookies must survive cross-origin calls from the
	// storefront, so origins are echoed rather than wildcarded.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	_ = r.SetTrustedProxies([]string{"127.0.0.1"})

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method_not_allowed"})
	})

	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/prompt", h.GetPrompt)
	api.POST("/prompt", h.UpdatePrompt)
	api.POST("/chat", h.Chat)

	// Everything else is the static storefront.
	site := http.FileServer(http.Dir(cfg.SiteDir))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		site.ServeHTTP(c.Writer, c.Request)
	})

	return r
}
