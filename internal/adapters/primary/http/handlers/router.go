package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ml-platform/internal/adapters/primary/http/middleware"
	"ml-platform/internal/adapters/primary/http/views"
)

// NewRouter assembles the gin engine: middleware, HTML templates, pages,
// the JSON API and the operational endpoints. metrics may be nil.
func NewRouter(h *Handler, metrics http.Handler) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())

	tmpl, err := views.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	h.RegisterPages(r)
	h.RegisterRoutes(r.Group("/api"))

	return r, nil
}
