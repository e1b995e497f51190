package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultMaxJobBytes caps the size of a posted job.
const DefaultMaxJobBytes = 4 << 20

// Config tunes the API.
type Config struct {
	// MaxJobBytes caps a job body; 0 selects DefaultMaxJobBytes.
	MaxJobBytes int64
}

// NewRouter returns an engine with recovery and the API routes. Request
// logging is left to the caller.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	Register(r, cfg)
	return r
}

// Register mounts the routes on r.
func Register(r gin.IRouter, cfg Config) {
	if cfg.MaxJobBytes <= 0 {
		cfg.MaxJobBytes = DefaultMaxJobBytes
	}
	h := &handlers{cfg: cfg}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/angles/decode", h.decodeAngle)
		api.GET("/angles/encode", h.encodeAngle)
		api.GET("/geo/utm-zone", h.utmZone)
		api.POST("/geo/convert", h.convert)
		api.POST("/jobs", h.runJob)
	}
}
