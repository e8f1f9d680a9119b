// Package api exposes the label engine over HTTP and WebSocket
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/warelabel/label-engine/config"
	"github.com/warelabel/label-engine/internal/metrics"
	"github.com/warelabel/label-engine/internal/render"
)

// Server is the API server
type Server struct {
	router    *gin.Engine
	generator *render.Generator
	cfg       config.Config
	log       zerolog.Logger
	upgrader  websocket.Upgrader
}

// NewServer creates a new API server
func NewServer(cfg config.Config, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(requestLogger(log))
	router.Use(metrics.PrometheusMiddleware())
	if cfg.Server.CORSEnabled {
		router.Use(corsMiddleware())
	}

	server := &Server{
		router:    router,
		generator: render.NewGenerator(render.WithCodec(codecFor(cfg.Engine.Codec))),
		cfg:       cfg,
		log:       log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins
			},
		},
	}

	server.setupRoutes()

	return server
}

// codecFor resolves the configured exact-tier codec
func codecFor(name string) render.Codec {
	if name == "image" {
		return render.ImageCodec{}
	}
	return render.PatternCodec{}
}

func (s *Server) setupRoutes() {
	s.router.POST("/generate", s.handleGenerate)
	s.router.POST("/readability", s.handleReadability)
	s.router.POST("/validate", s.handleValidate)
	s.router.POST("/optimize", s.handleOptimize)
	s.router.POST("/optimize/fields", s.handleOptimizeFields)
	s.router.GET("/presets", s.handleGetPresets)

	// Live preview
	s.router.GET("/ws", s.handleWebSocket)

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

// Run starts the HTTP server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests
func (s *Server) Router() http.Handler {
	return s.router
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("request_id", c.GetString("request_id")).
			Msg("request")
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
