package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OilLobbyist/silver-tracker/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(handler *handlers.StackHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/api/price", handler.Price)
	r.GET("/api/stack", handler.GetStack)
	r.POST("/api/stack/import", handler.ImportStack)
	r.POST("/api/stack/items", handler.AddItem)
	r.PUT("/api/stack", handler.ReplaceStack)
	r.GET("/api/stack/report", handler.Report)
	r.GET("/api/stack/export", handler.ExportStack)
	r.GET("/api/stack/sample", handler.SampleCSV)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
