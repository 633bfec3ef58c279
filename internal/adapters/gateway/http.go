package gateway

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/core"
	"github.com/safeguard/risk-filter/internal/service"
)

// HTTPGateway exposes the risk filter as a JSON API
type HTTPGateway struct {
	service    *service.MessageRiskService
	logger     *zap.Logger
	listenAddr string
	server     *http.Server
}

// NewHTTPGateway creates a new HTTP gateway
func NewHTTPGateway(svc *service.MessageRiskService, logger *zap.Logger, listenAddr string) *HTTPGateway {
	return &HTTPGateway{
		service:    svc,
		logger:     logger,
		listenAddr: listenAddr,
	}
}

type analyzeRequest struct {
	Message string `json:"message"`
}

type contentRequest struct {
	Content string `json:"content"`
}

type analyzeResponse struct {
	*core.RiskVerdict
	Message              string `json:"message"`
	TranslationAvailable bool   `json:"translation_available"`
}

// Router builds the gin engine. Exposed separately from Start so tests can
// drive the routes without a listening socket.
func (g *HTTPGateway) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), g.requestLogger())

	api := router.Group("/api")
	{
		api.POST("/analyze", g.handleAnalyze)
		api.POST("/detect-scam", g.handleDetectScam)
		api.POST("/detect-fake-news", g.handleDetectFakeNews)
		api.GET("/health", g.handleHealth)
	}

	return router
}

// Start starts the HTTP server
func (g *HTTPGateway) Start() error {
	g.server = &http.Server{
		Addr:         g.listenAddr,
		Handler:      g.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	g.logger.Info("HTTP gateway starting", zap.String("address", g.listenAddr))

	go func() {
		if err := g.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			g.logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server
func (g *HTTPGateway) Stop() error {
	if g.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return g.server.Shutdown(ctx)
}

func (g *HTTPGateway) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'message' in request body"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}

	verdict, err := g.service.AnalyzeMessage(c.Request.Context(), &core.Message{
		Body:   message,
		Source: "http",
	})
	if err != nil {
		switch {
		case errors.Is(err, core.ErrMessageTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message too short"})
		case errors.Is(err, core.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		default:
			g.logger.Error("Analysis failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "detail": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, analyzeResponse{
		RiskVerdict:          verdict,
		Message:              message,
		TranslationAvailable: verdict.TranslatedText != "",
	})
}

func (g *HTTPGateway) handleDetectScam(c *gin.Context) {
	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'content' in request body"})
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content cannot be empty"})
		return
	}

	report, err := g.service.DetectScam(req.Content)
	if err != nil {
		g.logger.Error("Scam detection failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (g *HTTPGateway) handleDetectFakeNews(c *gin.Context) {
	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'content' in request body"})
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content cannot be empty"})
		return
	}

	report, err := g.service.DetectFakeNews(req.Content)
	if err != nil {
		g.logger.Error("Fake-news detection failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (g *HTTPGateway) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "risk-filter"})
}

// requestLogger logs each request with its outcome
func (g *HTTPGateway) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		g.logger.Debug("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
