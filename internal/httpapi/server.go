// Package httpapi exposes the chat pipeline and the admin catalog
// management surface over REST. Routes are grouped into the public
// chat widget endpoints (chatbot session token auth) and the admin
// endpoints (short-lived admin session tokens issued at login).
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campusflow/campus-assistant-go/internal/auth"
	"github.com/campusflow/campus-assistant-go/internal/bot"
	"github.com/campusflow/campus-assistant-go/internal/knowledge"
	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/metrics"
	"github.com/campusflow/campus-assistant-go/internal/ratelimit"
	"github.com/campusflow/campus-assistant-go/internal/storage"
)

// DefaultAdminSessionTTL bounds admin session token lifetime.
const DefaultAdminSessionTTL = 2 * time.Hour

// Config holds configuration for the HTTP API handler.
type Config struct {
	// AdminSessionTTL overrides the admin token lifetime. Zero uses
	// DefaultAdminSessionTTL.
	AdminSessionTTL time.Duration

	// MetricsUsername and MetricsPassword protect /metrics with HTTP
	// Basic Auth. An empty password leaves the endpoint open.
	MetricsUsername string
	MetricsPassword string

	// GlobalRateRPS caps requests per second across all API routes.
	// Zero disables the global limiter.
	GlobalRateRPS float64
}

// Handler wires the chat processor, auth service, and document store
// into gin routes.
type Handler struct {
	processor *bot.Processor
	auth      *auth.Service
	store     *storage.Store
	index     *knowledge.Index
	sessions  *adminSessions
	limiter   *ratelimit.Limiter
	logger    *logger.Logger
	metrics   *metrics.Metrics
	cfg       Config
}

// HandlerConfig holds the dependencies for creating a Handler.
type HandlerConfig struct {
	Processor *bot.Processor
	Auth      *auth.Service
	Store     *storage.Store
	Knowledge *knowledge.Index
	Logger    *logger.Logger
	Metrics   *metrics.Metrics
	Config    Config
}

// NewHandler creates the HTTP API handler.
func NewHandler(cfg HandlerConfig) *Handler {
	ttl := cfg.Config.AdminSessionTTL
	if ttl <= 0 {
		ttl = DefaultAdminSessionTTL
	}
	var limiter *ratelimit.Limiter
	if cfg.Config.GlobalRateRPS > 0 {
		limiter = ratelimit.New(cfg.Config.GlobalRateRPS, cfg.Config.GlobalRateRPS)
	}
	return &Handler{
		processor: cfg.Processor,
		auth:      cfg.Auth,
		store:     cfg.Store,
		index:     cfg.Knowledge,
		sessions:  newAdminSessions(ttl),
		limiter:   limiter,
		logger:    cfg.Logger.WithModule("httpapi"),
		metrics:   cfg.Metrics,
		cfg:       cfg.Config,
	}
}

// Routes registers all API routes on the router. The registry backs
// the /metrics endpoint.
func (h *Handler) Routes(router *gin.Engine, registry *prometheus.Registry) {
	router.GET("/healthz", h.handleHealthz)
	router.HEAD("/healthz", h.handleHealthz)

	metricsHandler := gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if h.cfg.MetricsPassword != "" {
		metricsGroup := router.Group("/metrics", gin.BasicAuth(gin.Accounts{
			h.cfg.MetricsUsername: h.cfg.MetricsPassword,
		}))
		metricsGroup.GET("", metricsHandler)
	} else {
		router.GET("/metrics", metricsHandler)
	}

	api := router.Group("/api", h.globalRateLimit())

	api.POST("/chatbot/login", h.handleChatLogin)
	api.GET("/chatbot/hint", h.handleChatHint)

	session := api.Group("", h.sessionAuth())
	session.POST("/chat", h.handleChat)
	session.POST("/feedback", h.handleFeedback)
	session.GET("/chats", h.handleListChats)
	session.GET("/chats/:id", h.handleLoadChat)
	session.POST("/chats", h.handleSaveChat)
	session.PUT("/chats/:id", h.handleRenameChat)
	session.DELETE("/chats/:id", h.handleDeleteChat)

	api.POST("/admin/login", h.handleAdminLogin)

	admin := api.Group("/admin", h.adminAuth())
	admin.POST("/logout", h.handleAdminLogout)
	admin.POST("/password", h.handleChangeAdminPassword)
	admin.POST("/chatbot-password", h.handleChangeChatPassword)

	admin.GET("/subjects", h.handleListSubjects)
	admin.POST("/subjects", h.handleAddSubject)
	admin.PUT("/subjects/:name", h.handleEditSubject)
	admin.DELETE("/subjects/:name", h.handleDeleteSubject)
	admin.POST("/subjects/:name/units", h.handleAddUnit)
	admin.PUT("/subjects/:name/units/:unit", h.handleEditUnit)
	admin.DELETE("/subjects/:name/units/:unit", h.handleDeleteUnit)

	admin.GET("/pyq", h.handleListPapers)
	admin.POST("/pyq", h.handleAddPaper)
	admin.PUT("/pyq/:id", h.handleEditPaper)
	admin.DELETE("/pyq/:id", h.handleDeletePaper)

	admin.GET("/info", h.handleListInfo)
	admin.POST("/info", h.handleAddInfoSection)
	admin.PUT("/info/:section", h.handleRenameInfoSection)
	admin.DELETE("/info/:section", h.handleDeleteInfoSection)
	admin.POST("/info/:section/items", h.handleAddInfoItem)
	admin.PUT("/info/:section/items/:item", h.handleEditInfoItem)
	admin.DELETE("/info/:section/items/:item", h.handleDeleteInfoItem)

	admin.GET("/knowledge", h.handleListKnowledge)
	admin.POST("/knowledge", h.handleAddKnowledge)
	admin.DELETE("/knowledge/:id", h.handleDeleteKnowledge)

	admin.GET("/synonyms", h.handleListSynonyms)
	admin.PUT("/synonyms", h.handleSaveSynonyms)

	admin.GET("/unanswered", h.handleListUnanswered)
	admin.DELETE("/unanswered", h.handleDeleteUnanswered)

	admin.GET("/feedback", h.handleListFeedback)
	admin.DELETE("/feedback", h.handleDeleteFeedback)

	admin.GET("/stats", h.handleStats)
}

func (h *Handler) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
