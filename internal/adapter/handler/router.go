package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetsum/meeting-summarizer/internal/infrastructure/http/middleware"
	"github.com/meetsum/meeting-summarizer/internal/usecase/auth"
	"github.com/meetsum/meeting-summarizer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	authService      auth.Service
	authHandler      *Auth
	meetingHandler   *Meeting
	actionHandler    *ActionItem
	analyticsHandler *Analytics
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, authService auth.Service, authHandler *Auth, meetingHandler *Meeting, actionHandler *ActionItem, analyticsHandler *Analytics) *Router {
	return &Router{
		cfg:              cfg,
		authService:      authService,
		authHandler:      authHandler,
		meetingHandler:   meetingHandler,
		actionHandler:    actionHandler,
		analyticsHandler: analyticsHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)

	authed := v1.Group("", middleware.EchoAuth(rt.authService))
	rt.setupMeetingRoutes(authed)
	rt.setupActionItemRoutes(authed)
	rt.setupAnalyticsRoutes(authed)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/dev-login", rt.authHandler.DevLogin)
	authGroup.GET("/me", rt.authHandler.Me, middleware.EchoAuth(rt.authService))
}

// setupMeetingRoutes configures meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")
	meetings.POST("/upload", rt.meetingHandler.Upload)
	meetings.GET("", rt.meetingHandler.List)
	meetings.GET("/:id", rt.meetingHandler.Get)
	meetings.GET("/:id/summary", rt.meetingHandler.GetSummary)
	meetings.GET("/:id/action-items", rt.meetingHandler.ListActionItems)
	meetings.POST("/:id/action-items", rt.meetingHandler.CreateActionItem)
}

// setupActionItemRoutes configures cross-meeting action item routes
func (rt *Router) setupActionItemRoutes(g *echo.Group) {
	items := g.Group("/action-items")
	items.GET("", rt.actionHandler.List)
	items.PUT("/:id", rt.actionHandler.Update)
	items.DELETE("/:id", rt.actionHandler.Delete)
}

// setupAnalyticsRoutes configures analytics routes
func (rt *Router) setupAnalyticsRoutes(g *echo.Group) {
	g.GET("/analytics", rt.analyticsHandler.Overview)
	g.GET("/analytics/dashboard", rt.analyticsHandler.Dashboard)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"service": "meeting-summarizer",
	})
}
