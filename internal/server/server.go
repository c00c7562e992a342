// Package server assembles the HTTP stack: services, handlers, middleware
// and routes.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"sosio/internal/config"
	_ "sosio/internal/docs" // swagger docs
	"sosio/internal/handlers"
	"sosio/internal/logger"
	"sosio/internal/metrics"
	"sosio/internal/middleware"
	"sosio/internal/services"
)

// Server owns the router and the background resources behind it.
type Server struct {
	router  *gin.Engine
	limiter *middleware.RateLimiter
}

// New wires every route against db. Metrics are registered with reg.
func New(cfg *config.Config, db *gorm.DB, reg *prometheus.Registry) *Server {
	// Services
	memberService := services.NewMemberService(db, services.WithLegacyPasswords(cfg.LegacyPlaintextPasswords))
	dashboardService := services.NewDashboardService(db)
	loanService := services.NewLoanService(db)
	investmentService := services.NewInvestmentService(db)
	historyService := services.NewHistoryService(db)
	auditService := services.NewAuditService(db)

	collector := metrics.NewCollector(reg)

	// Handlers
	authHandler := handlers.NewAuthHandler(memberService, auditService, collector)
	memberHandler := handlers.NewMemberHandler(memberService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	loanHandler := handlers.NewLoanHandler(loanService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	historyHandler := handlers.NewHistoryHandler(historyService)

	limiter := middleware.NewRateLimiter(middleware.LoginRateLimiterConfig(cfg.LoginRatePerMinute))

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Get().Warnw("invalid trusted proxies, trusting none", "proxies", cfg.TrustedProxies, "error", err)
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(collector.Middleware())
	router.Use(middleware.CORS(cfg.CORSOrigin))
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler(reg)))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/login", limiter.Middleware(), authHandler.Login)

	api := router.Group("/api")
	api.Use(middleware.RequireMemberAccess("userId"))
	api.GET("/user/:userId", memberHandler.GetUser)
	api.GET("/dashboard/:userId", dashboardHandler.GetDashboard)
	api.GET("/loans/:userId", loanHandler.GetLoans)
	api.GET("/investments/:userId", investmentHandler.GetInvestments)
	api.GET("/history/:userId", historyHandler.GetHistory)
	api.GET("/history/:userId/export", historyHandler.ExportHistory)

	return &Server{router: router, limiter: limiter}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() *gin.Engine {
	return s.router
}

// Close releases background resources.
func (s *Server) Close() {
	s.limiter.Stop()
}
