package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	announcementapp "schoolhub/internal/application/announcement"
	"schoolhub/internal/infrastructure/config"
	"schoolhub/internal/infrastructure/repository"
	"schoolhub/internal/interfaces/http/handlers"
	"schoolhub/internal/interfaces/http/middleware"
	"schoolhub/internal/shared/logger"
	"schoolhub/internal/shared/services/markdown"

	_ "schoolhub/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	engine              *gin.Engine
	announcementHandler *handlers.AnnouncementHandler
	healthHandler       *handlers.HealthHandler
	teacherAuth         gin.HandlerFunc
	rateLimiter         *middleware.RateLimiter
	cfg                 *config.Config
	logger              logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	announcementRepo := repository.NewAnnouncementRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	markdownService := markdown.NewService()

	announcementService := announcementapp.NewService(announcementRepo, teacherRepo, markdownService, log)

	announcementHandler := handlers.NewAnnouncementHandler(announcementService, log)
	healthHandler := handlers.NewHealthHandler(db, log)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(
			redisClient,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
	}

	return &Router{
		engine:              engine,
		announcementHandler: announcementHandler,
		healthHandler:       healthHandler,
		teacherAuth:         middleware.TeacherAuth(teacherRepo, log),
		rateLimiter:         rateLimiter,
		cfg:                 cfg,
		logger:              log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	// Writes get rate limited; reads stay cheap enough to leave open
	writeLimit := func(c *gin.Context) { c.Next() }
	if r.rateLimiter != nil {
		writeLimit = r.rateLimiter.Limit()
	}

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", r.healthHandler.HealthCheck)

	announcements := r.engine.Group("/announcements")
	{
		// Active listing is the public school portal feed
		announcements.GET("/active", r.announcementHandler.ListActive)

		// Create authorizes created_by inside the use case since the
		// identity travels in the request body
		announcements.POST("", writeLimit, r.announcementHandler.Create)

		announcements.GET("", r.teacherAuth, r.announcementHandler.ListAll)
		announcements.PUT("/:id", writeLimit, r.teacherAuth, r.announcementHandler.Update)
		announcements.DELETE("/:id", writeLimit, r.teacherAuth, r.announcementHandler.Delete)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
