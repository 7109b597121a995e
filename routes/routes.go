package routes

import (
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/eventlottery/eventlottery-backend/config"
	"github.com/eventlottery/eventlottery-backend/internal/auditlog"
	"github.com/eventlottery/eventlottery-backend/internal/event"
	"github.com/eventlottery/eventlottery-backend/internal/notification"
	"github.com/eventlottery/eventlottery-backend/internal/reports"
	"github.com/eventlottery/eventlottery-backend/internal/userrole"
	"github.com/eventlottery/eventlottery-backend/middleware"

	_ "github.com/eventlottery/eventlottery-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the external clients the routes are built on. Any of
// them may be nil; each module falls back to its local or disabled variant.
type Dependencies struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Firestore *firestore.Client
	Notifier  notification.Publisher
}

var errFirebaseDown = errors.New("firebase not initialized")

// CORS builds the CORS middleware for the configured origins
func CORS(cfg *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.DeviceIDHeader, "Content-Length", "X-Requested-With", "Cache-Control"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func Setup(r *gin.Engine, cfg *config.Config, deps Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter(middleware.NewLimiterStore(deps.Redis), cfg.RateLimitPerMinute))
	api.Use(middleware.DeviceIdentity())
	api.Use(middleware.AuditMiddleware()) // Audit middleware to capture IP

	// ========== Audit Log ==========
	var auditSvc auditlog.Service
	if deps.DB != nil {
		auditSvc = auditlog.NewService(auditlog.NewRepository(deps.DB))
	}

	// ========== Roles ==========
	var store userrole.Store = userrole.UnavailableStore{Err: errFirebaseDown}
	if deps.Firestore != nil {
		store = userrole.NewFirestoreStore(deps.Firestore, cfg.UsersCollection)
	}
	roleSvc := userrole.NewService(store, auditSvc, deps.Notifier, cfg.RoleFetchTimeout)
	roleHandler := userrole.NewHandler(roleSvc)

	api.GET("/me/role", roleHandler.GetMyRole)
	api.POST("/me/promote", roleHandler.PromoteMe)
	api.GET("/route", roleHandler.RouteRole)

	// ========== Events ==========
	var forms event.FormStore = event.NewMemoryFormStore(cfg.FormTTL)
	if deps.Redis != nil {
		forms = event.NewRedisFormStore(deps.Redis, cfg.FormTTL)
	}
	eventSvc := event.NewService(forms, auditSvc, cfg.QRBaseURL)
	eventHandler := event.NewHandler(eventSvc)

	eventRoutes := api.Group("/events")
	{
		eventRoutes.POST("/forms", eventHandler.OpenForm)
		eventRoutes.POST("/forms/:id/submit", eventHandler.SubmitForm)
		eventRoutes.POST("/submit", eventHandler.Submit)
		eventRoutes.POST("/qr-link", eventHandler.GenerateQRLink)
	}

	// ========== Admin (audit trail + reports) ==========
	if auditSvc == nil {
		return
	}
	auditHandler := auditlog.NewHandler(auditSvc)
	reportHandler := reports.NewHandler(reports.NewReportService(auditSvc, reports.NewReportExporter()))

	admin := api.Group("/admin")
	admin.Use(userrole.RequireRole(roleSvc, userrole.RoleAdmin))
	{
		admin.GET("/auditlogs", auditHandler.GetAuditLogs)
		admin.GET("/auditlogs/:id", auditHandler.GetAuditLogByID)
		admin.GET("/reports/audit-logs", reportHandler.GetAuditLogsReport)
	}
}
