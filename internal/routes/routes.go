package routes

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/lumiere-salon/salon-scheduler/internal/audit"
	"github.com/lumiere-salon/salon-scheduler/internal/backup"
	"github.com/lumiere-salon/salon-scheduler/internal/config"
	"github.com/lumiere-salon/salon-scheduler/internal/handlers"
	infraRepo "github.com/lumiere-salon/salon-scheduler/internal/infra/repository"
	"github.com/lumiere-salon/salon-scheduler/internal/media"
	"github.com/lumiere-salon/salon-scheduler/internal/middleware"
	ucBooking "github.com/lumiere-salon/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	backupMgr *backup.Manager,
	mediaStore *media.Store,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Println("REDIS_URL inválida, rate limiting desativado:", err)
		} else {
			rdb = redis.NewClient(opts)
		}
	}

	apiLimiter := middleware.NewRateLimiter(rdb, 100, 15*time.Minute, "rl:api")
	loginLimiter := middleware.NewRateLimiter(rdb, 10, 15*time.Minute, "rl:login")

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo)

	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	updateStatusUC := ucBooking.NewUpdateStatus(
		bookingRepo,
		auditDispatcher,
	)

	rescheduleUC := ucBooking.NewReschedule(
		bookingRepo,
		auditDispatcher,
	)

	registerPaymentUC := ucBooking.NewRegisterPayment(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(createBookingUC, availabilityUC)
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		updateStatusUC,
		rescheduleUC,
		registerPaymentUC,
	)

	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	messageHandler := handlers.NewMessageHandler(db, auditDispatcher)
	statsHandler := handlers.NewStatsHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	backupHandler := handlers.NewBackupHandler(backupMgr, auditDispatcher)
	uploadHandler := handlers.NewUploadHandler(mediaStore)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(apiLimiter.Handler())
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/availability", publicHandler.Availability)
		api.POST("/appointments", publicHandler.CreateAppointment)
		api.GET("/services", serviceHandler.List)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/login", loginLimiter.Handler(), authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.GetMe)
			secured.POST("/auth/change-password", authHandler.ChangePassword)

			secured.GET("/admin/appointments", appointmentHandler.List)
			secured.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PUT("/appointments/:id", appointmentHandler.RegisterPayment)
			secured.PUT("/appointments/:id/reschedule", appointmentHandler.Reschedule)

			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/:id/history", clientHandler.History)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/messages", messageHandler.List)
			secured.POST("/messages", messageHandler.Create)

			secured.GET("/stats", statsHandler.Stats)
			secured.GET("/reports", statsHandler.Reports)

			secured.POST("/admin/upload", uploadHandler.Upload)

			// ------------------------------
			// 👑 SOMENTE ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/users", userHandler.List)
				admin.POST("/users", userHandler.Create)
				admin.PUT("/users/:id", userHandler.Update)
				admin.DELETE("/users/:id", userHandler.Delete)

				admin.POST("/backup/create", backupHandler.Create)
				admin.GET("/backup/list", backupHandler.List)

				admin.GET("/admin/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
