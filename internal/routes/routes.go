package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SaborReal/restaurant-manager/internal/audit"
	"github.com/SaborReal/restaurant-manager/internal/cache"
	"github.com/SaborReal/restaurant-manager/internal/config"
	"github.com/SaborReal/restaurant-manager/internal/handlers"
	infraRepo "github.com/SaborReal/restaurant-manager/internal/infra/repository"
	"github.com/SaborReal/restaurant-manager/internal/middleware"
	"github.com/SaborReal/restaurant-manager/internal/storage"
	ucReservation "github.com/SaborReal/restaurant-manager/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availCache := cache.NewAvailability(cache.NewClient(cfg))
	uploader := storage.NewUploader(cfg)

	// ======================================================
	// 🧠 USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
		availCache,
	)

	updateStatusUC := ucReservation.NewUpdateReservationStatus(
		reservationRepo,
		auditDispatcher,
		availCache,
	)

	deleteReservationUC := ucReservation.NewDeleteReservation(
		reservationRepo,
		auditDispatcher,
		availCache,
	)

	listByDateUC := ucReservation.NewListReservationsByDate(
		reservationRepo,
	)

	listByMonthUC := ucReservation.NewListReservationsByMonth(
		reservationRepo,
	)

	listMineUC := ucReservation.NewListMyReservations(
		reservationRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(db, cfg, availCache)
	menuItemHandler := handlers.NewMenuItemHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		listMineUC,
	)

	adminReservationHandler := handlers.NewAdminReservationHandler(
		listByDateUC,
		listByMonthUC,
		updateStatusUC,
		deleteReservationUC,
	)

	dailyLunchHandler := handlers.NewDailyLunchHandler(db, uploader, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/menu", publicHandler.ListMenu)
			publicAPI.GET("/menu/daily-lunch", publicHandler.GetDailyLunch)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/orders/whatsapp", publicHandler.WhatsAppOrder)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (cliente)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/reservations", reservationHandler.ListMine)
			secured.POST("/me/reservations", reservationHandler.Create)
		}

		// ------------------------------
		// 👑 ADMIN
		// ------------------------------
		adminAPI := api.Group("/admin")
		adminAPI.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
		{
			adminAPI.GET("/reservations", adminReservationHandler.List)
			adminAPI.PATCH("/reservations/:id/status", adminReservationHandler.UpdateStatus)
			adminAPI.DELETE("/reservations/:id", adminReservationHandler.Delete)

			adminAPI.GET("/menu-items", menuItemHandler.List)
			adminAPI.POST("/menu-items", menuItemHandler.Create)
			adminAPI.PATCH("/menu-items/:id", menuItemHandler.Update)
			adminAPI.DELETE("/menu-items/:id", menuItemHandler.Delete)

			adminAPI.POST("/daily-lunch", dailyLunchHandler.Upload)

			adminAPI.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
