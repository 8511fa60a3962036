package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AnarosBeauty/salon-scheduler/internal/audit"
	"github.com/AnarosBeauty/salon-scheduler/internal/cache"
	"github.com/AnarosBeauty/salon-scheduler/internal/config"
	"github.com/AnarosBeauty/salon-scheduler/internal/handlers"
	infraRepo "github.com/AnarosBeauty/salon-scheduler/internal/infra/repository"
	"github.com/AnarosBeauty/salon-scheduler/internal/middleware"
	ucAppointment "github.com/AnarosBeauty/salon-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	scheduleCache := cache.NewScheduleCache(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		scheduleCache,
		cfg.Timezone,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
		scheduleCache,
		cfg.Timezone,
	)

	listCalendarUC := ucAppointment.NewListCalendarEvents(appointmentRepo)
	dayScheduleUC := ucAppointment.NewDaySchedule(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	profileHandler := handlers.NewProfileHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	catalogHandler := handlers.NewCatalogHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		listCalendarUC,
		cfg.Timezone,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		dayScheduleUC,
		scheduleCache,
		cfg.Timezone,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVÉE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// CLIENTES (accueil et admin)
			// ------------------------------
			clients := secured.Group("/clients", middleware.RequireFrontDesk())
			{
				clients.GET("", clientHandler.List)
				clients.GET("/:id", clientHandler.Get)
				clients.POST("", clientHandler.Create)
				clients.PATCH("/:id", clientHandler.Update)
			}

			// ------------------------------
			// PROFILS & COMPÉTENCES
			// ------------------------------
			secured.GET("/profiles", profileHandler.List)
			secured.GET("/profiles/:id", profileHandler.Get)
			secured.GET("/profiles/:id/services", profileHandler.ListServices)

			adminProfiles := secured.Group("/profiles", middleware.RequireAdmin())
			{
				adminProfiles.POST("", profileHandler.Create)
				adminProfiles.PATCH("/:id", profileHandler.Update)
				adminProfiles.PUT("/:id/skills", profileHandler.ReplaceSkills)
			}

			// ------------------------------
			// CATALOGUE
			// ------------------------------
			secured.GET("/categories", catalogHandler.ListCategories)
			secured.GET("/services", catalogHandler.ListServices)

			adminCatalog := secured.Group("/", middleware.RequireAdmin())
			{
				adminCatalog.POST("/categories", catalogHandler.CreateCategory)
				adminCatalog.DELETE("/categories/:id", catalogHandler.DeleteCategory)
				adminCatalog.POST("/services", catalogHandler.CreateService)
				adminCatalog.PATCH("/services/:id", catalogHandler.UpdateService)
			}

			// ------------------------------
			// RENDEZ-VOUS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListCalendar)
			secured.POST("/appointments", middleware.RequireFrontDesk(), appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Patch)

			secured.GET("/schedule", scheduleHandler.GetDay)

			// ------------------------------
			// AUDIT
			// ------------------------------
			secured.GET("/audit-logs", middleware.RequireAdmin(), auditLogsHandler.List)
		}
	}
}
