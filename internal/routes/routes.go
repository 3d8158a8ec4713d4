package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edsonbastos2/salon-agenda/internal/config"
	"github.com/edsonbastos2/salon-agenda/internal/events"
	"github.com/edsonbastos2/salon-agenda/internal/handlers"
	infraRepo "github.com/edsonbastos2/salon-agenda/internal/infra/repository"
	"github.com/edsonbastos2/salon-agenda/internal/middleware"
	"github.com/edsonbastos2/salon-agenda/internal/models"
	ucAppointment "github.com/edsonbastos2/salon-agenda/internal/usecase/appointment"
	ucCatalog "github.com/edsonbastos2/salon-agenda/internal/usecase/catalog"
	ucReview "github.com/edsonbastos2/salon-agenda/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, dispatcher *events.Dispatcher) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	bookAppointmentUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		dispatcher,
	)

	createPrivateAppointmentUC := ucAppointment.NewCreatePrivateAppointment(
		appointmentRepo,
		dispatcher,
	)

	changeStatusUC := ucAppointment.NewChangeStatus(
		appointmentRepo,
		dispatcher,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// 🧠 USE CASES — CATALOG / REVIEWS
	// ======================================================
	deletionGuardUC := ucCatalog.NewDeletionGuard(catalogRepo)
	createReviewUC := ucReview.NewCreateReview(reviewRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, deletionGuardUC)
	professionalHandler := handlers.NewProfessionalHandler(db, deletionGuardUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createPrivateAppointmentUC,
		changeStatusUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	clientAppointmentHandler := handlers.NewClientAppointmentHandler(
		db,
		bookAppointmentUC,
		changeStatusUC,
		appointmentRepo,
	)

	reviewHandler := handlers.NewReviewHandler(createReviewUC)
	notificationHandler := handlers.NewNotificationHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	adminHandler := handlers.NewAdminHandler(db)

	publicHandler := handlers.NewPublicHandler(db, catalogRepo, getAvailabilityUC)

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
			publicAPI.GET("/salons", publicHandler.ListSalons)
			publicAPI.GET("/salons/:id", publicHandler.GetSalon)
			publicAPI.GET("/salons/:id/availability", publicHandler.Availability)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/notifications", notificationHandler.List)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// CLIENTE
			// ------------------------------
			client := secured.Group("/")
			client.Use(middleware.RequireRole(models.RoleClient))
			{
				client.POST("/appointments", clientAppointmentHandler.Book)
				client.GET("/appointments", clientAppointmentHandler.ListMine)
				client.PATCH("/appointments/:id/cancel", clientAppointmentHandler.Cancel)

				client.POST("/reviews", reviewHandler.Create)
			}

			// ------------------------------
			// DONO DO SALÃO
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireRole(models.RoleAdmin))
			{
				owner.POST("/me/salon", salonHandler.Create)
				owner.GET("/me/salon", salonHandler.GetMine)
				owner.PATCH("/me/salon", salonHandler.UpdateMine)
				owner.GET("/me/dashboard", salonHandler.Dashboard)

				owner.GET("/me/services", serviceHandler.List)
				owner.POST("/me/services", serviceHandler.Create)
				owner.PATCH("/me/services/:id", serviceHandler.Update)
				owner.GET("/me/services/:id/can-delete", serviceHandler.CanDelete)
				owner.DELETE("/me/services/:id", serviceHandler.Delete)
				owner.PATCH("/me/services/:id/deactivate", serviceHandler.Deactivate)

				owner.GET("/me/professionals", professionalHandler.List)
				owner.POST("/me/professionals", professionalHandler.Create)
				owner.PATCH("/me/professionals/:id", professionalHandler.Update)
				owner.GET("/me/professionals/:id/can-delete", professionalHandler.CanDelete)
				owner.DELETE("/me/professionals/:id", professionalHandler.Delete)
				owner.PATCH("/me/professionals/:id/deactivate", professionalHandler.Deactivate)

				// ------------------------------
				// APPOINTMENTS
				// ------------------------------
				owner.POST("/me/appointments", appointmentHandler.Create)
				owner.GET("/me/appointments", appointmentHandler.ListByDate)
				owner.GET("/me/appointments/month", appointmentHandler.ListByMonth)
				owner.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
				owner.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
				owner.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

				owner.GET("/me/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// SUPER ADMIN (plataforma)
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleSuperAdmin))
			{
				admin.GET("/salons", adminHandler.ListSalons)
				admin.PATCH("/salons/:id/deactivate", adminHandler.DeactivateSalon)
				admin.PATCH("/salons/:id/activate", adminHandler.ActivateSalon)

				admin.GET("/audit-logs", auditLogsHandler.ListAll)
			}
		}
	}
}
