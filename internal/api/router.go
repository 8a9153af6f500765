package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/medisync/healthcare-portal/docs"
	"github.com/medisync/healthcare-portal/internal/api/handler"
	"github.com/medisync/healthcare-portal/internal/api/middleware"
	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
	"github.com/medisync/healthcare-portal/internal/core/service"
	"github.com/medisync/healthcare-portal/internal/infrastructure/backend"
	"github.com/medisync/healthcare-portal/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when sessions are held in memory.
func NewRouter(
	cfg *config.Config,
	store ports.SessionStore,
	rdb *redis.Client,
	client *backend.Client,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	authService := service.NewAuthService(backend.NewAuthClient(client), store, log)
	codec := middleware.NewCookieCodec(cfg.Session.Cookie, cfg.Session.Secret, cfg.Session.TTL)

	users := backend.NewUsersClient(client)
	patients := backend.NewPatientsClient(client)
	doctors := backend.NewDoctorsClient(client)
	appointments := backend.NewAppointmentsClient(client)
	records := backend.NewRecordsClient(client)
	reports := backend.NewAdminClient(client)

	authHandler := handler.NewAuthHandler(authService, codec, log)
	adminHandler := handler.NewAdminHandler(reports, users, patients, doctors, appointments, log)
	doctorHandler := handler.NewDoctorHandler(appointments, patients, records, log)
	patientHandler := handler.NewPatientHandler(appointments, doctors, records, log)

	e.Use(middleware.Session(authService, codec))

	// --- Auth routes ---
	loginLimiter := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(cfg.Login.Rate),
			Burst: cfg.Login.Burst,
		}),
	})

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/login")
	})
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login, loginLimiter)
	e.POST("/logout", authHandler.Logout)

	// --- Admin routes ---
	admin := e.Group("/admin", middleware.Guard(domain.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/users", adminHandler.Users)
	admin.POST("/users", adminHandler.CreateUser)
	admin.POST("/users/admin", adminHandler.CreateAdmin)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.PUT("/users/:id/deactivate", adminHandler.DeactivateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/patients", adminHandler.Patients)
	admin.POST("/patients", adminHandler.CreatePatient)
	admin.PUT("/patients/:id", adminHandler.UpdatePatient)
	admin.DELETE("/patients/:id", adminHandler.DeletePatient)
	admin.GET("/doctors", adminHandler.Doctors)
	admin.POST("/doctors", adminHandler.CreateDoctor)
	admin.PUT("/doctors/:id", adminHandler.UpdateDoctor)
	admin.DELETE("/doctors/:id", adminHandler.DeleteDoctor)
	admin.GET("/appointments", adminHandler.Appointments)
	admin.POST("/appointments", adminHandler.CreateAppointment)
	admin.PUT("/appointments/:id", adminHandler.UpdateAppointment)
	admin.PUT("/appointments/:id/status", adminHandler.UpdateAppointmentStatus)
	admin.DELETE("/appointments/:id", adminHandler.DeleteAppointment)

	// --- Doctor routes (admins may look in) ---
	doctor := e.Group("/doctor", middleware.Guard(domain.RoleDoctor, domain.RoleAdmin))
	doctor.GET("/dashboard", doctorHandler.Dashboard)
	doctor.GET("/appointments", doctorHandler.Appointments)
	doctor.PUT("/appointments/:id/status", doctorHandler.UpdateAppointmentStatus)
	doctor.PUT("/appointments/:id/notes", doctorHandler.UpdateAppointmentNotes)
	doctor.GET("/patients", doctorHandler.Patients)
	doctor.POST("/patients/records", doctorHandler.CreateRecord)

	// --- Patient routes (admins may look in) ---
	patient := e.Group("/patient", middleware.Guard(domain.RolePatient, domain.RoleAdmin))
	patient.GET("/dashboard", patientHandler.Dashboard)
	patient.GET("/book-appointment", patientHandler.BookAppointmentPage)
	patient.POST("/book-appointment", patientHandler.BookAppointment)
	patient.PUT("/appointments/:id/cancel", patientHandler.CancelAppointment)
	patient.GET("/medical-history", patientHandler.MedicalHistory)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb, client)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
