package http

import (
	"net/http"

	"hospital-booking-service/internal/delivery/http/handler"
	"hospital-booking-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	healthHandler         *handler.HealthHandler
	doctorHandler         *handler.DoctorHandler
	doctorScheduleHandler *handler.DoctorScheduleHandler
	slotHandler           *handler.SlotHandler
	appointmentHandler    *handler.AppointmentHandler
	patientHandler        *handler.PatientHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	healthHandler *handler.HealthHandler,
	doctorHandler *handler.DoctorHandler,
	doctorScheduleHandler *handler.DoctorScheduleHandler,
	slotHandler *handler.SlotHandler,
	appointmentHandler *handler.AppointmentHandler,
	patientHandler *handler.PatientHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		healthHandler:         healthHandler,
		doctorHandler:         doctorHandler,
		doctorScheduleHandler: doctorScheduleHandler,
		slotHandler:           slotHandler,
		appointmentHandler:    appointmentHandler,
		patientHandler:        patientHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public booking surface: everything a visitor needs to pick and
	// book a slot, no account required.
	api.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/schedules", r.doctorScheduleHandler.ListForDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/slots", r.doctorScheduleHandler.AvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/check-slot", r.slotHandler.CheckSlot).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{id}/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)

	// Patient lookup and registration (public, keyed by phone number)
	api.HandleFunc("/patients/check", r.patientHandler.Check).Methods(http.MethodGet)
	api.HandleFunc("/patients/register", r.patientHandler.Register).Methods(http.MethodPost)

	// Admin routes (protected - staff)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireStaff)

	// Doctor management
	admin.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)

	// Schedule management
	admin.HandleFunc("/schedules", r.doctorScheduleHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/schedules/{id}", r.doctorScheduleHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/schedules/{id}", r.doctorScheduleHandler.Delete).Methods(http.MethodDelete)

	// Appointment management
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)

	// Admin-only routes
	adminOnly := api.PathPrefix("/admin").Subrouter()
	adminOnly.Use(r.authMiddleware.Authenticate)
	adminOnly.Use(middleware.RequireAdmin)
	adminOnly.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)
	adminOnly.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	adminOnly.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
