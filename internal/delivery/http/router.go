package http

import (
	"net/http"

	"medcare-booking/internal/delivery/http/handler"
	"medcare-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	doctorHandler        *handler.DoctorHandler
	appointmentHandler   *handler.AppointmentHandler
	dashboardHandler     *handler.DashboardHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	metricsHandler       http.Handler
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	dashboardHandler *handler.DashboardHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		doctorHandler:        doctorHandler,
		appointmentHandler:   appointmentHandler,
		dashboardHandler:     dashboardHandler,
		medicalRecordHandler: medicalRecordHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		metricsHandler:       metricsHandler,
	}
}

func (r *Router) Setup() *mux.Router {
	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	api.HandleFunc("/auth/register", r.authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", r.authHandler.Login).Methods(http.MethodPost)

	// Catalog routes (public)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/slots", r.doctorHandler.GetSlots).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/booking/dates", r.doctorHandler.GetBookingDates).Methods(http.MethodGet)

	// Session routes (protected)
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/auth/me", r.authHandler.UpdateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)
	protected.HandleFunc("/activity", r.auditLogHandler.GetMyAuditLogs).Methods(http.MethodGet)
	protected.HandleFunc("/activity/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Appointments; ownership is checked by the handler
	protected.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	protected.Handle("/appointments", patientOnly(r.appointmentHandler.CreateAppointment)).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.Handle("/appointments/{id}/approve", doctorOnly(r.appointmentHandler.ApproveAppointment)).Methods(http.MethodPost)
	protected.Handle("/appointments/{id}/complete", doctorOnly(r.appointmentHandler.CompleteAppointment)).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)

	// Doctor self-service
	protected.Handle("/doctors/me/availability", doctorOnly(r.doctorHandler.GetMyAvailability)).Methods(http.MethodGet)
	protected.Handle("/doctors/me/availability", doctorOnly(r.doctorHandler.UpdateMyAvailability)).Methods(http.MethodPut)

	// Medical records; export is registered before {id}
	protected.Handle("/medical-records", patientOnly(r.medicalRecordHandler.GetMyRecords)).Methods(http.MethodGet)
	protected.Handle("/medical-records", doctorOnly(r.medicalRecordHandler.CreateRecord)).Methods(http.MethodPost)
	protected.Handle("/medical-records/export.xlsx", patientOnly(r.medicalRecordHandler.ExportRecords)).Methods(http.MethodGet)
	protected.Handle("/medical-records/{id}", patientOnly(r.medicalRecordHandler.GetRecord)).Methods(http.MethodGet)
	protected.Handle("/medical-records/{id}/download", patientOnly(r.medicalRecordHandler.DownloadRecord)).Methods(http.MethodGet)

	// Preflight requests are answered by the CORS middleware
	r.router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {})

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

func patientOnly(h http.HandlerFunc) http.Handler {
	return middleware.RequirePatient(h)
}

func doctorOnly(h http.HandlerFunc) http.Handler {
	return middleware.RequireDoctor(h)
}
