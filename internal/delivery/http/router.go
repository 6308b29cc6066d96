package http

import (
	"net/http"

	"nextcare-api/internal/delivery/http/handler"
	"nextcare-api/internal/delivery/http/middleware"
	"nextcare-api/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router                *mux.Router
	log                   *logrus.Logger
	authHandler           *handler.AuthHandler
	userHandler           *handler.UserHandler
	appointmentHandler    *handler.AppointmentHandler
	carePlanHandler       *handler.CarePlanHandler
	doctorHandler         *handler.DoctorHandler
	healthResourceHandler *handler.HealthResourceHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
	loginLimiter          *middleware.RateLimiter
}

type RouterDeps struct {
	Log                   *logrus.Logger
	AuthHandler           *handler.AuthHandler
	UserHandler           *handler.UserHandler
	AppointmentHandler    *handler.AppointmentHandler
	CarePlanHandler       *handler.CarePlanHandler
	DoctorHandler         *handler.DoctorHandler
	HealthResourceHandler *handler.HealthResourceHandler
	AuditLogHandler       *handler.AuditLogHandler
	AuthMiddleware        *middleware.AuthMiddleware
	CORSMiddleware        *middleware.CORSMiddleware
	LoginLimiter          *middleware.RateLimiter
}

func NewRouter(deps RouterDeps) *Router {
	return &Router{
		router:                mux.NewRouter(),
		log:                   deps.Log,
		authHandler:           deps.AuthHandler,
		userHandler:           deps.UserHandler,
		appointmentHandler:    deps.AppointmentHandler,
		carePlanHandler:       deps.CarePlanHandler,
		doctorHandler:         deps.DoctorHandler,
		healthResourceHandler: deps.HealthResourceHandler,
		auditLogHandler:       deps.AuditLogHandler,
		authMiddleware:        deps.AuthMiddleware,
		corsMiddleware:        deps.CORSMiddleware,
		loginLimiter:          deps.LoginLimiter,
	}
}

func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.Handle("/login", r.loginLimiter.Handle(http.HandlerFunc(r.authHandler.Login))).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Users
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.HandleFunc("/profile", r.userHandler.GetProfile).Methods(http.MethodGet)
	users.HandleFunc("/profile", r.userHandler.UpdateProfile).Methods(http.MethodPut)
	users.Handle("", middleware.RequireAdmin(http.HandlerFunc(r.userHandler.GetAllUsers))).Methods(http.MethodGet)
	users.Handle("/{id}", middleware.RequireAdmin(http.HandlerFunc(r.userHandler.DeleteUser))).Methods(http.MethodDelete)

	// Appointments (owner or admin; admin/all must precede /{id})
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Handle("/admin/all", middleware.RequireAdmin(http.HandlerFunc(r.appointmentHandler.GetAllAppointments))).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Care plans (owner or admin)
	carePlans := api.PathPrefix("/care-plans").Subrouter()
	carePlans.Use(r.authMiddleware.Authenticate)
	carePlans.Handle("/admin/all", middleware.RequireAdmin(http.HandlerFunc(r.carePlanHandler.GetAllCarePlans))).Methods(http.MethodGet)
	carePlans.HandleFunc("", r.carePlanHandler.GetMyCarePlans).Methods(http.MethodGet)
	carePlans.HandleFunc("", r.carePlanHandler.CreateCarePlan).Methods(http.MethodPost)
	carePlans.HandleFunc("/{id}", r.carePlanHandler.GetCarePlan).Methods(http.MethodGet)
	carePlans.HandleFunc("/{id}", r.carePlanHandler.UpdateCarePlan).Methods(http.MethodPut)
	carePlans.HandleFunc("/{id}", r.carePlanHandler.DeleteCarePlan).Methods(http.MethodDelete)

	// Health resources (public reads)
	resources := api.PathPrefix("/health-resources").Subrouter()
	resources.HandleFunc("", r.healthResourceHandler.GetAllHealthResources).Methods(http.MethodGet)
	resources.HandleFunc("/{id}", r.healthResourceHandler.GetHealthResource).Methods(http.MethodGet)
	resources.Handle("/{id}/like", r.authenticated(r.healthResourceHandler.LikeHealthResource)).Methods(http.MethodPost)
	resources.Handle("", r.adminOnly(r.healthResourceHandler.CreateHealthResource)).Methods(http.MethodPost)
	resources.Handle("/{id}", r.adminOnly(r.healthResourceHandler.UpdateHealthResource)).Methods(http.MethodPut)
	resources.Handle("/{id}", r.adminOnly(r.healthResourceHandler.DeleteHealthResource)).Methods(http.MethodDelete)

	// Doctors (public reads)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.HandleFunc("", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	doctors.Handle("", r.adminOnly(r.doctorHandler.CreateDoctor)).Methods(http.MethodPost)
	doctors.Handle("/{id}", r.adminOnly(r.doctorHandler.UpdateDoctor)).Methods(http.MethodPut)
	doctors.Handle("/{id}", r.adminOnly(r.doctorHandler.DeleteDoctor)).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Global middleware wraps the router itself so preflight and unmatched
	// requests are also covered.
	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = middleware.RequestLogger(r.log)(h)
	h = middleware.Recovery(r.log)(h)
	return h
}

func (r *Router) authenticated(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(h)
}

func (r *Router) adminOnly(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(middleware.RequireAdmin(h))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.OK(w, map[string]string{
		"status":  "OK",
		"message": "NextCare API is running",
	})
}
