package http

import (
	"net/http"

	"vet-clinic-booking/internal/delivery/http/handler"
	"vet-clinic-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	bookingHandler      *handler.BookingHandler
	availabilityHandler *handler.AvailabilityHandler
	veterinarianHandler *handler.VeterinarianHandler
	petHandler          *handler.PetHandler
	vetServiceHandler   *handler.VetServiceHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	availabilityHandler *handler.AvailabilityHandler,
	veterinarianHandler *handler.VeterinarianHandler,
	petHandler *handler.PetHandler,
	vetServiceHandler *handler.VetServiceHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		bookingHandler:      bookingHandler,
		availabilityHandler: availabilityHandler,
		veterinarianHandler: veterinarianHandler,
		petHandler:          petHandler,
		vetServiceHandler:   vetServiceHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/owner", r.authHandler.RegisterOwner).Methods(http.MethodPost)
	auth.HandleFunc("/register/veterinarian", r.authHandler.RegisterVeterinarian).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public catalogue
	api.HandleFunc("/veterinarians", r.veterinarianHandler.GetVeterinarians).Methods(http.MethodGet)
	api.HandleFunc("/veterinarians/{id}", r.veterinarianHandler.GetVeterinarian).Methods(http.MethodGet)
	api.HandleFunc("/services", r.vetServiceHandler.GetServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", r.vetServiceHandler.GetService).Methods(http.MethodGet)
	api.HandleFunc("/availability/nearest", r.availabilityHandler.GetNearestSlot).Methods(http.MethodGet)

	// Owner routes (protected - owner only)
	owner := api.PathPrefix("").Subrouter()
	owner.Use(r.authMiddleware.Authenticate)
	owner.Use(middleware.RequireOwner)
	owner.HandleFunc("/pets", r.petHandler.CreatePet).Methods(http.MethodPost)
	owner.HandleFunc("/pets/my", r.petHandler.GetMyPets).Methods(http.MethodGet)
	owner.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	owner.HandleFunc("/bookings/my", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)

	// Staff routes (protected - admin or veterinarian)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireAdminOrVeterinarian)
	staff.HandleFunc("/pets", r.petHandler.GetPets).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{id}/accept", r.bookingHandler.AcceptBooking).Methods(http.MethodPost)

	// Veterinarian routes (protected - veterinarian only)
	vet := api.PathPrefix("").Subrouter()
	vet.Use(r.authMiddleware.Authenticate)
	vet.Use(middleware.RequireVeterinarian)
	vet.HandleFunc("/veterinarians/me", r.veterinarianHandler.UpdateMyProfile).Methods(http.MethodPut)
	vet.HandleFunc("/bookings/assigned", r.bookingHandler.GetVeterinarianBookings).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/services", r.vetServiceHandler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetRecentLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
