package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/Sonalgupta2005/game-time-go/docs"
	"github.com/Sonalgupta2005/game-time-go/internal/api/handler"
	"github.com/Sonalgupta2005/game-time-go/internal/api/middleware"
	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
	healthhandlers "github.com/Sonalgupta2005/game-time-go/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs. All upstream surfaces are ports
// so tests can swap in stubs.
type Deps struct {
	SessionRepo ports.SessionRepository
	Auth        ports.AuthBackend
	Venues      ports.VenueBackend
	Bookings    ports.BookingBackend
	Profiles    ports.ProfileBackend
	Reviews     ports.ReviewBackend
	Facility    ports.FacilityBackend
	Admin       ports.AdminBackend
	Activity    ports.ActivityDispatcher
	Health      *healthhandlers.HealthHandler

	JWTSecret          string
	CookieName         string
	SessionTTL         time.Duration
	AdminAccessKeyHash string

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("portal"))

	session := middleware.Session(d.JWTSecret, d.CookieName, d.SessionRepo, d.Auth, d.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.SessionRepo, d.Activity, d.JWTSecret, d.CookieName, d.SessionTTL, d.Logger)
	venueHandler := handler.NewVenueHandler(d.Venues)
	bookingHandler := handler.NewBookingHandler(d.Bookings, d.Activity)
	userHandler := handler.NewUserHandler(d.Profiles)
	reviewHandler := handler.NewReviewHandler(d.Reviews)
	facilityHandler := handler.NewFacilityHandler(d.Facility)
	adminHandler := handler.NewAdminHandler(d.Admin, d.SessionRepo, d.Auth, d.Activity, d.JWTSecret, d.CookieName, d.SessionTTL, d.AdminAccessKeyHash, d.Logger)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/verify-otp", authHandler.VerifyOTP)
	e.POST("/auth/resend-otp", authHandler.ResendOTP)
	e.POST("/admin/access", adminHandler.Access)
	e.POST("/admin/login", adminHandler.Login)

	// --- Health probes (no auth required) ---
	e.GET("/health", d.Health.Liveness)
	e.GET("/health/ready", d.Health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Session-gated routes (any signed-in role) ---
	gated := e.Group("", session, middleware.RequireSession())
	gated.POST("/auth/logout", authHandler.Logout)

	gated.GET("/venues", venueHandler.List)
	gated.GET("/venues/search", venueHandler.Search)
	gated.GET("/venues/:id", venueHandler.Get)

	gated.POST("/bookings", bookingHandler.Create)
	gated.GET("/bookings", bookingHandler.List)
	gated.GET("/bookings/available-slots", bookingHandler.AvailableSlots)
	gated.PUT("/bookings/:id/cancel", bookingHandler.Cancel)

	gated.POST("/reviews", reviewHandler.Create)
	gated.GET("/reviews/venue/:id", reviewHandler.ByVenue)

	// --- Role-gated routes ---
	user := e.Group("/user", session, middleware.Guard(domain.RoleUser))
	user.GET("/profile", userHandler.Profile)
	user.PUT("/profile", userHandler.UpdateProfile)
	user.POST("/avatar", userHandler.UploadAvatar)

	owner := e.Group("/facility", session, middleware.Guard(domain.RoleFacilityOwner))
	owner.PUT("/details", facilityHandler.UpdateDetails)
	owner.POST("/photos", facilityHandler.UploadPhotos)
	owner.POST("/courts", facilityHandler.AddCourt)
	owner.PUT("/courts/:id", facilityHandler.UpdateCourt)
	owner.DELETE("/courts/:id", facilityHandler.DeleteCourt)
	owner.PUT("/bookings/:id/accept", facilityHandler.AcceptBooking)
	owner.PUT("/bookings/:id/reject", facilityHandler.RejectBooking)

	admin := e.Group("/admin", session, middleware.Guard(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/facilities/pending", adminHandler.PendingFacilities)
	admin.PUT("/facilities/:id/approve", adminHandler.ApproveFacility)
	admin.PUT("/facilities/:id/reject", adminHandler.RejectFacility)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/ban", adminHandler.BanUser)
	admin.PUT("/users/:id/unban", adminHandler.UnbanUser)

	return e
}
