// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gari/internal/http/handlers"
	"gari/internal/http/middleware"
	"gari/internal/infra"
	"gari/internal/modules/account"
	"gari/internal/modules/booking"
	"gari/internal/modules/catalog"
	"gari/internal/modules/location"
	"gari/internal/modules/notification"
	"gari/internal/modules/payment"
	"gari/internal/modules/promotion"
	"gari/internal/modules/tempbooking"
)

type ServerDeps struct {
	Verifier infra.TokenVerifier

	Catalog      *catalog.Service
	Location     *location.Service
	Promotion    *promotion.Service
	Booking      *booking.Service
	TempBooking  *tempbooking.Service
	Account      *account.Service
	Notification *notification.Service
	Payment      *payment.Service
}

// NewRouter wires the full route table. Catalog reads and draft bookings are
// public; everything touching user-owned records sits behind Auth.
func NewRouter(deps ServerDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	carHandler := handlers.NewCarHandler(deps.Catalog, deps.Booking)
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	locationHandler := handlers.NewLocationHandler(deps.Location)
	promoHandler := handlers.NewPromotionHandler(deps.Promotion)
	tempHandler := handlers.NewTempBookingHandler(deps.TempBooking)

	public := r.Group("/api")
	public.GET("/cars", carHandler.List)
	public.GET("/cars/search", carHandler.Search)
	public.GET("/cars/:id", carHandler.Get)
	public.GET("/cars/:id/reviews", carHandler.ListReviews)
	public.GET("/locations", locationHandler.List)
	public.GET("/locations/:id/distance", locationHandler.Distance)
	public.GET("/addons", catalogHandler.ListAddOns)
	public.GET("/packages", catalogHandler.ListPackages)
	public.GET("/policies", catalogHandler.ListPolicies)
	public.GET("/offers", promoHandler.ListOffers)
	public.POST("/promotions/validate", promoHandler.Validate)
	public.POST("/temp-bookings", tempHandler.Create)
	public.GET("/temp-bookings/:id", tempHandler.Get)

	bookingHandler := handlers.NewBookingHandler(deps.Booking)
	userHandler := handlers.NewUserHandler(deps.Account)
	notificationHandler := handlers.NewNotificationHandler(deps.Notification)
	paymentHandler := handlers.NewPaymentHandler(deps.Payment)

	private := r.Group("/api", middleware.Auth(deps.Verifier))
	private.POST("/cars/:id/reviews", carHandler.CreateReview)
	private.POST("/bookings", bookingHandler.Create)
	private.GET("/bookings", bookingHandler.List)
	private.GET("/bookings/:id", bookingHandler.Get)
	private.POST("/bookings/:id/status", bookingHandler.UpdateStatus)
	private.GET("/users", userHandler.List)
	private.GET("/users/me", userHandler.Me)
	private.GET("/notifications", notificationHandler.List)
	private.POST("/notifications/:id/read", notificationHandler.MarkRead)
	private.GET("/payments", paymentHandler.List)
	private.POST("/payments", paymentHandler.Create)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
