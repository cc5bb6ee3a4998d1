// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gari/internal/config"
	httptransport "gari/internal/http"
	"gari/internal/infra"
	"gari/internal/maps"
	"gari/internal/modules/account"
	"gari/internal/modules/booking"
	"gari/internal/modules/catalog"
	"gari/internal/modules/location"
	"gari/internal/modules/notification"
	"gari/internal/modules/payment"
	"gari/internal/modules/pricing"
	"gari/internal/modules/promotion"
	"gari/internal/modules/tempbooking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("GARI_JWT_SECRET is required")
	}
	verifier := infra.NewJWTVerifier(cfg.Auth.JWTSecret)

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	publisher, err := infra.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		log.Printf("amqp connect failed, continuing without event fan-out: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// The maps client is optional; without an API key route estimates are
	// skipped and client-supplied distances are used as-is.
	var routes booking.RouteEstimator
	if cfg.Maps.APIKey != "" {
		routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		routes = routeSvc
	}

	catalogSvc := catalog.NewService(catalog.NewStore(dbPool))
	locationSvc := location.NewService(location.NewStore(dbPool))
	promotionSvc := promotion.NewService(promotion.NewStore(dbPool))
	pricingSvc := pricing.NewService()

	notificationSvc := notification.NewService(notification.NewStore(dbPool), publisherOrNil(publisher))

	bookingSvc := booking.NewService(
		booking.NewStore(dbPool),
		catalogSvc,
		promotionSvc,
		pricingSvc,
		routes,
		notificationSvc,
	)

	tempBookingSvc := tempbooking.NewService(tempbooking.NewStore(redisClient, cfg.TempBooking.TTL))
	accountSvc := account.NewService(account.NewStore(dbPool))
	paymentSvc := payment.NewService(payment.NewStore(dbPool), bookingSvc)

	handler := httptransport.NewRouter(httptransport.ServerDeps{
		Verifier:     verifier,
		Catalog:      catalogSvc,
		Location:     locationSvc,
		Promotion:    promotionSvc,
		Booking:      bookingSvc,
		TempBooking:  tempBookingSvc,
		Account:      accountSvc,
		Notification: notificationSvc,
		Payment:      paymentSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// publisherOrNil keeps a typed nil *infra.Publisher from sneaking into the
// notification service's interface field.
func publisherOrNil(p *infra.Publisher) notification.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}
