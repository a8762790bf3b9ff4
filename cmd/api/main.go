package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/you/padel-club/internal/handlers"
	"github.com/you/padel-club/internal/repository"
	"github.com/you/padel-club/internal/service"
	"github.com/you/padel-club/pkg/config"
	"github.com/you/padel-club/pkg/db"
	"github.com/you/padel-club/pkg/mq"
	"github.com/you/padel-club/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load()
	cfg := must(config.Load())

	shutdownTracer := obs.InitTracer("padel-api")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracer(ctx)
	}()

	// DB
	gdb := db.Open(cfg.PGDsn)
	courtRepo := repository.NewCourtRepo(gdb)
	playerRepo := repository.NewPlayerRepo(gdb)
	reservationRepo := repository.NewReservationRepo(gdb)
	must(0, errFirst(courtRepo.Migrate(), playerRepo.Migrate(), reservationRepo.Migrate()))

	// Publisher for reservation.* events
	pub := must(mq.NewPublisher(cfg.RabbitURL, cfg.ReservationExchange))
	defer pub.Close()

	courtSvc := service.NewCourtSvc(courtRepo, reservationRepo)
	playerSvc := service.NewPlayerSvc(playerRepo)
	reservationSvc := service.NewReservationSvc(reservationRepo, playerRepo, courtSvc, pub)

	r := gin.Default()
	v1 := r.Group("/v1")
	{
		ch := handlers.NewCourtHandler(courtSvc)
		v1.POST("/courts", ch.Create)
		v1.GET("/courts", ch.List)
		v1.GET("/courts/:id", ch.Get)
		v1.PUT("/courts/:id", ch.Update)
		v1.DELETE("/courts/:id", ch.Deactivate)
		v1.GET("/courts/:id/availability", ch.Availability)

		rh := handlers.NewReservationHandler(reservationSvc)
		v1.POST("/reservations", rh.Create)
		v1.POST("/reservations/quick", rh.QuickBook)
		v1.GET("/reservations", rh.List)
		v1.GET("/reservations/:id", rh.Get)
		v1.POST("/reservations/:id/cancel", rh.Cancel)
		v1.POST("/reservations/complete", rh.Complete)
		v1.POST("/reservations/no-show", rh.NoShow)
		v1.GET("/reports/reservations", rh.Stats)

		ph := handlers.NewPlayerHandler(playerSvc, reservationSvc)
		v1.POST("/players", ph.Create)
		v1.GET("/players", ph.List)
		v1.GET("/players/:id", ph.Get)
		v1.PUT("/players/:id", ph.Update)
		v1.POST("/players/:id/deactivate", ph.Deactivate)
		v1.POST("/players/:id/activate", ph.Activate)
		v1.GET("/players/:id/reservations", ph.Reservations)
	}

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		log.Println("[api] listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Println("[api] stopped")
}

func errFirst(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
