package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/you/padel-club/internal/notifier"
	"github.com/you/padel-club/internal/worker"
	"github.com/you/padel-club/pkg/mq"
)

type Cfg struct {
	RabbitURL           string `envconfig:"RABBIT_URL" required:"true"`
	ReservationExchange string `envconfig:"RESERVATION_EXCHANGE" default:"reservation.exchange"`
	NotifyQueue         string `envconfig:"NOTIFY_QUEUE" default:"notification.q"`
	Prefetch            int    `envconfig:"NOTIFY_PREFETCH" default:"16"`
}

func main() {
	_ = godotenv.Load()
	var cfg Cfg
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal(err)
	}

	var cons *mq.Consumer
	for {
		c, err := mq.NewConsumer(cfg.RabbitURL, cfg.ReservationExchange, cfg.NotifyQueue,
			[]string{"reservation.*"}, cfg.Prefetch)
		if err != nil {
			log.Printf("[notify] connect failed: %v; retry in 2s", err)
			time.Sleep(2 * time.Second)
			continue
		}
		cons = c
		break
	}
	defer cons.Close()

	w := worker.NewConsumer(cons, notifier.NewConsole(), "padel-notify")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := w.Run(ctx); err != nil {
			log.Printf("[notify] run error: %v", err)
		}
	}()
	log.Printf("[notify] started. queue=%s exchange=%s", cfg.NotifyQueue, cfg.ReservationExchange)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	cancel()
	time.Sleep(200 * time.Millisecond)
}
