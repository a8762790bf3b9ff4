package worker

import (
	"context"
	"fmt"
	"log"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/you/padel-club/internal/events"
	"github.com/you/padel-club/internal/notifier"
	"github.com/you/padel-club/pkg/mq"
)

// Consumer turns reservation events into notifications.
type Consumer struct {
	mq       *mq.Consumer
	notifier notifier.Notifier
	tag      string
}

func NewConsumer(c *mq.Consumer, n notifier.Notifier, tag string) *Consumer {
	return &Consumer{mq: c, notifier: n, tag: tag}
}

func (c *Consumer) Run(ctx context.Context) error {
	msgs, err := c.mq.Deliveries(ctx, c.tag)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := c.handleDelivery(d); err != nil {
				// no requeue: the rejected message dead-letters
				log.Printf("[notify] handle error key=%s err=%v", d.RoutingKey, err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handleDelivery(d amqp.Delivery) error {
	switch d.RoutingKey {
	case events.RKReservationCreated:
		ev, err := events.Unmarshal[events.ReservationCreated](d.Body)
		if err != nil {
			return err
		}
		return c.notifier.Notify("Reservation Confirmed",
			fmt.Sprintf("Reservation %s (court=%s) %s, %.2f",
				ev.ReservationID, ev.CourtID, notifier.HumanSlot(ev.Date, ev.Start, ev.End), ev.Price))

	case events.RKReservationCancelled:
		ev, err := events.Unmarshal[events.ReservationCancelled](d.Body)
		if err != nil {
			return err
		}
		msg := fmt.Sprintf("Reservation %s has been cancelled.", ev.ReservationID)
		if ev.CancelledBy != "" {
			msg = fmt.Sprintf("%s Cancelled by %s.", msg, ev.CancelledBy)
		}
		return c.notifier.Notify("Reservation Cancelled", msg)

	case events.RKReservationCompleted:
		ev, err := events.Unmarshal[events.ReservationBatch](d.Body)
		if err != nil {
			return err
		}
		return c.notifier.Notify("Reservations Completed",
			fmt.Sprintf("%d reservation(s) marked completed: %s",
				len(ev.ReservationIDs), strings.Join(ev.ReservationIDs, ", ")))

	case events.RKReservationNoShow:
		ev, err := events.Unmarshal[events.ReservationBatch](d.Body)
		if err != nil {
			return err
		}
		return c.notifier.Notify("Reservations No-Show",
			fmt.Sprintf("%d reservation(s) marked no-show: %s",
				len(ev.ReservationIDs), strings.Join(ev.ReservationIDs, ", ")))

	default:
		log.Printf("[notify] skip unknown key=%s", d.RoutingKey)
	}
	return nil
}
