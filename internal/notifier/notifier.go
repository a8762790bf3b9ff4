package notifier

import (
	"fmt"
	"log"
)

// Notifier abstracts the delivery channel (email/SMS/chat later).
type Notifier interface {
	Notify(subject, message string) error
}

// ConsoleNotifier logs notifications; the MVP channel.
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s\n", subject, message)
	return nil
}

// HumanSlot renders a booked slot for message bodies.
func HumanSlot(date, start, end string) string {
	return fmt.Sprintf("%s %s — %s", date, start, end)
}
