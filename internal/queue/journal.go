package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Publisher accepts domain events.  Implementations must not block for
// long; the session publishes synchronously after each state change.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Journal is an in-memory Publisher.  It keeps every event in publish
// order and writes a single-line summary of each one to its logger.
// A Journal belongs to one session and is not safe for concurrent use.
type Journal struct {
	log    *slog.Logger
	events []Event
}

// NewJournal returns an empty journal that logs through log.  A nil
// logger disables the summaries.
func NewJournal(log *slog.Logger) *Journal {
	return &Journal{log: log}
}

// Publish records ev and logs its summary at info level.  The event
// itself is attached as the payload attribute.
func (j *Journal) Publish(ctx context.Context, ev Event) error {
	if ev == nil {
		return fmt.Errorf("publish: nil event")
	}
	j.events = append(j.events, ev)
	if j.log != nil {
		j.log.InfoContext(ctx, Summary(ev), slog.String("event", ev.Name()), slog.Any("payload", ev))
	}
	return nil
}

// Events returns the recorded events, oldest first.
func (j *Journal) Events() []Event {
	out := make([]Event, len(j.events))
	copy(out, j.events)
	return out
}

// Summary renders ev as a single human-friendly line.
func Summary(ev Event) string {
	switch e := ev.(type) {
	case BookingConfirmedEvent:
		return fmt.Sprintf("Booking confirmed | booking_id=%d | room=%d | guest=%q", e.BookingID, e.RoomNumber, e.GuestName)
	case CheckoutCompletedEvent:
		return fmt.Sprintf("Checked out | booking_id=%d | room=%d | guest=%q", e.BookingID, e.RoomNumber, e.GuestName)
	case ComplaintRegisteredEvent:
		return fmt.Sprintf("Complaint registered | guest=%q", e.GuestName)
	case OrderPlacedEvent:
		items := "[]"
		if len(e.Items) > 0 {
			items = "[" + strings.Join(e.Items, ",") + "]"
		}
		return fmt.Sprintf("Order placed | order_id=%d | total=%d cents | items=%s", e.OrderID, e.TotalAmountCents, items)
	default:
		return ev.Name()
	}
}
