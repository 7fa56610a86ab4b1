// Package queue defines the domain events a front-desk session emits and
// the in-process journal that records them.
package queue

// Event is implemented by every payload published on the journal.
type Event interface {
	// Name is the routing key of the event, e.g. "booking.confirmed".
	Name() string
}

// BookingConfirmedEvent is published when a room has been booked for a
// guest.
type BookingConfirmedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	RoomNumber  int    `json:"room_number"`
	GuestName   string `json:"guest_name"`
	ConfirmedAt string `json:"confirmed_at"`
}

// CheckoutCompletedEvent is published when a booking ends and its room is
// free again.
type CheckoutCompletedEvent struct {
	BookingID    uint64 `json:"booking_id"`
	RoomNumber   int    `json:"room_number"`
	GuestName    string `json:"guest_name"`
	CheckedOutAt string `json:"checked_out_at"`
}

// ComplaintRegisteredEvent is published for every complaint.
type ComplaintRegisteredEvent struct {
	GuestName    string `json:"guest_name"`
	Text         string `json:"text"`
	RegisteredAt string `json:"registered_at"`
}

// OrderPlacedEvent is published when a room-service order is finalized.
type OrderPlacedEvent struct {
	OrderID          uint64   `json:"order_id"`
	Items            []string `json:"items"`
	TotalAmountCents uint64   `json:"total_amount_cents"`
	PlacedAt         string   `json:"placed_at"`
}

func (BookingConfirmedEvent) Name() string    { return "booking.confirmed" }
func (CheckoutCompletedEvent) Name() string   { return "booking.checked_out" }
func (ComplaintRegisteredEvent) Name() string { return "complaint.registered" }
func (OrderPlacedEvent) Name() string         { return "order.placed" }
