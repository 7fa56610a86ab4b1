// Package service holds the front-desk session: the one object that owns
// every in-memory collection and performs the operations that touch more
// than one of them.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/queue"
	"github.com/iliyamo/hotel-front-desk/internal/repository"
)

// Options configures a new Session.  Zero values fall back to the
// hotel defaults: ten rooms, the default menu, a discarding logger and
// an in-memory journal.
type Options struct {
	Rooms     int
	Menu      []model.MenuItem
	Logger    *slog.Logger
	Publisher queue.Publisher
}

// DefaultRooms is the number of rooms seeded when Options.Rooms is zero.
const DefaultRooms = 10

// Session is the state of one running front desk.  It is not safe for
// concurrent use; independent sessions share nothing.
type Session struct {
	id         string
	rooms      *repository.RoomRepo
	bookings   *repository.BookingRepo
	complaints *repository.ComplaintRepo
	menu       *repository.MenuRepo
	orders     *repository.OrderRepo
	publisher  queue.Publisher
	log        *slog.Logger
}

// NewSession seeds rooms and menu and returns a ready session.
func NewSession(opts Options) *Session {
	if opts.Rooms <= 0 {
		opts.Rooms = DefaultRooms
	}
	if opts.Menu == nil {
		opts.Menu = repository.DefaultMenu()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.NewString()
	log := opts.Logger.With(slog.String("session_id", id))
	if opts.Publisher == nil {
		opts.Publisher = queue.NewJournal(log)
	}
	return &Session{
		id:         id,
		rooms:      repository.NewRoomRepo(opts.Rooms),
		bookings:   repository.NewBookingRepo(),
		complaints: repository.NewComplaintRepo(),
		menu:       repository.NewMenuRepo(opts.Menu),
		orders:     repository.NewOrderRepo(),
		publisher:  opts.Publisher,
		log:        log,
	}
}

// ID returns the random identifier attached to this session's logs.
func (s *Session) ID() string { return s.id }

// Logger returns the session-scoped logger.
func (s *Session) Logger() *slog.Logger { return s.log }

// RoomCount returns the number of rooms in the hotel.
func (s *Session) RoomCount() int { return s.rooms.Count() }

// AvailableRooms lists the unbooked rooms in ascending order.
func (s *Session) AvailableRooms() []model.Room { return s.rooms.ListAvailable() }

// Room returns the room with the given number.
func (s *Session) Room(number int) (model.Room, error) { return s.rooms.GetByNumber(number) }

// Bookings lists the active bookings in creation order.
func (s *Session) Bookings() []model.Booking { return s.bookings.List() }

// Booking looks a booking up by ID.
func (s *Session) Booking(id uint64) (model.Booking, error) { return s.bookings.GetByID(id) }

// Complaints lists complaints in registration order.
func (s *Session) Complaints() []model.Complaint { return s.complaints.List() }

// Menu lists the catalog in its fixed order.
func (s *Session) Menu() []model.MenuItem { return s.menu.List() }

// MenuItem finds a catalog entry by name, ignoring case.
func (s *Session) MenuItem(name string) (model.MenuItem, error) { return s.menu.GetByName(name) }

// Orders lists placed orders, oldest first.
func (s *Session) Orders() []model.Order { return s.orders.List() }

// BookRoom books roomNumber for guestName.  The room is marked booked and
// the booking is appended as one step: if the room cannot be booked the
// ledger is left untouched and the error wraps
// repository.ErrRoomUnavailable.  A room never carries two bookings.
func (s *Session) BookRoom(ctx context.Context, roomNumber int, guestName string) (model.Booking, error) {
	if held, err := s.bookings.GetByRoom(roomNumber); err == nil {
		return model.Booking{}, fmt.Errorf("book room %d: held by booking %d: %w", roomNumber, held.ID, repository.ErrRoomUnavailable)
	}
	if err := s.rooms.Book(roomNumber); err != nil {
		return model.Booking{}, fmt.Errorf("book room %d: %w", roomNumber, err)
	}
	b := s.bookings.Create(roomNumber, guestName)
	s.publish(ctx, queue.BookingConfirmedEvent{
		BookingID:   b.ID,
		RoomNumber:  b.RoomNumber,
		GuestName:   b.GuestName,
		ConfirmedAt: b.CreatedAt.Format(time.RFC3339),
	})
	return b, nil
}

// Checkout ends booking id: its room is released and the booking is
// removed.  An unknown id returns an error wrapping
// repository.ErrBookingNotFound and nothing changes.
func (s *Session) Checkout(ctx context.Context, id uint64) (model.Booking, error) {
	b, err := s.bookings.GetByID(id)
	if err != nil {
		return model.Booking{}, fmt.Errorf("checkout booking %d: %w", id, err)
	}
	if err := s.rooms.Release(b.RoomNumber); err != nil {
		return model.Booking{}, fmt.Errorf("checkout booking %d: release room %d: %w", id, b.RoomNumber, err)
	}
	if err := s.bookings.Delete(id); err != nil {
		return model.Booking{}, fmt.Errorf("checkout booking %d: %w", id, err)
	}
	s.publish(ctx, queue.CheckoutCompletedEvent{
		BookingID:    b.ID,
		RoomNumber:   b.RoomNumber,
		GuestName:    b.GuestName,
		CheckedOutAt: time.Now().UTC().Format(time.RFC3339),
	})
	return b, nil
}

// RegisterComplaint appends a complaint.  Fields are not validated.
func (s *Session) RegisterComplaint(ctx context.Context, guestName, text string) model.Complaint {
	c := s.complaints.Create(guestName, text)
	s.publish(ctx, queue.ComplaintRegisteredEvent{
		GuestName:    c.GuestName,
		Text:         c.Text,
		RegisteredAt: c.CreatedAt.Format(time.RFC3339),
	})
	return c
}

// PlaceOrder finalizes order into the history and returns the stored
// copy.  Empty orders are placed too.
func (s *Session) PlaceOrder(ctx context.Context, order model.Order) model.Order {
	placed := s.orders.Create(order)
	if placed.IsEmpty() {
		s.log.InfoContext(ctx, "empty order placed", slog.Uint64("order_id", placed.ID))
	}
	names := make([]string, 0, len(placed.Items))
	for _, item := range placed.Items {
		names = append(names, item.Name)
	}
	s.publish(ctx, queue.OrderPlacedEvent{
		OrderID:          placed.ID,
		Items:            names,
		TotalAmountCents: placed.TotalCents(),
		PlacedAt:         placed.PlacedAt.Format(time.RFC3339),
	})
	return placed
}

// publish hands ev to the publisher.  The state change has already
// happened, so a failure is only logged.
func (s *Session) publish(ctx context.Context, ev queue.Event) {
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.log.WarnContext(ctx, "publish event failed", slog.String("event", ev.Name()), slog.Any("error", err))
	}
}
