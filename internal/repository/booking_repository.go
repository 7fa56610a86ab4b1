package repository

import (
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// BookingRepo is the booking ledger.  Bookings are kept in creation
// order and identified by a counter that only moves forward, so an ID
// freed by a check-out is never handed out again.
type BookingRepo struct {
	bookings []model.Booking
	nextID   uint64
	now      func() time.Time
}

// NewBookingRepo returns an empty ledger whose first booking gets ID 1.
func NewBookingRepo() *BookingRepo {
	return &BookingRepo{nextID: 1, now: time.Now}
}

// Create appends a booking for the given room and guest and returns it.
// The caller must have booked the room in RoomRepo first.
func (r *BookingRepo) Create(roomNumber int, guestName string) model.Booking {
	b := model.Booking{
		ID:         r.nextID,
		RoomNumber: roomNumber,
		GuestName:  guestName,
		CreatedAt:  r.now().UTC(),
	}
	r.nextID++
	r.bookings = append(r.bookings, b)
	return b
}

// GetByID returns the booking with the given ID or ErrBookingNotFound.
func (r *BookingRepo) GetByID(id uint64) (model.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Booking{}, ErrBookingNotFound
}

// GetByRoom returns the booking currently holding a room or
// ErrBookingNotFound.
func (r *BookingRepo) GetByRoom(roomNumber int) (model.Booking, error) {
	for _, b := range r.bookings {
		if b.RoomNumber == roomNumber {
			return b, nil
		}
	}
	return model.Booking{}, ErrBookingNotFound
}

// Delete removes the booking with the given ID, keeping the order of the
// remaining bookings.  It returns ErrBookingNotFound when nothing matches.
func (r *BookingRepo) Delete(id uint64) error {
	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return ErrBookingNotFound
}

// List returns the active bookings in creation order.
func (r *BookingRepo) List() []model.Booking {
	out := make([]model.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}
