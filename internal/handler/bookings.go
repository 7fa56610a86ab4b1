package handler

import (
	"errors"

	"github.com/iliyamo/hotel-front-desk/internal/console"
	"github.com/iliyamo/hotel-front-desk/internal/repository"
	"github.com/iliyamo/hotel-front-desk/internal/service"
)

// BookingHandler books rooms, lists bookings and checks guests out.
type BookingHandler struct {
	Session *service.Session
}

// Book handles "Book a Room".  It asks for the guest name, shows the free
// rooms and asks which one to book.  A malformed or unavailable room
// number is reported and nothing is booked.
func (h *BookingHandler) Book(c *console.Context) error {
	name, err := c.Prompt("Enter your name: ")
	if err != nil {
		return err
	}

	rooms := h.Session.AvailableRooms()
	printAvailable(c, rooms)
	if len(rooms) == 0 {
		return nil
	}

	number, err := c.PromptInt("Enter the room number you want to book: ")
	if errors.Is(err, console.ErrInvalidNumber) {
		c.Errorln("Invalid response. Please enter a valid integer.")
		return nil
	}
	if err != nil {
		return err
	}

	b, err := h.Session.BookRoom(c.Context(), number, name)
	if errors.Is(err, repository.ErrRoomUnavailable) {
		c.Errorln("Invalid room number or the room is already booked.")
		return nil
	}
	if err != nil {
		return err
	}
	c.Successln("Room booked successfully.")
	c.Printf("Your booking ID is %d.\n", b.ID)
	return nil
}

// List handles "Display Current Bookings".
func (h *BookingHandler) List(c *console.Context) error {
	bookings := h.Session.Bookings()
	if len(bookings) == 0 {
		c.Println("No bookings yet.")
		return nil
	}
	c.Println("Current Bookings:")
	for _, b := range bookings {
		c.Printf("Booking ID: %d, Room Number: %d, Guest Name: %s\n", b.ID, b.RoomNumber, b.GuestName)
	}
	return nil
}

// Checkout handles "Check-out".  Unknown or malformed ids leave the
// ledger unchanged.
func (h *BookingHandler) Checkout(c *console.Context) error {
	id, err := c.PromptInt("Enter the booking ID for check-out: ")
	if errors.Is(err, console.ErrInvalidNumber) {
		c.Errorln("Invalid response. Please enter a valid integer.")
		return nil
	}
	if err != nil {
		return err
	}
	if id <= 0 {
		c.Errorln("Invalid booking ID or check-out failed.")
		return nil
	}

	_, err = h.Session.Checkout(c.Context(), uint64(id))
	if errors.Is(err, repository.ErrBookingNotFound) || errors.Is(err, repository.ErrRoomNotFound) {
		c.Errorln("Invalid booking ID or check-out failed.")
		return nil
	}
	if err != nil {
		return err
	}
	c.Successln("Check-out successful.")
	return nil
}
