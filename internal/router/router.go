package router // package router defines which command each menu number runs

import (
	"github.com/iliyamo/hotel-front-desk/internal/console" // menu loop and handler types
	"github.com/iliyamo/hotel-front-desk/internal/handler" // command implementations
)

// Menu numbers of the front desk.  They are part of the user interface
// and must stay stable.
const (
	ChoiceAvailableRooms = 1
	ChoiceBookRoom       = 2
	ChoiceBookings       = 3
	ChoiceCheckout       = 4
	ChoiceComplaint      = 5
	ChoiceComplaints     = 6
	ChoiceMenu           = 7
	ChoicePlaceOrder     = 8
	ChoiceOrders         = 9
	ChoiceExit           = 10
)

// RegisterRoutes maps every menu number to its handler.  The labels are
// printed as the main menu.
func RegisterRoutes(r *console.Router, h *handler.Handlers) {
	r.Add(ChoiceAvailableRooms, "Display Available Rooms", h.Rooms.ListAvailable)
	r.Add(ChoiceBookRoom, "Book a Room", h.Bookings.Book)
	r.Add(ChoiceBookings, "Display Current Bookings", h.Bookings.List)
	r.Add(ChoiceCheckout, "Check-out", h.Bookings.Checkout)
	r.Add(ChoiceComplaint, "Register Complaint", h.Complaints.Register)
	r.Add(ChoiceComplaints, "View Complaints", h.Complaints.List)
	r.Add(ChoiceMenu, "Display Menu", h.Menu.List)
	r.Add(ChoicePlaceOrder, "Place Order", h.Orders.Place)
	r.Add(ChoiceOrders, "View Orders", h.Orders.List)
	r.Add(ChoiceExit, "Exit", handler.Exit)
}
