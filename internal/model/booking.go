package model

import "time"

// Booking is an active assignment of one guest to one room.  Bookings
// are identified by a sequential ID that starts at 1 and is never reused
// within a session, even after the booking has been checked out.
//
// Fields:
//  ID         – sequential booking identifier.
//  RoomNumber – room held by this booking.
//  GuestName  – name given at the front desk.
//  CreatedAt  – when the booking was made.
type Booking struct {
	ID         uint64    // booking id
	RoomNumber int       // rooms.number
	GuestName  string    // guest name as typed
	CreatedAt  time.Time // creation timestamp
}
