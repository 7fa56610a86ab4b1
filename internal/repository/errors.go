// Package repository holds the in-memory collections of a front-desk
// session.  Each repository owns one collection and reports failures
// through the sentinel values below so that handlers can tell the
// different outcomes apart with errors.Is.
package repository

import "errors"

// ErrRoomUnavailable is returned when a room cannot be booked, either
// because no room has that number or because it is already booked.
// Both cases look the same to the guest.
var ErrRoomUnavailable = errors.New("room unavailable")

// ErrRoomNotFound is returned when no room has the requested number.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a booking id is unknown.
var ErrBookingNotFound = errors.New("booking not found")

// ErrMenuItemNotFound is returned when a menu lookup has no exact match.
var ErrMenuItemNotFound = errors.New("menu item not found")
