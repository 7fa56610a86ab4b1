package handler

import (
	"github.com/iliyamo/hotel-front-desk/internal/console"
	"github.com/iliyamo/hotel-front-desk/internal/service"
)

// MenuHandler prints the room-service catalog.
type MenuHandler struct {
	Session *service.Session
	Money   Money
}

// List handles "Display Menu".
func (h *MenuHandler) List(c *console.Context) error {
	c.Println("Menu:")
	for _, item := range h.Session.Menu() {
		printItem(c, h.Money, item)
	}
	return nil
}
