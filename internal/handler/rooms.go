package handler

import (
	"github.com/iliyamo/hotel-front-desk/internal/console"
	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/service"
)

// RoomHandler shows room availability.
type RoomHandler struct {
	Session *service.Session
}

// ListAvailable handles "Display Available Rooms".
func (h *RoomHandler) ListAvailable(c *console.Context) error {
	printAvailable(c, h.Session.AvailableRooms())
	return nil
}

func printAvailable(c *console.Context, rooms []model.Room) {
	if len(rooms) == 0 {
		c.Println("No rooms available.")
		return
	}
	c.Println("Available Rooms:")
	for _, r := range rooms {
		c.Printf("Room %d\n", r.Number)
	}
}
