package handler

import "github.com/iliyamo/hotel-front-desk/internal/console"

// Exit handles "Exit": it says goodbye and stops the menu loop.
func Exit(c *console.Context) error {
	c.Println("Exiting program. Goodbye!")
	return console.ErrExit
}
