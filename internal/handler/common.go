package handler // handler defines the front-desk menu commands

import (
	"golang.org/x/text/language" // language selects digit grouping rules
	"golang.org/x/text/message"  // message prints localized numbers
	"golang.org/x/text/number"   // number formats decimals

	"github.com/iliyamo/hotel-front-desk/internal/console"
	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/service"
)

const separator = "-----------------------"

// Money formats minor-unit amounts with a currency prefix, e.g. "Rs.139"
// or "Rs.1,234.5".  Whole amounts print without a fraction.
type Money struct {
	currency string
	printer  *message.Printer
}

// NewMoney returns a formatter using English digit grouping.
func NewMoney(currency string) Money {
	return Money{currency: currency, printer: message.NewPrinter(language.English)}
}

// Format renders cents as a decimal amount with up to two fraction digits.
func (m Money) Format(cents uint64) string {
	return m.currency + m.printer.Sprintf("%v", number.Decimal(float64(cents)/100, number.MaxFractionDigits(2)))
}

// Handlers bundles every command handler of the front desk.
type Handlers struct {
	Rooms      *RoomHandler
	Bookings   *BookingHandler
	Complaints *ComplaintHandler
	Menu       *MenuHandler
	Orders     *OrderHandler
}

// NewHandlers builds all handlers over one session and panics if the
// session is nil.
func NewHandlers(s *service.Session, money Money) *Handlers {
	if s == nil {
		panic("nil session passed to NewHandlers")
	}
	return &Handlers{
		Rooms:      &RoomHandler{Session: s},
		Bookings:   &BookingHandler{Session: s},
		Complaints: &ComplaintHandler{Session: s},
		Menu:       &MenuHandler{Session: s, Money: money},
		Orders:     &OrderHandler{Session: s, Money: money},
	}
}

// printItem writes one catalog or order line: name, tab, price.
func printItem(c *console.Context, money Money, item model.MenuItem) {
	c.Printf("%s\t%s\n", item.Name, money.Format(uint64(item.PriceCents)))
}
