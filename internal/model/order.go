package model

import "time"

// Order is a guest's selection of menu items.  While it is being built
// the order has no ID; placing it assigns ID and PlacedAt and after that
// it is never modified.
//
// Fields:
//  ID       – sequential order identifier, zero until placed.
//  Items    – selected items in the order they were added; duplicates allowed.
//  PlacedAt – when the order was placed.
type Order struct {
	ID       uint64     // order id
	Items    []MenuItem // selected items
	PlacedAt time.Time  // placement timestamp
}

// AddItem appends an item to the order.
func (o *Order) AddItem(item MenuItem) {
	o.Items = append(o.Items, item)
}

// TotalCents sums the item prices.  It is recomputed on every call.
func (o Order) TotalCents() uint64 {
	var total uint64
	for _, item := range o.Items {
		total += uint64(item.PriceCents)
	}
	return total
}

// IsEmpty reports whether no items were selected.
func (o Order) IsEmpty() bool {
	return len(o.Items) == 0
}
