package model

// MenuItem is an entry of the room-service catalog.  Prices are kept in
// minor currency units so that order totals are exact.
//
// Fields:
//  Name       – display name, also the case-insensitive lookup key.
//  PriceCents – price in minor units (4900 is 49.00).
type MenuItem struct {
	Name       string // catalog name
	PriceCents uint32 // price in minor units
}
