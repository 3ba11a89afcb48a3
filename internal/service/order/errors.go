package order

import "errors"

var (
	ErrMissingItems    = errors.New("order has no items")
	ErrInvalidQuantity = errors.New("invalid item quantity")
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidRole     = errors.New("invalid role")

	// ErrOrderNotFound covers both an absent order and a conditional update
	// that matched no row. The two are reported identically so an
	// unauthorized caller cannot probe whether an order exists.
	ErrOrderNotFound = errors.New("order not found")

	ErrForbidden = errors.New("actor does not own this order")

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrRiderNotFound      = errors.New("rider not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
)
