package order

import "time"

type OrderDB struct {
	ID            string
	CustomerID    string
	RestaurantID  string
	RiderID       *string
	TotalAmount   int64
	Status        string
	PaymentStatus string
	PaymentRef    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItemDB struct {
	ID         string
	OrderID    string
	MenuItemID string
	Quantity   int32
	UnitPrice  int64
}
