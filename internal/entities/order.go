package entities

import "time"

type Order struct {
	ID            string
	CustomerID    string
	RestaurantID  string
	RiderID       *string
	Items         []OrderItem
	TotalAmount   int64
	Status        OrderStatusType
	PaymentStatus PaymentStatusType
	PaymentRef    *string
	CreatedAt     time.Time
}

// OrderItem snapshots the menu price at order time.
type OrderItem struct {
	ID         string
	MenuItemID string
	Quantity   int32
	UnitPrice  int64
}

type OrderDraft struct {
	CustomerID   string
	RestaurantID string
	Items        []OrderItemDraft
	TotalAmount  int64
}

type OrderItemDraft struct {
	MenuItemID string
	Quantity   int32
	UnitPrice  int64
}

type OrderStatusType string

const (
	OrderPending        OrderStatusType = "PENDING"
	OrderConfirmed      OrderStatusType = "CONFIRMED"
	OrderPreparing      OrderStatusType = "PREPARING"
	OrderReadyForPickup OrderStatusType = "READY_FOR_PICKUP"
	OrderOnTheWay       OrderStatusType = "ON_THE_WAY"
	OrderDelivered      OrderStatusType = "DELIVERED"
	OrderCancelled      OrderStatusType = "CANCELLED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal reports whether no further status transition is allowed.
func (s OrderStatusType) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type PaymentStatusType string

const (
	PaymentPending    PaymentStatusType = "PENDING"
	PaymentSuccessful PaymentStatusType = "SUCCESSFUL"
	PaymentFailed     PaymentStatusType = "FAILED"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

// StatusFilter constrains a conditional status update. The repository applies
// it as part of the UPDATE's WHERE clause, so two concurrent writers racing on
// the same order resolve to exactly one matched row.
type StatusFilter struct {
	Statuses     []OrderStatusType
	RestaurantID *string
	RiderUnset   bool
}

// StatusChange is the new state written by a conditional update.
type StatusChange struct {
	Status  OrderStatusType
	RiderID *string
}
