package party

import "time"

type RestaurantDB struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

type RiderDB struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

type MenuItemDB struct {
	ID           string
	RestaurantID string
	Name         string
	Price        int64
}
