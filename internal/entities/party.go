package entities

import "time"

type RoleType string

const (
	RoleUser       RoleType = "USER"
	RoleRestaurant RoleType = "RESTAURANT"
	RoleRider      RoleType = "RIDER"
)

func (r RoleType) String() string {
	return string(r)
}

func (r RoleType) Valid() bool {
	switch r {
	case RoleUser, RoleRestaurant, RoleRider:
		return true
	default:
		return false
	}
}

// Identity is the authenticated caller extracted from a verified credential.
type Identity struct {
	UserID string
	Role   RoleType
	Email  string
}

// Restaurant links back to the owning user account. Authorization resolves
// through UserID, never by comparing the caller id against the restaurant id.
type Restaurant struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

// Rider links back to the owning user account, same indirection as Restaurant.
type Rider struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Price        int64
}
