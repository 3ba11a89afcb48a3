package party

import (
	"delivery/internal/entities"
)

func ToDomainRestaurant(r *RestaurantDB) *entities.Restaurant {
	if r == nil {
		return nil
	}
	return &entities.Restaurant{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
}

func ToDomainRider(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}
	return &entities.Rider{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
}

func ToDomainMenuItem(m *MenuItemDB) entities.MenuItem {
	return entities.MenuItem{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Price:        m.Price,
	}
}
