package party

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"delivery/internal/entities"
	"delivery/internal/repository"
	"delivery/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	return r.getRestaurant(ctx, "id", id)
}

func (r *Repository) GetRestaurantByUserID(ctx context.Context, userID string) (*entities.Restaurant, error) {
	return r.getRestaurant(ctx, "user_id", userID)
}

func (r *Repository) getRestaurant(ctx context.Context, column, value string) (*entities.Restaurant, error) {
	query := fmt.Sprintf(`SELECT id, user_id, name, created_at
		FROM restaurants
		WHERE %s = $1`, column)

	var restaurantDB RestaurantDB
	err := r.querier.QueryRow(ctx, query, value).
		Scan(
			&restaurantDB.ID,
			&restaurantDB.UserID,
			&restaurantDB.Name,
			&restaurantDB.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("unexpected party repository getrestaurant error: %w", err)
	}

	return ToDomainRestaurant(&restaurantDB), nil
}

func (r *Repository) GetRiderByID(ctx context.Context, id string) (*entities.Rider, error) {
	return r.getRider(ctx, "id", id)
}

func (r *Repository) GetRiderByUserID(ctx context.Context, userID string) (*entities.Rider, error) {
	return r.getRider(ctx, "user_id", userID)
}

func (r *Repository) getRider(ctx context.Context, column, value string) (*entities.Rider, error) {
	query := fmt.Sprintf(`SELECT id, user_id, name, created_at
		FROM riders
		WHERE %s = $1`, column)

	var riderDB RiderDB
	err := r.querier.QueryRow(ctx, query, value).
		Scan(
			&riderDB.ID,
			&riderDB.UserID,
			&riderDB.Name,
			&riderDB.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected party repository getrider error: %w", err)
	}

	return ToDomainRider(&riderDB), nil
}

// GetMenuItems returns the requested items keyed by id. Items belonging to a
// different restaurant are left out, the caller decides whether a miss is an
// error.
func (r *Repository) GetMenuItems(ctx context.Context, restaurantID string, ids []string) (map[string]entities.MenuItem, error) {
	result := make(map[string]entities.MenuItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `SELECT id, restaurant_id, name, price
		FROM menu_items
		WHERE restaurant_id = $1 AND id = ANY($2)`

	rows, err := r.querier.Query(ctx, query, restaurantID, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected party repository getmenuitems error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemDB MenuItemDB
		err := rows.Scan(&itemDB.ID, &itemDB.RestaurantID, &itemDB.Name, &itemDB.Price)
		if err != nil {
			return nil, fmt.Errorf("unexpected party repository getmenuitems error: %w", err)
		}
		result[itemDB.ID] = ToDomainMenuItem(&itemDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected party repository getmenuitems error: %w", err)
	}

	return result, nil
}

// DeviceToken reads the stored push token for a user. An absent or empty
// token maps to repository.ErrDeviceTokenNotFound so the push gateway can
// skip without failing the operation.
func (r *Repository) DeviceToken(ctx context.Context, userID string) (string, error) {
	query := `SELECT fcm_token
		FROM users
		WHERE id = $1`

	var token *string
	err := r.querier.QueryRow(ctx, query, userID).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", repository.ErrDeviceTokenNotFound
		}
		return "", fmt.Errorf("unexpected party repository devicetoken error: %w", err)
	}
	if token == nil || *token == "" {
		return "", repository.ErrDeviceTokenNotFound
	}

	return *token, nil
}
