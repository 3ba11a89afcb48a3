package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"delivery/internal/entities"
	"delivery/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, customer_id, restaurant_id, rider_id, total_amount, status, payment_status, payment_ref, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create inserts the order and its item snapshot. Callers run it inside a
// transaction so a failed item insert rolls the order back.
func (r *Repository) Create(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	query := `INSERT INTO orders (customer_id, restaurant_id, total_amount, status, payment_status)
		VALUES ($1, $2, $3, 'PENDING', 'PENDING')
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		draft.CustomerID,
		draft.RestaurantID,
		draft.TotalAmount,
	).Scan(
		&orderDB.ID,
		&orderDB.CustomerID,
		&orderDB.RestaurantID,
		&orderDB.RiderID,
		&orderDB.TotalAmount,
		&orderDB.Status,
		&orderDB.PaymentStatus,
		&orderDB.PaymentRef,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	itemQuery := `INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, menu_item_id, quantity, unit_price`

	items := make([]OrderItemDB, 0, len(draft.Items))
	for _, it := range draft.Items {
		var itemDB OrderItemDB
		err := r.querier.QueryRow(ctx, itemQuery, orderDB.ID, it.MenuItemID, it.Quantity, it.UnitPrice).
			Scan(&itemDB.ID, &itemDB.OrderID, &itemDB.MenuItemID, &itemDB.Quantity, &itemDB.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create item error: %w", err)
		}
		items = append(items, itemDB)
	}

	return ToDomain(&orderDB, items), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderDB.ID,
			&orderDB.CustomerID,
			&orderDB.RestaurantID,
			&orderDB.RiderID,
			&orderDB.TotalAmount,
			&orderDB.Status,
			&orderDB.PaymentStatus,
			&orderDB.PaymentRef,
			&orderDB.CreatedAt,
			&orderDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	items, err := r.loadItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items[orderDB.ID]), nil
}

// UpdateStatus writes the change only while every filter condition still
// holds, as part of the UPDATE's WHERE clause. A row lost to a concurrent
// writer surfaces as ErrOrderNotFound, same as an absent row.
func (r *Repository) UpdateStatus(ctx context.Context, id string, filter entities.StatusFilter, change entities.StatusChange) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("status", change.Status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})

	if change.RiderID != nil {
		builder = builder.Set("rider_id", change.RiderID)
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, s.String())
		}
		builder = builder.Where(sq.Eq{"status": statuses})
	}
	if filter.RestaurantID != nil {
		builder = builder.Where(sq.Eq{"restaurant_id": filter.RestaurantID})
	}
	if filter.RiderUnset {
		builder = builder.Where(sq.Eq{"rider_id": nil})
	}

	builder = builder.Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderDB.ID,
			&orderDB.CustomerID,
			&orderDB.RestaurantID,
			&orderDB.RiderID,
			&orderDB.TotalAmount,
			&orderDB.Status,
			&orderDB.PaymentStatus,
			&orderDB.PaymentRef,
			&orderDB.CreatedAt,
			&orderDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	items, err := r.loadItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items[orderDB.ID]), nil
}

func (r *Repository) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatusType, paymentRef *string) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("payment_status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + orderColumns)

	if paymentRef != nil {
		builder = builder.Set("payment_ref", paymentRef)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository updatepaymentstatus error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderDB.ID,
			&orderDB.CustomerID,
			&orderDB.RestaurantID,
			&orderDB.RiderID,
			&orderDB.TotalAmount,
			&orderDB.Status,
			&orderDB.PaymentStatus,
			&orderDB.PaymentRef,
			&orderDB.CreatedAt,
			&orderDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository updatepaymentstatus error: %w", err)
	}

	items, err := r.loadItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items[orderDB.ID]), nil
}

func (r *Repository) ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	return r.list(ctx, sq.Eq{"customer_id": customerID})
}

func (r *Repository) ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.Order, error) {
	return r.list(ctx, sq.Eq{"restaurant_id": restaurantID})
}

func (r *Repository) ListByRider(ctx context.Context, riderID string) ([]entities.Order, error) {
	return r.list(ctx, sq.Eq{"rider_id": riderID})
}

func (r *Repository) list(ctx context.Context, where sq.Eq) ([]entities.Order, error) {
	query, args, err := qb.
		Select("id", "customer_id", "restaurant_id", "rider_id", "total_amount",
			"status", "payment_status", "payment_ref", "created_at", "updated_at").
		From("orders").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	ordersDB := make([]OrderDB, 0, 8)
	ids := make([]string, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.CustomerID,
			&orderDB.RestaurantID,
			&orderDB.RiderID,
			&orderDB.TotalAmount,
			&orderDB.Status,
			&orderDB.PaymentStatus,
			&orderDB.PaymentRef,
			&orderDB.CreatedAt,
			&orderDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		ordersDB = append(ordersDB, orderDB)
		ids = append(ids, orderDB.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	return ToDomainList(ordersDB, items), nil
}

func (r *Repository) loadItems(ctx context.Context, orderIDs []string) (map[string][]OrderItemDB, error) {
	result := make(map[string][]OrderItemDB, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	query := `SELECT id, order_id, menu_item_id, quantity, unit_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository loaditems error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemDB OrderItemDB
		err := rows.Scan(&itemDB.ID, &itemDB.OrderID, &itemDB.MenuItemID, &itemDB.Quantity, &itemDB.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository loaditems error: %w", err)
		}
		result[itemDB.OrderID] = append(result[itemDB.OrderID], itemDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository loaditems error: %w", err)
	}

	return result, nil
}
