package order

import (
	"context"
	"errors"
	"fmt"

	"delivery/internal/entities"
	"delivery/internal/realtime"
	"delivery/internal/service/notifier"
	"delivery/pkg/logger"
)

type ownershipCheckFn func(ctx context.Context, actorID string, o *entities.Order) (bool, error)

type Service struct {
	repo      Repository
	parties   PartyRepository
	notifier  Notifier
	txManager TxManager
	log       serviceLogger

	ownership map[entities.RoleType]ownershipCheckFn
}

func New(repo Repository, parties PartyRepository, n Notifier, txManager TxManager, log serviceLogger) *Service {
	s := &Service{
		repo:      repo,
		parties:   parties,
		notifier:  n,
		txManager: txManager,
		log:       log,
	}
	s.ownership = map[entities.RoleType]ownershipCheckFn{
		entities.RoleUser:       s.ownsAsCustomer,
		entities.RoleRestaurant: s.ownsAsRestaurant,
		entities.RoleRider:      s.ownsAsRider,
	}
	return s
}

type CreateOrderItem struct {
	MenuItemID string
	Quantity   int32
}

type CreateOrderRequest struct {
	CustomerID   string
	RestaurantID string
	Items        []CreateOrderItem
}

// CreateOrder persists a new PENDING order priced from the stored menu and
// notifies the restaurant owner.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*entities.Order, error) {
	if err := validateCreateOrder(req); err != nil {
		return nil, err
	}

	restaurant, err := s.parties.GetRestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}

	ids := make([]string, 0, len(req.Items))
	for _, it := range req.Items {
		ids = append(ids, it.MenuItemID)
	}
	menu, err := s.parties.GetMenuItems(ctx, restaurant.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("get menu items: %w", err)
	}

	draft := entities.OrderDraft{
		CustomerID:   req.CustomerID,
		RestaurantID: restaurant.ID,
	}
	for _, it := range req.Items {
		item, ok := menu[it.MenuItemID]
		if !ok {
			return nil, ErrMenuItemNotFound
		}
		draft.Items = append(draft.Items, entities.OrderItemDraft{
			MenuItemID: item.ID,
			Quantity:   it.Quantity,
			UnitPrice:  item.Price,
		})
		draft.TotalAmount += item.Price * int64(it.Quantity)
	}

	var created *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.repo.Create(ctx, draft)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.notifier.Notify(ctx, notifier.Event{
		PartyID: restaurant.UserID,
		Role:    entities.RoleRestaurant,
		Kind:    realtime.EventNewOrder,
		Order:   created,
		Push: &notifier.PushMessage{
			Title: "New Order Received!",
			Body:  fmt.Sprintf("You have a new order #%s", shortID(created.ID)),
			Data:  pushData(created, "NEW_ORDER"),
		},
	})

	s.log.Info("order created",
		logger.NewField("order_id", created.ID),
		logger.NewField("restaurant_id", created.RestaurantID),
	)
	return created, nil
}

// AcceptOrder confirms a PENDING order on behalf of the restaurant that owns
// it, then tells the customer and offers the order to connected riders.
func (s *Service) AcceptOrder(ctx context.Context, actorID, orderID string) (*entities.Order, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	restaurant, err := s.parties.GetRestaurantByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, ErrRestaurantNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("get restaurant by user: %w", err)
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID,
		entities.StatusFilter{
			Statuses:     []entities.OrderStatusType{entities.OrderPending},
			RestaurantID: &restaurant.ID,
		},
		entities.StatusChange{Status: entities.OrderConfirmed},
	)
	if err != nil {
		return nil, fmt.Errorf("confirm order: %w", err)
	}

	s.notifier.Notify(ctx, notifier.Event{
		PartyID: updated.CustomerID,
		Role:    entities.RoleUser,
		Kind:    realtime.EventOrderUpdated,
		Order:   updated,
		Push: &notifier.PushMessage{
			Title: "Order Confirmed!",
			Body:  "The restaurant has confirmed your order",
			Data:  pushData(updated, "ORDER_CONFIRMED"),
		},
	})
	s.notifier.BroadcastRiders(ctx, realtime.EventNewOrderAvailable, updated)

	return updated, nil
}

// AssignRider claims an unassigned CONFIRMED or PREPARING order for the
// calling rider and moves it to PREPARING.
func (s *Service) AssignRider(ctx context.Context, actorID, orderID string) (*entities.Order, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	rider, err := s.parties.GetRiderByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, ErrRiderNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("get rider by user: %w", err)
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID,
		entities.StatusFilter{
			Statuses: []entities.OrderStatusType{
				entities.OrderConfirmed,
				entities.OrderPreparing,
			},
			RiderUnset: true,
		},
		entities.StatusChange{
			Status:  entities.OrderPreparing,
			RiderID: &rider.ID,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("assign rider: %w", err)
	}

	s.notifier.Notify(ctx, notifier.Event{
		PartyID: updated.CustomerID,
		Role:    entities.RoleUser,
		Kind:    realtime.EventOrderUpdated,
		Order:   updated,
		Push: &notifier.PushMessage{
			Title: "Rider Assigned!",
			Body:  "A rider has been assigned to your order",
			Data:  pushData(updated, "RIDER_ASSIGNED"),
		},
	})
	s.notifyRestaurant(ctx, updated, realtime.EventOrderUpdated)
	s.notifier.Notify(ctx, notifier.Event{
		PartyID: actorID,
		Role:    entities.RoleRider,
		Kind:    realtime.EventOrderAssigned,
		Order:   updated,
	})

	return updated, nil
}

// UpdateOrderStatus moves an order the actor participates in to the given
// status and fans the change out to every connected party.
func (s *Service) UpdateOrderStatus(ctx context.Context, actor entities.Identity, orderID string, status entities.OrderStatusType) (*entities.Order, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	current, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := s.authorize(ctx, actor, current); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID,
		entities.StatusFilter{},
		entities.StatusChange{Status: status},
	)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.fanOutStatusChange(ctx, updated)
	return updated, nil
}

// CancelOrder cancels an order on behalf of its customer or restaurant.
func (s *Service) CancelOrder(ctx context.Context, actor entities.Identity, orderID string) (*entities.Order, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if actor.Role != entities.RoleUser && actor.Role != entities.RoleRestaurant {
		return nil, ErrForbidden
	}

	current, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := s.authorize(ctx, actor, current); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID,
		entities.StatusFilter{},
		entities.StatusChange{Status: entities.OrderCancelled},
	)
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}

	s.notifier.Notify(ctx, notifier.Event{
		PartyID: updated.CustomerID,
		Role:    entities.RoleUser,
		Kind:    realtime.EventOrderUpdated,
		Order:   updated,
		Push: &notifier.PushMessage{
			Title: "Order Cancelled",
			Body:  fmt.Sprintf("Order #%s has been cancelled", shortID(updated.ID)),
			Data:  pushData(updated, "ORDER_CANCELLED"),
		},
	})
	s.notifyRestaurant(ctx, updated, realtime.EventOrderUpdated)
	s.notifyRider(ctx, updated, realtime.EventOrderUpdated)

	return updated, nil
}

// GetUserOrders lists orders visible to the actor. Restaurants and riders
// without a registered profile see an empty list rather than an error.
func (s *Service) GetUserOrders(ctx context.Context, actor entities.Identity) ([]entities.Order, error) {
	switch actor.Role {
	case entities.RoleUser:
		return s.repo.ListByCustomer(ctx, actor.UserID)
	case entities.RoleRestaurant:
		restaurant, err := s.parties.GetRestaurantByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, ErrRestaurantNotFound) {
				return []entities.Order{}, nil
			}
			return nil, fmt.Errorf("get restaurant by user: %w", err)
		}
		return s.repo.ListByRestaurant(ctx, restaurant.ID)
	case entities.RoleRider:
		rider, err := s.parties.GetRiderByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, ErrRiderNotFound) {
				return []entities.Order{}, nil
			}
			return nil, fmt.Errorf("get rider by user: %w", err)
		}
		return s.repo.ListByRider(ctx, rider.ID)
	default:
		return nil, ErrInvalidRole
	}
}

func (s *Service) GetOrderByID(ctx context.Context, actor entities.Identity, orderID string) (*entities.Order, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := s.authorize(ctx, actor, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) authorize(ctx context.Context, actor entities.Identity, o *entities.Order) error {
	check, ok := s.ownership[actor.Role]
	if !ok {
		return ErrInvalidRole
	}
	owns, err := check(ctx, actor.UserID, o)
	if err != nil {
		return err
	}
	if !owns {
		return ErrForbidden
	}
	return nil
}

func (s *Service) ownsAsCustomer(_ context.Context, actorID string, o *entities.Order) (bool, error) {
	return o.CustomerID == actorID, nil
}

func (s *Service) ownsAsRestaurant(ctx context.Context, actorID string, o *entities.Order) (bool, error) {
	restaurant, err := s.parties.GetRestaurantByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, ErrRestaurantNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get restaurant by user: %w", err)
	}
	return restaurant.ID == o.RestaurantID, nil
}

func (s *Service) ownsAsRider(ctx context.Context, actorID string, o *entities.Order) (bool, error) {
	if o.RiderID == nil {
		return false, nil
	}
	rider, err := s.parties.GetRiderByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, ErrRiderNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get rider by user: %w", err)
	}
	return rider.ID == *o.RiderID, nil
}

// fanOutStatusChange tells the customer, the owning restaurant and the
// assigned rider about the new status. Delivery failures are logged inside
// the notifier and never surface here.
func (s *Service) fanOutStatusChange(ctx context.Context, o *entities.Order) {
	s.notifier.Notify(ctx, notifier.Event{
		PartyID: o.CustomerID,
		Role:    entities.RoleUser,
		Kind:    realtime.EventOrderUpdated,
		Order:   o,
		Push:    statusPush(o),
	})
	s.notifyRestaurant(ctx, o, realtime.EventOrderUpdated)
	s.notifyRider(ctx, o, realtime.EventOrderUpdated)
}

func (s *Service) notifyRestaurant(ctx context.Context, o *entities.Order, kind realtime.EventType) {
	restaurant, err := s.parties.GetRestaurantByID(ctx, o.RestaurantID)
	if err != nil {
		s.log.Warn("resolve restaurant owner for notification",
			logger.NewField("order_id", o.ID),
			logger.NewField("restaurant_id", o.RestaurantID),
			logger.NewField("error", err),
		)
		return
	}
	s.notifier.Notify(ctx, notifier.Event{
		PartyID: restaurant.UserID,
		Role:    entities.RoleRestaurant,
		Kind:    kind,
		Order:   o,
	})
}

func (s *Service) notifyRider(ctx context.Context, o *entities.Order, kind realtime.EventType) {
	if o.RiderID == nil {
		return
	}
	rider, err := s.parties.GetRiderByID(ctx, *o.RiderID)
	if err != nil {
		s.log.Warn("resolve rider owner for notification",
			logger.NewField("order_id", o.ID),
			logger.NewField("rider_id", *o.RiderID),
			logger.NewField("error", err),
		)
		return
	}
	s.notifier.Notify(ctx, notifier.Event{
		PartyID: rider.UserID,
		Role:    entities.RoleRider,
		Kind:    kind,
		Order:   o,
	})
}

func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
