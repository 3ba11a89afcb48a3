package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"delivery/internal/dto"
	"delivery/internal/entities"
	"delivery/internal/pkg/middlewares/auth"
	"delivery/internal/service/order"
	"delivery/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if identity.Role != entities.RoleUser {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := order.CreateOrderRequest{
		CustomerID:   identity.UserID,
		RestaurantID: orderCreateDTO.RestaurantID,
	}
	for _, it := range orderCreateDTO.Items {
		req.Items = append(req.Items, order.CreateOrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
		})
	}

	created, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingItems),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrMenuItemNotFound):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrRestaurantNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromOrder(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
