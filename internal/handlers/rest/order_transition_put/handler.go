package order_transition_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"delivery/internal/dto"
	"delivery/internal/entities"
	"delivery/internal/pkg/middlewares/auth"
	"delivery/internal/service/order"
	"delivery/pkg/logger"
)

// Handler moves an order to a fixed target status. The router mounts one
// instance per shortcut route: ready-for-pickup, pickup and deliver.
type Handler struct {
	log     handlerLogger
	service Service
	target  entities.OrderStatusType
	role    entities.RoleType
}

func New(log handlerLogger, service Service, target entities.OrderStatusType, role entities.RoleType) *Handler {
	handlerLog := log.With(
		logger.NewField("target_status", target.String()),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
		target:  target,
		role:    role,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if identity.Role != h.role {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	orderID := mux.Vars(r)["id"]

	updated, err := h.service.UpdateOrderStatus(r.Context(), *identity, orderID, h.target)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrForbidden), errors.Is(err, order.ErrInvalidRole):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrder(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
