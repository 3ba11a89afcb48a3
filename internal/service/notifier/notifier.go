package notifier

import (
	"context"

	"delivery/internal/entities"
	"delivery/internal/realtime"
	"delivery/pkg/logger"
)

// Event is one status-change notification addressed to one party. Events are
// ephemeral: there is no persistence and no acknowledgment, the push channel
// is the durable fallback.
type Event struct {
	PartyID string
	Role    entities.RoleType
	Kind    realtime.EventType
	Order   *entities.Order
	Push    *PushMessage
}

type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// Notifier fans order events out over the realtime channel with a push
// fallback. Neither channel's failure reaches the caller: a notification must
// never fail the order mutation that produced it.
type Notifier struct {
	registry Registry
	push     PushGateway
	log      notifierLogger
}

func New(registry Registry, push PushGateway, log notifierLogger) *Notifier {
	return &Notifier{
		registry: registry,
		push:     push,
		log:      log.With(),
	}
}

// Notify emits over a live connection when one exists and always attempts the
// push channel when push copy is present. The two deliveries are independent.
func (n *Notifier) Notify(ctx context.Context, event Event) {
	if conn, ok := n.registry.Lookup(event.PartyID); ok {
		if err := conn.Emit(event.Kind, event.Order); err != nil {
			n.log.Warn("realtime emit failed",
				logger.NewField("party", event.PartyID),
				logger.NewField("event", event.Kind.String()),
				logger.NewField("error", err),
			)
		}
	} else {
		n.log.Warn("party not connected, realtime event skipped",
			logger.NewField("party", event.PartyID),
			logger.NewField("role", event.Role.String()),
			logger.NewField("event", event.Kind.String()),
		)
	}

	if event.Push == nil {
		return
	}

	err := n.push.SendPush(ctx, event.PartyID, event.Push.Title, event.Push.Body, event.Push.Data)
	if err != nil {
		n.log.Error("push notification failed",
			logger.NewField("party", event.PartyID),
			logger.NewField("error", err),
		)
	}
}

// BroadcastRiders emits an order to every connected rider. Placeholder
// dispatch policy: all riders, not nearby or available ones.
func (n *Notifier) BroadcastRiders(_ context.Context, kind realtime.EventType, order *entities.Order) {
	conns := n.registry.Riders()
	n.log.Info("broadcasting to riders",
		logger.NewField("event", kind.String()),
		logger.NewField("riders", len(conns)),
	)

	for _, conn := range conns {
		if err := conn.Emit(kind, order); err != nil {
			n.log.Warn("rider broadcast emit failed",
				logger.NewField("error", err),
			)
		}
	}
}
