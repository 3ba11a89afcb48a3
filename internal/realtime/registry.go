package realtime

import (
	"sync"

	"delivery/internal/entities"
)

// Registry maps authenticated party ids to their live connections. It is
// strictly per-process state: connections do not survive a restart and a
// multi-instance deployment needs an external pub/sub layer instead.
//
// Each role class keeps its own map on top of the combined index, matching
// how notifications are addressed (customers and restaurants by id, riders
// also as a broadcast group).
type Registry struct {
	mu sync.RWMutex

	parties     map[string]Emitter
	customers   map[string]Emitter
	restaurants map[string]Emitter
	riders      map[string]Emitter

	// byConn resolves the party at disconnect time, when the connection
	// handle is the only fact available.
	byConn map[Emitter]string
}

func NewRegistry() *Registry {
	return &Registry{
		parties:     make(map[string]Emitter),
		customers:   make(map[string]Emitter),
		restaurants: make(map[string]Emitter),
		riders:      make(map[string]Emitter),
		byConn:      make(map[Emitter]string),
	}
}

// Register binds a connection to an authenticated party. A party registering
// again replaces its previous connection: last registration wins, the stale
// connection stays open but no longer receives targeted events.
func (r *Registry) Register(partyID string, role entities.RoleType, conn Emitter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.parties[partyID]; ok && prev != conn {
		delete(r.byConn, prev)
	}

	r.parties[partyID] = conn
	r.byConn[conn] = partyID

	switch role {
	case entities.RoleRestaurant:
		r.restaurants[partyID] = conn
	case entities.RoleRider:
		r.riders[partyID] = conn
	default:
		r.customers[partyID] = conn
	}
}

// Unregister removes a connection from every map it could belong to. The
// same-connection guard keeps a stale connection's disconnect from evicting
// the party's replacement registration.
func (r *Registry) Unregister(conn Emitter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	partyID, ok := r.byConn[conn]
	if !ok {
		return
	}
	delete(r.byConn, conn)

	for _, m := range []map[string]Emitter{r.parties, r.customers, r.restaurants, r.riders} {
		if m[partyID] == conn {
			delete(m, partyID)
		}
	}
}

func (r *Registry) Lookup(partyID string) (Emitter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.parties[partyID]
	return conn, ok
}

// Riders snapshots every connected rider for broadcast fan-out.
func (r *Registry) Riders() []Emitter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := make([]Emitter, 0, len(r.riders))
	for _, conn := range r.riders {
		conns = append(conns, conn)
	}
	return conns
}

// Counts reports connected parties per role class, for metrics.
func (r *Registry) Counts() (customers, restaurants, riders int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.customers), len(r.restaurants), len(r.riders)
}
