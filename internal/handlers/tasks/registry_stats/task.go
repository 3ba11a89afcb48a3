package registry_stats

import (
	"context"
	"time"

	"delivery/internal/entities"
	"delivery/internal/realtime"
	"delivery/pkg/logger"
)

type Registry interface {
	Counts() (customers, restaurants, riders int)
}

// RegistryStats periodically exports the live connection counts to the
// realtime gauges.
type RegistryStats struct {
	log      logger.Logger
	registry Registry
	interval time.Duration
}

func NewRegistryStats(log logger.Logger, registry Registry, interval time.Duration) *RegistryStats {
	return &RegistryStats{
		log:      log,
		registry: registry,
		interval: interval,
	}
}

func (s *RegistryStats) TTL() time.Duration {
	return s.interval
}

func (s *RegistryStats) Do(context.Context) error {
	customers, restaurants, riders := s.registry.Counts()

	realtime.ConnectedParties.WithLabelValues(entities.RoleUser.String()).Set(float64(customers))
	realtime.ConnectedParties.WithLabelValues(entities.RoleRestaurant.String()).Set(float64(restaurants))
	realtime.ConnectedParties.WithLabelValues(entities.RoleRider.String()).Set(float64(riders))

	return nil
}

func (s *RegistryStats) Info() string {
	return "registry stats"
}
