package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents the current status of external services. The
// attendee registry store is the only external dependency.
type HealthStatus struct {
	RegistryStore bool      `json:"registryStore"`
	CheckedAt     time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates the
// in-memory snapshot.
func StartHealthMonitor(registryClient *redis.Client) {
	check := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		healthy := registryClient.Ping(ctx).Err() == nil

		healthMu.Lock()
		currentHealth = HealthStatus{
			RegistryStore: healthy,
			CheckedAt:     time.Now(),
		}
		healthMu.Unlock()
	}

	check()
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}
