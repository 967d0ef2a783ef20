package utils

import (
	"context"
	"sort"
	"sync"
	"time"
)

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Healthy   bool            `json:"healthy"`
	Services  map[string]bool `json:"services"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// HealthMonitor runs its checks periodically and keeps the latest snapshot.
type HealthMonitor struct {
	mu      sync.RWMutex
	checks  map[string]HealthCheck
	current HealthStatus
}

func NewHealthMonitor() *HealthMonitor {
	return &HealthMonitor{checks: make(map[string]HealthCheck)}
}

// Register adds a named check. Call before Start.
func (m *HealthMonitor) Register(name string, check HealthCheck) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks[name] = check
}

// GetHealthStatus returns latest stored health snapshot.
func (m *HealthMonitor) GetHealthStatus() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check runs every check once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	m.mu.RLock()
	names := make([]string, 0, len(m.checks))
	checks := make(map[string]HealthCheck, len(m.checks))
	for name, check := range m.checks {
		names = append(names, name)
		checks[name] = check
	}
	m.mu.RUnlock()
	sort.Strings(names)

	status := HealthStatus{Healthy: true, Services: make(map[string]bool, len(names))}
	for _, name := range names {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		ok := checks[name](checkCtx) == nil
		cancel()
		status.Services[name] = ok
		status.Healthy = status.Healthy && ok
	}
	status.CheckedAt = time.Now()

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start performs an immediate check, then repeats every interval until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
