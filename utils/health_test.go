package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthMonitorCheck(t *testing.T) {
	m := NewHealthMonitor()
	m.Register("store", func(context.Context) error { return nil })

	status := m.Check(context.Background())
	assert.True(t, status.Healthy)
	assert.Equal(t, map[string]bool{"store": true}, status.Services)

	m.Register("redis", func(context.Context) error { return errors.New("connection refused") })
	status = m.Check(context.Background())
	assert.False(t, status.Healthy)
	assert.False(t, status.Services["redis"])
	assert.True(t, status.Services["store"])

	assert.Equal(t, status, m.GetHealthStatus())
}
