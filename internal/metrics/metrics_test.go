package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveQuery(t *testing.T) {
	m := NewMetricsRegistry(prometheus.NewRegistry())

	m.ObserveQuery("character_by_id", time.Now(), nil)
	m.ObserveQuery("character_by_id", time.Now(), errors.New("boom"))
	m.ObserveQuery("character_by_id", time.Now(), nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("character_by_id", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("character_by_id", "error")))
}

func TestObserveCache(t *testing.T) {
	m := NewMetricsRegistry(prometheus.NewRegistry())

	m.ObserveCache("ADMIN_ROLE_", true)
	m.ObserveCache("ADMIN_ROLE_", false)
	m.ObserveCache("ADMIN_ROLE_", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHitsTotal.WithLabelValues("ADMIN_ROLE_")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheMissesTotal.WithLabelValues("ADMIN_ROLE_")))
}

func TestNilRegistryIsNoop(t *testing.T) {
	var m *MetricsRegistry
	m.ObserveQuery("x", time.Now(), nil)
	m.ObserveCache("x", true)
}
