package services

import (
	"context"
	"testing"
	"time"

	"fleet-waitlist/backend/internal/access"
	"fleet-waitlist/backend/internal/common"
	"fleet-waitlist/backend/internal/constants"
	"fleet-waitlist/backend/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessService_LoadAccessKeys(t *testing.T) {
	store := rolesByID(map[int64]string{1: "HQ-FC"})
	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	svc := NewAccessService(store, mapExpander{"HQ-FC": {access.KeyHQFC}}, common.NewCacheService(time.Minute, time.Minute), time.Minute, m)

	for i := 0; i < 3; i++ {
		keys, err := svc.LoadAccessKeys(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, keys.Contains(access.KeyHQFC))
	}

	assert.Equal(t, 1, store.calls)
	pattern := string(constants.CachePrefixAdminRole)
	assert.Equal(t, 2.0, promtestutil.ToFloat64(m.CacheHitsTotal.WithLabelValues(pattern)))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.CacheMissesTotal.WithLabelValues(pattern)))
}

func TestAccessService_NoAdminRecordIsCached(t *testing.T) {
	store := rolesByID(nil)
	svc := NewAccessService(store, mapExpander{}, common.NewCacheService(time.Minute, time.Minute), time.Minute, nil)

	for i := 0; i < 2; i++ {
		keys, err := svc.LoadAccessKeys(context.Background(), 7)
		require.NoError(t, err)
		assert.Zero(t, keys.Size())
	}
	assert.Equal(t, 1, store.calls)
}

func TestAccessService_Errors(t *testing.T) {
	unknown := NewAccessService(rolesByID(map[int64]string{1: "Janitor"}), mapExpander{}, common.NewCacheService(time.Minute, time.Minute), time.Minute, nil)
	_, err := unknown.LoadAccessKeys(context.Background(), 1)
	assert.Equal(t, constants.ErrCodeDataIntegrity, ErrorCode(err))

	failing := &mockAdminStore{getRoleFunc: func(context.Context, int64) (*string, error) { return nil, errStoreDown }}
	down := NewAccessService(failing, mapExpander{}, common.NewCacheService(time.Minute, time.Minute), time.Minute, nil)
	_, err = down.LoadAccessKeys(context.Background(), 1)
	assert.Equal(t, constants.ErrCodeStoreFailure, ErrorCode(err))
}

func TestAccessService_StoreFailureIsNotCached(t *testing.T) {
	fail := true
	store := &mockAdminStore{getRoleFunc: func(context.Context, int64) (*string, error) {
		if fail {
			return nil, errStoreDown
		}
		role := "HQ-FC"
		return &role, nil
	}}
	svc := NewAccessService(store, mapExpander{"HQ-FC": {access.KeyHQFC}}, common.NewCacheService(time.Minute, time.Minute), time.Minute, nil)

	_, err := svc.LoadAccessKeys(context.Background(), 1)
	assert.Equal(t, constants.ErrCodeStoreFailure, ErrorCode(err))

	fail = false
	keys, err := svc.LoadAccessKeys(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, keys.Contains(access.KeyHQFC))
	assert.Equal(t, 2, store.calls)
}
