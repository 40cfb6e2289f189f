package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCommentOperation(t *testing.T) {
	initialSuccess := testutil.ToFloat64(CommentOperationsTotal.WithLabelValues("create", ResultSuccess))
	initialNotFound := testutil.ToFloat64(CommentOperationsTotal.WithLabelValues("create", ResultNotFound))

	ObserveCommentOperation("create", ResultSuccess, NewTimer())
	ObserveCommentOperation("create", ResultSuccess, NewTimer())
	ObserveCommentOperation("create", ResultNotFound, NewTimer())

	assert.Equal(t, initialSuccess+2, testutil.ToFloat64(CommentOperationsTotal.WithLabelValues("create", ResultSuccess)))
	assert.Equal(t, initialNotFound+1, testutil.ToFloat64(CommentOperationsTotal.WithLabelValues("create", ResultNotFound)))

	count := testutil.CollectAndCount(CommentOperationDuration)
	assert.GreaterOrEqual(t, count, 1, "CommentOperationDuration should have observations")
}

func TestObserveCommentOperationSeparatesOperations(t *testing.T) {
	initialDelete := testutil.ToFloat64(CommentOperationsTotal.WithLabelValues("delete", ResultBadRequest))
	initialUpdate := testutil.ToFloat64(CommentOperationsTotal.WithLabelValues("update", ResultBadRequest))

	ObserveCommentOperation("delete", ResultBadRequest, NewTimer())

	assert.Equal(t, initialDelete+1, testutil.ToFloat64(CommentOperationsTotal.WithLabelValues("delete", ResultBadRequest)))
	assert.Equal(t, initialUpdate, testutil.ToFloat64(CommentOperationsTotal.WithLabelValues("update", ResultBadRequest)))
}

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestDBConnectionPoolSizeMetric(t *testing.T) {
	DBConnectionPoolSize.WithLabelValues("total").Set(10)
	DBConnectionPoolSize.WithLabelValues("idle").Set(5)
	DBConnectionPoolSize.WithLabelValues("in_use").Set(5)

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()

	time.Sleep(20 * time.Millisecond)

	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_duration_histogram",
		Help:    "Test histogram for timer duration",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})
	prometheus.MustRegister(testHistogram)
	defer prometheus.Unregister(testHistogram)

	timer.ObserveDuration(testHistogram)

	count := testutil.CollectAndCount(testHistogram)
	assert.Equal(t, 1, count, "Histogram should have exactly one observation")
}

func TestTimerElapsed(t *testing.T) {
	timer := NewTimer()
	time.Sleep(10 * time.Millisecond)

	assert.GreaterOrEqual(t, timer.Elapsed(), 0.01)
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
	mockProvider := &mockPoolStatsProvider{
		totalConns:    10,
		idleConns:     4,
		acquiredConns: 6,
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)
	collector.Start(10 * time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	collector.Stop()

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(4), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(6), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

// mockPoolStats implements PoolStats for testing
type mockPoolStats struct {
	total    int32
	idle     int32
	acquired int32
}

func (m *mockPoolStats) TotalConns() int32    { return m.total }
func (m *mockPoolStats) IdleConns() int32     { return m.idle }
func (m *mockPoolStats) AcquiredConns() int32 { return m.acquired }

// mockPoolStatsProvider implements PoolStatsProvider for testing
type mockPoolStatsProvider struct {
	totalConns    int32
	idleConns     int32
	acquiredConns int32
}

func (m *mockPoolStatsProvider) Stat() PoolStats {
	return &mockPoolStats{
		total:    m.totalConns,
		idle:     m.idleConns,
		acquired: m.acquiredConns,
	}
}

func TestPoolStatsCollectorMultipleCollections(t *testing.T) {
	mockProvider := &countingPoolStatsProvider{}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)
	collector.Start(5 * time.Millisecond)

	time.Sleep(25 * time.Millisecond)

	collector.Stop()

	assert.GreaterOrEqual(t, mockProvider.calls, 2, "Should collect multiple times")
}

type countingPoolStatsProvider struct {
	calls int
}

func (m *countingPoolStatsProvider) Stat() PoolStats {
	m.calls++
	return &mockPoolStats{
		total:    int32(10 + m.calls),
		idle:     5,
		acquired: int32(5 + m.calls),
	}
}

func TestHTTPRequestsInFlightGauge(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsInFlight)

	HTTPRequestsInFlight.Inc()
	HTTPRequestsInFlight.Inc()
	assert.Equal(t, initial+2, testutil.ToFloat64(HTTPRequestsInFlight))

	HTTPRequestsInFlight.Dec()
	HTTPRequestsInFlight.Dec()
	assert.Equal(t, initial, testutil.ToFloat64(HTTPRequestsInFlight))
}
