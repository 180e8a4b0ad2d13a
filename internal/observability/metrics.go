package observability

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/professionals-backend/internal/platform/envutil"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

// Pinger reports whether an optional dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Metrics struct {
	apiRequests *CounterVec
	apiLatency  *HistogramVec
	apiInflight *Gauge

	aggregateOps       *CounterVec
	aggregateLatency   *HistogramVec
	aggregateConflicts *CounterVec
	aggregateLimits    *CounterVec

	dbPool  *GaugeVec
	redisUp *Gauge

	db    *gorm.DB
	redis Pinger
	log   *logger.Logger
}

var (
	initOnce sync.Once
	instance *Metrics
)

func Enabled() bool {
	return envutil.Bool("METRICS_ENABLED", false)
}

// Init builds the process-wide registry, or returns nil when metrics are
// disabled. All Metrics methods are safe on a nil receiver.
func Init(log *logger.Logger) *Metrics {
	if !Enabled() {
		return nil
	}
	initOnce.Do(func() {
		instance = newMetrics(log)
	})
	return instance
}

func newMetrics(log *logger.Logger) *Metrics {
	if log == nil {
		log = logger.Nop()
	}
	return &Metrics{
		apiRequests: NewCounterVec("pro_api_requests_total", "API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"pro_api_request_duration_seconds",
			"API request latency in seconds by method/route/status.",
			[]string{"method", "route", "status"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		),
		apiInflight: NewGauge("pro_api_inflight_requests", "In-flight API requests."),

		aggregateOps: NewCounterVec("pro_aggregate_operations_total", "Aggregate writes by operation/status.", []string{"op", "status"}),
		aggregateLatency: NewHistogramVec(
			"pro_aggregate_operation_duration_seconds",
			"Aggregate write latency in seconds by operation.",
			[]string{"op"},
			nil,
		),
		aggregateConflicts: NewCounterVec("pro_aggregate_conflicts_total", "Duplicate and unique-index conflicts by operation.", []string{"op"}),
		aggregateLimits:    NewCounterVec("pro_aggregate_limit_exceeded_total", "Association cap rejections by operation.", []string{"op"}),

		dbPool:  NewGaugeVec("pro_db_pool", "database/sql pool stats sampled at scrape time.", []string{"stat"}),
		redisUp: NewGauge("pro_redis_up", "1 when Redis answered the last scrape-time ping."),

		log: log.With("component", "Metrics"),
	}
}

// Track registers the stores sampled on every scrape. Either may be nil.
func (m *Metrics) Track(db *gorm.DB, redis Pinger) {
	if m == nil {
		return
	}
	m.db = db
	m.redis = redis
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.Inc(method, route, status)
	m.apiLatency.Observe(dur.Seconds(), method, route, status)
}

func (m *Metrics) APIInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) APIInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

// ObserveOperation, IncConflict and IncLimitExceeded make *Metrics usable as
// aggregate hooks.
func (m *Metrics) ObserveOperation(name, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.aggregateOps.Inc(name, status)
	m.aggregateLatency.Observe(dur.Seconds(), name)
}

func (m *Metrics) IncConflict(name string) {
	if m == nil {
		return
	}
	m.aggregateConflicts.Inc(name)
}

func (m *Metrics) IncLimitExceeded(name string) {
	if m == nil {
		return
	}
	m.aggregateLimits.Inc(name)
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	m.sample(r.Context())
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	if err := m.WritePrometheus(w); err != nil {
		m.log.Warn("metrics write failed", "error", err)
	}
}

func (m *Metrics) sample(ctx context.Context) {
	if m.db != nil {
		if sqlDB, err := m.db.DB(); err == nil {
			stats := sqlDB.Stats()
			m.dbPool.Set(float64(stats.OpenConnections), "open_connections")
			m.dbPool.Set(float64(stats.InUse), "in_use")
			m.dbPool.Set(float64(stats.Idle), "idle")
			m.dbPool.Set(float64(stats.WaitCount), "wait_count")
			m.dbPool.Set(stats.WaitDuration.Seconds(), "wait_duration_seconds")
		}
	}
	if m.redis != nil {
		pingCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if err := m.redis.Ping(pingCtx); err != nil {
			m.redisUp.Set(0)
		} else {
			m.redisUp.Set(1)
		}
	}
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	writers := []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests, m.apiLatency, m.apiInflight,
		m.aggregateOps, m.aggregateLatency, m.aggregateConflicts, m.aggregateLimits,
		m.dbPool,
	}
	if m.redis != nil {
		writers = append(writers, m.redisUp)
	}
	for _, wr := range writers {
		if err := wr.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

// StatusLabel renders an HTTP status for metric labels.
func StatusLabel(code int) string {
	return strconv.Itoa(code)
}
