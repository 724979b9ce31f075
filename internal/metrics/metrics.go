// Package metrics holds the Prometheus collectors exported on /metrics.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "magnolia"

type Metrics struct {
	otpIssued        prometheus.Counter
	otpVerifications *prometheus.CounterVec
	tasksCreated     prometheus.Counter
	tasksBinned      prometheus.Counter
	tasksRestored    prometheus.Counter
	binPurged        *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		otpIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_issued_total",
			Help:      "One-time codes issued and mailed.",
		}),
		otpVerifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_verifications_total",
			Help:      "One-time code verification attempts by result.",
		}, []string{"result"}),
		tasksCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_created_total",
			Help:      "Tasks created, including imported ones.",
		}),
		tasksBinned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_binned_total",
			Help:      "Tasks moved to the recycle bin.",
		}),
		tasksRestored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_restored_total",
			Help:      "Tasks restored from the recycle bin.",
		}),
		binPurged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bin_purged_total",
			Help:      "Recycle bin entries removed for good, by reason.",
		}, []string{"reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.otpIssued,
		m.otpVerifications,
		m.tasksCreated,
		m.tasksBinned,
		m.tasksRestored,
		m.binPurged,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) OTPIssued() {
	if m == nil {
		return
	}
	m.otpIssued.Inc()
}

func (m *Metrics) OTPVerified(result string) {
	if m == nil {
		return
	}
	m.otpVerifications.WithLabelValues(result).Inc()
}

func (m *Metrics) TasksCreated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.tasksCreated.Add(float64(n))
}

func (m *Metrics) TasksBinned(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.tasksBinned.Add(float64(n))
}

func (m *Metrics) TasksRestored(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.tasksRestored.Add(float64(n))
}

func (m *Metrics) BinPurged(reason string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.binPurged.WithLabelValues(reason).Add(float64(n))
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
