package metrics

import "github.com/prometheus/client_golang/prometheus"

// InsightMetrics tracks the outbound text-generation calls.
type InsightMetrics struct {
	success      prometheus.Counter
	failure      prometheus.Counter
	fallback     prometheus.Counter
	breakerState prometheus.Gauge
}

// NewInsightMetrics registers the insight metrics on the provided registerer.
func NewInsightMetrics(reg prometheus.Registerer) *InsightMetrics {
	if reg == nil {
		return &InsightMetrics{}
	}
	success := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insight_requests_success_total",
		Help: "Successful text-generation calls.",
	})
	failure := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insight_requests_failure_total",
		Help: "Failed text-generation calls.",
	})
	fallback := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insight_fallback_total",
		Help: "Insight responses served from the fixed fallback text.",
	})
	breakerState := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "insight_breaker_state",
		Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open.",
	})
	reg.MustRegister(success, failure, fallback, breakerState)
	return &InsightMetrics{
		success:      success,
		failure:      failure,
		fallback:     fallback,
		breakerState: breakerState,
	}
}

// IncSuccess counts a successful generation call.
func (i *InsightMetrics) IncSuccess() {
	if i == nil || i.success == nil {
		return
	}
	i.success.Inc()
}

// IncFailure counts a failed generation call.
func (i *InsightMetrics) IncFailure() {
	if i == nil || i.failure == nil {
		return
	}
	i.failure.Inc()
}

// IncFallback counts a response served from the fallback text.
func (i *InsightMetrics) IncFallback() {
	if i == nil || i.fallback == nil {
		return
	}
	i.fallback.Inc()
}

// SetBreakerState publishes the circuit breaker state.
func (i *InsightMetrics) SetBreakerState(state float64) {
	if i == nil || i.breakerState == nil {
		return
	}
	i.breakerState.Set(state)
}
