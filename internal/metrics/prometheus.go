package metrics

import (
	"sync"

	"github.com/Willfwalker/Discord-Bot/types"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing
// a PrometheusCollector never panics on duplicate registration until it is
// actually exercised.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	stateTransitions     *prometheus.CounterVec
	commands             *prometheus.CounterVec
	distributions        prometheus.Counter
	membersDistributed   prometheus.Counter
	distributionDuration prometheus.Histogram
	podSize              prometheus.Histogram
	channelsCreated      *prometheus.CounterVec
	channelsDeleted      *prometheus.CounterVec
	relocations          *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "podbot" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "podbot"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func result(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.stateTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "bot",
			Name:      "state_transitions_total",
			Help:      "Total bot lifecycle state transitions.",
		}, []string{"from", "to"})

		p.commands = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "bot",
			Name:      "commands_total",
			Help:      "Total handled commands by name and outcome.",
		}, []string{"command", "outcome"})

		p.distributions = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "distribution",
			Name:      "runs_total",
			Help:      "Total successful distribution runs.",
		})

		p.membersDistributed = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "distribution",
			Name:      "members_total",
			Help:      "Total members distributed into pods.",
		})

		p.distributionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "distribution",
			Name:      "duration_seconds",
			Help:      "Duration of distribution commands including channel setup and moves.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms .. ~25s
		})

		p.podSize = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "distribution",
			Name:      "pod_size",
			Help:      "Number of members per pod.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 8, 10, 15, 20},
		})

		p.channelsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "channel",
			Name:      "created_total",
			Help:      "Pod channel creation attempts by result.",
		}, []string{"result"})

		p.channelsDeleted = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "channel",
			Name:      "deleted_total",
			Help:      "Pod channel deletion attempts by result.",
		}, []string{"result"})

		p.relocations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "channel",
			Name:      "relocations_total",
			Help:      "Member move attempts by result.",
		}, []string{"result"})

		p.reg.MustRegister(p.stateTransitions)
		p.reg.MustRegister(p.commands)
		p.reg.MustRegister(p.distributions)
		p.reg.MustRegister(p.membersDistributed)
		p.reg.MustRegister(p.distributionDuration)
		p.reg.MustRegister(p.podSize)
		p.reg.MustRegister(p.channelsCreated)
		p.reg.MustRegister(p.channelsDeleted)
		p.reg.MustRegister(p.relocations)
	})
}

// RecordStateTransition counts a lifecycle transition.
func (p *PrometheusCollector) RecordStateTransition(from, to types.State, _ /* duration */ float64) {
	p.ensureRegistered()
	p.stateTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

// RecordCommand counts a handled command by outcome.
func (p *PrometheusCollector) RecordCommand(command string, outcome string) {
	p.ensureRegistered()
	p.commands.WithLabelValues(command, outcome).Inc()
}

// RecordDistribution counts a successful run and observes its duration.
func (p *PrometheusCollector) RecordDistribution(_ /* pods */, members int, duration float64) {
	p.ensureRegistered()
	p.distributions.Inc()
	p.membersDistributed.Add(float64(members))
	p.distributionDuration.Observe(duration)
}

// RecordPodSize observes the size of one pod.
func (p *PrometheusCollector) RecordPodSize(size int) {
	p.ensureRegistered()
	p.podSize.Observe(float64(size))
}

// RecordChannelCreated counts a channel creation attempt.
func (p *PrometheusCollector) RecordChannelCreated(success bool) {
	p.ensureRegistered()
	p.channelsCreated.WithLabelValues(result(success)).Inc()
}

// RecordChannelDeleted counts a channel deletion attempt.
func (p *PrometheusCollector) RecordChannelDeleted(success bool) {
	p.ensureRegistered()
	p.channelsDeleted.WithLabelValues(result(success)).Inc()
}

// RecordRelocation counts a member move attempt.
func (p *PrometheusCollector) RecordRelocation(success bool) {
	p.ensureRegistered()
	p.relocations.WithLabelValues(result(success)).Inc()
}
