package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ConnectionConnecting = 0
	ConnectionStreaming  = 1
	ConnectionTerminated = 2
)

var (
	FragmentsReceivedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "helog_fragments_received_total",
			Help: "Total number of text fragments delivered by the transport (count)",
		},
	)

	MessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helog_messages_total",
			Help: "Total number of assembled messages by outcome (count)",
		},
		[]string{"status"},
	)

	MessageSizeBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "helog_message_size_bytes",
			Help:    "Size of assembled messages in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 2, 10),
		},
	)

	RenderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "helog_render_duration_ms",
			Help:    "Decode, filter and format duration in milliseconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
		},
		[]string{"status"},
	)

	ConnectionState = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "helog_connection_state",
			Help: "Connection state (0=connecting, 1=streaming, 2=terminated) (state code)",
		},
	)

	FilterEvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helog_filter_evaluations_total",
			Help: "Total number of filter evaluations by result (count)",
		},
		[]string{"result"},
	)
)

// RegisterStreamMetrics registers every collector with reg. Collectors are usable
// without registration, so tests never need to call this.
func RegisterStreamMetrics(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		FragmentsReceivedTotal,
		MessagesTotal,
		MessageSizeBytes,
		RenderDuration,
		ConnectionState,
		FilterEvaluationsTotal,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func IncFragmentsReceived() {
	FragmentsReceivedTotal.Inc()
}

func IncMessages(status string) {
	MessagesTotal.WithLabelValues(status).Inc()
}

func ObserveMessageSize(sizeBytes int) {
	MessageSizeBytes.Observe(float64(sizeBytes))
}

func ObserveRenderDuration(duration time.Duration, status string) {
	RenderDuration.WithLabelValues(status).Observe(float64(duration.Microseconds()) / 1000)
}

func SetConnectionState(state int) {
	ConnectionState.Set(float64(state))
}

func IncFilterEvaluation(result string) {
	FilterEvaluationsTotal.WithLabelValues(result).Inc()
}
