package log

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	sinkConsole = "console"
	sinkFile    = "file"
)

var (
	linesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradelog_lines_total",
			Help: "Log lines written per severity and sink",
		},
		[]string{"level", "sink"},
	)

	suppressedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradelog_suppressed_total",
			Help: "Log calls dropped by the severity threshold",
		},
		[]string{"level"},
	)

	sinkOpenFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tradelog_sink_open_failures_total",
			Help: "Failed attempts to open the log file",
		},
	)

	writeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradelog_write_errors_total",
			Help: "Swallowed write errors per sink",
		},
		[]string{"sink"},
	)

	malformedMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tradelog_malformed_messages_total",
			Help: "Log calls whose format string did not match its arguments",
		},
	)
)

func recordLine(level Severity, sink string, err error) {
	if err != nil {
		writeErrors.WithLabelValues(sink).Inc()
		return
	}
	linesTotal.WithLabelValues(level.String(), sink).Inc()
}
