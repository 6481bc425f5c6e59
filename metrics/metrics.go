// Package metrics provides Prometheus observability metrics for the climate parser.
// The parser itself stays pure; callers record outcomes here after each Parse.
package metrics

import (
	"time"

	customerrors "climate-parser/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// ParserRecordsTotal tracks total records successfully parsed.
var ParserRecordsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "records_total",
	Help:      "Total climate records successfully parsed",
})

// ParserErrorsTotal tracks parse errors by error type.
var ParserErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "errors_total",
	Help:      "Total parse errors by error type",
}, []string{"error_type"})

// ParserDurationSeconds tracks time spent in a single Parse call.
var ParserDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "parser",
	Name:      "duration_seconds",
	Help:      "Time taken to parse a single input line",
	Buckets:   []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001},
})

// ParserInputBytes tracks the size of input lines handed to the parser.
var ParserInputBytes = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "parser",
	Name:      "input_bytes",
	Help:      "Length in bytes of each input line",
	Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
})

// ObserveParse records the outcome of one Parse call.
// Errors that are not a *errors.ParseError are counted as "unknown".
func ObserveParse(input string, err error, elapsed time.Duration) {
	ParserDurationSeconds.Observe(elapsed.Seconds())
	ParserInputBytes.Observe(float64(len(input)))

	if err == nil {
		ParserRecordsTotal.Inc()
		return
	}

	label := "unknown"
	if kind, ok := customerrors.KindOf(err); ok {
		label = kind.String()
	}
	ParserErrorsTotal.WithLabelValues(label).Inc()
}
