package metrics

import "time"

// Shuffle operations.
const (
	OperationCount  = "count"
	OperationSample = "sample"
)

// Shuffle results.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
)

// RecordShuffle records a completed shuffle operation.
// inputLen and pageSize are only observed for accepted inputs.
func RecordShuffle(operation, result string, inputLen, pageSize int) {
	ShuffleTotal.WithLabelValues(operation, result).Inc()
	if result != ResultOK {
		return
	}
	InputLength.Observe(float64(inputLen))
	if operation == OperationSample {
		PageSize.Observe(float64(pageSize))
	}
}

// RecordShuffleDuration records the time spent in the core for one operation.
func RecordShuffleDuration(operation string, duration time.Duration) {
	ShuffleDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
