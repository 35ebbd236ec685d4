package timing

import (
	"time"

	"newsgraph/pkg/logger"
)

// Observation measures one operation from construction to Done.
type Observation struct {
	label string
	start time.Time
}

// Start begins measuring the labelled operation.
func Start(label string) *Observation {
	return &Observation{label: label, start: time.Now()}
}

// Done logs the elapsed time in milliseconds together with the given
// key/value pairs and returns the duration.
func (o *Observation) Done(keyvals ...any) time.Duration {
	elapsed := time.Since(o.start)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, keyvals...)
	args = append(args, "duration_ms", elapsed.Milliseconds())
	logger.Debug("[Timing] "+o.label, args...)
	return elapsed
}
