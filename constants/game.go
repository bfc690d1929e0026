package constants

import "time"

// Loop timing
const (
	// TickInterval is the idle production cadence
	TickInterval = 50 * time.Millisecond

	// EventBufferSize is the capacity of the terminal event channel
	EventBufferSize = 256

	// MetricSmoothing is the EMA weight for tick interval metrics
	MetricSmoothing = 0.1
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "loc-idle.log"

	// MaxLogSize triggers rotation of the log file on startup
	MaxLogSize = 10 * 1024 * 1024
)
