package util

import (
	"log/slog"
	"time"
)

// Trace logs how long a step took. Use as: defer util.Trace("step")().
func Trace(name string) func() {
	start := time.Now()
	return func() {
		slog.Info("trace", "name", name, "elapsed", time.Since(start))
	}
}
