// Package telemetry provides reactive.Observer implementations that export
// write and flush activity to Prometheus, OpenTelemetry and a log.
package telemetry

import (
	"time"

	"github.com/delaneyj/bitflush/reactive"
)

// Multi fans every notification out to each observer in order.
func Multi(observers ...reactive.Observer) reactive.Observer {
	return multi(observers)
}

type multi []reactive.Observer

func (m multi) Wrote(bit reactive.Mask, changed bool) {
	for _, o := range m {
		o.Wrote(bit, changed)
	}
}

func (m multi) Flushed(bits reactive.Mask, started time.Time, elapsed time.Duration) {
	for _, o := range m {
		o.Flushed(bits, started, elapsed)
	}
}
