package telemetry

import (
	"log"
	"time"

	"github.com/delaneyj/bitflush/reactive"
)

// Logger traces writes and flushes through a *log.Logger.
type Logger struct {
	l      *log.Logger
	prefix string
	writes bool
}

var _ reactive.Observer = (*Logger)(nil)

// NewLogger logs flushes, and unchanged/changed writes too when writes is
// set. A nil logger means log.Default().
func NewLogger(l *log.Logger, component string, writes bool) *Logger {
	if l == nil {
		l = log.Default()
	}
	return &Logger{l: l, prefix: "[" + component + "] ", writes: writes}
}

func (lg *Logger) Wrote(bit reactive.Mask, changed bool) {
	if !lg.writes {
		return
	}
	if changed {
		lg.l.Printf("%swrite %#b changed", lg.prefix, uint64(bit))
		return
	}
	lg.l.Printf("%swrite %#b unchanged, skipped", lg.prefix, uint64(bit))
}

func (lg *Logger) Flushed(bits reactive.Mask, started time.Time, elapsed time.Duration) {
	lg.l.Printf("%sflush bits=%#b took %v", lg.prefix, uint64(bits), elapsed)
}
