// Package flood writes random messages to syslog at an approximate rate,
// for exercising log pipelines.
package flood

import (
	"context"
	"time"

	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/logging"
	"github.com/arthur-debert/sysknife/pkg/output"
	"github.com/rs/zerolog"
)

// DefaultSleepAdjust is subtracted from every pause to account for the
// time spent sending.
const DefaultSleepAdjust = 295 * time.Microsecond

type Flooder struct {
	sink        Sink
	gen         *Generator
	printer     *output.Printer
	logger      zerolog.Logger
	sleepAdjust time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

func New(sink Sink, gen *Generator, printer *output.Printer) *Flooder {
	return &Flooder{
		sink:        sink,
		gen:         gen,
		printer:     printer,
		logger:      logging.GetLogger("flood"),
		sleepAdjust: DefaultSleepAdjust,
		sleep:       sleepContext,
	}
}

// WithSleepAdjust overrides DefaultSleepAdjust.
func (f *Flooder) WithSleepAdjust(d time.Duration) *Flooder {
	f.sleepAdjust = d
	return f
}

// Interval is the pause between two messages at rate messages per second.
func (f *Flooder) Interval(rate int) time.Duration {
	d := time.Second/time.Duration(rate) - f.sleepAdjust
	if d < 0 {
		return 0
	}
	return d
}

// Run sends rate*duration messages, or runs until ctx is cancelled when
// duration is 0. Cancellation ends the run normally; a failed send aborts
// it. The number of messages sent is returned either way.
func (f *Flooder) Run(ctx context.Context, rate, duration int) (int, error) {
	if rate <= 0 {
		return 0, errors.Newf(errors.ErrUsage, "message rate must be positive, got %d", rate)
	}
	if duration < 0 {
		return 0, errors.Newf(errors.ErrUsage, "duration must not be negative, got %d", duration)
	}

	f.printer.Printf("write %d messages/s for %d sec", rate, duration)

	total := rate * duration
	interval := f.Interval(rate)
	sent := 0

	for duration == 0 || sent < total {
		if ctx.Err() != nil {
			break
		}

		msg := f.gen.Next()
		f.logger.Trace().
			Str("tag", msg.Tag).
			Int("facility", int(msg.Facility)).
			Int("priority", int(msg.Priority)).
			Msg("writing message")

		if err := f.sink.Send(msg); err != nil {
			f.printer.Printf("sent %d messages", sent)
			return sent, err
		}
		sent++

		if err := f.sleep(ctx, interval); err != nil {
			break
		}
	}

	f.printer.Printf("sent %d messages", sent)
	return sent, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
