// Package epoch converts seconds-since-the-epoch arguments to calendar time.
package epoch

import (
	"strconv"
	"time"

	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/output"
)

// DefaultLayout prints e.g. 2013-12-01T12:00:00+00:00.
const DefaultLayout = "2006-01-02T15:04:05-07:00"

// MaxSeconds is 9999-12-31T23:59:59Z, the last instant a four digit year
// can show.
const MaxSeconds = 253402300799

// IsTimestamp reports whether arg is made of unsigned decimal digits only.
func IsTimestamp(arg string) bool {
	if arg == "" {
		return false
	}
	for _, r := range arg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Parse converts an all-digit argument. Anything else, or a value past
// MaxSeconds, is an ErrInvalidInput.
func Parse(arg string) (time.Time, error) {
	if !IsTimestamp(arg) {
		return time.Time{}, errors.Newf(errors.ErrInvalidInput, "%q is not a timestamp", arg)
	}
	secs, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || secs > MaxSeconds {
		return time.Time{}, errors.Newf(errors.ErrInvalidInput, "%s is out of range", arg).
			WithDetail("max", MaxSeconds)
	}
	return time.Unix(secs, 0), nil
}

type Converter struct {
	Layout   string
	Location *time.Location
}

// NewConverter uses DefaultLayout when layout is empty and UTC when loc is nil.
func NewConverter(layout string, loc *time.Location) *Converter {
	if layout == "" {
		layout = DefaultLayout
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Converter{Layout: layout, Location: loc}
}

// Format renders arg in the converter's layout and zone.
func (c *Converter) Format(arg string) (string, error) {
	t, err := Parse(arg)
	if err != nil {
		return "", err
	}
	return t.In(c.Location).Format(c.Layout), nil
}

// Print writes one line per argument: the converted time, or
// "skipping ARG" for anything that is not all digits. Digit strings past
// MaxSeconds get an error line and make Print fail once every argument
// has been handled.
func (c *Converter) Print(p *output.Printer, args []string) error {
	if len(args) == 0 {
		return errors.New(errors.ErrUsage, "no timestamp(s) given")
	}
	failed := 0
	for _, arg := range args {
		if !IsTimestamp(arg) {
			p.Printf("skipping %s", arg)
			continue
		}
		s, err := c.Format(arg)
		if err != nil {
			p.Errorf("%s is out of range", arg)
			failed++
			continue
		}
		p.Printf("%s", s)
	}
	if failed > 0 {
		return errors.Newf(errors.ErrInvalidInput, "%d timestamp(s) could not be converted", failed)
	}
	return nil
}
