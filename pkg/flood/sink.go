package flood

import (
	"log/syslog"

	"github.com/arthur-debert/sysknife/pkg/errors"
)

// Sink delivers messages.
type Sink interface {
	Send(msg Message) error
}

// SyslogSink opens a fresh syslog connection per message so every message
// carries its own tag and facility. An empty Network means the local daemon.
type SyslogSink struct {
	Network string
	Address string
}

func (s *SyslogSink) Send(msg Message) error {
	w, err := syslog.Dial(s.Network, s.Address, msg.Facility|msg.Priority, msg.Tag)
	if err != nil {
		return errors.Wrap(err, errors.ErrSyslogWrite, "cannot connect to syslog").
			WithDetail("network", s.Network).
			WithDetail("address", s.Address)
	}
	defer w.Close()

	if _, err := w.Write([]byte(msg.Body)); err != nil {
		return errors.Wrap(err, errors.ErrSyslogWrite, "cannot write to syslog")
	}
	return nil
}
