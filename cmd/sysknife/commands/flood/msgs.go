package flood

// Message constants
const (
	MsgShort = "Write random messages to syslog at a fixed rate"

	MsgLong = `Send RATE messages per second to syslog for DURATION seconds. A DURATION
of 0 keeps going until interrupted.

Each message gets a random word as its tag, a random facility and priority,
and a body of up to nine random words from the word list.`

	MsgExample = `  sysknife flood 100 10                         # 1000 messages over 10s
  sysknife flood --words /usr/share/dict/words 5 0
  sysknife flood --network udp --addr logs:514 50 60`

	MsgFlagWords   = "Word list, one word per line (default from flood.words_file)"
	MsgFlagNetwork = "Syslog network: udp, tcp or unix; empty for the local daemon"
	MsgFlagAddr    = "Syslog address when --network is set"

	MsgErrArg = "%s must be a non-negative integer, got %q"
)
