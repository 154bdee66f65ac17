package epoch

// Message constants
const (
	MsgShort   = "Convert seconds since the epoch to calendar time"
	MsgLong    = "Print the calendar time of every all-digit argument. Other arguments are\nreported as skipped. Times are shown in UTC unless --local is given."
	MsgExample = `  sysknife epoch 1385899200
  sysknife epoch --local 0 1700000000`

	MsgFlagLocal  = "Show times in the local time zone (default from epoch.local)"
	MsgFlagLayout = "Go time layout for the output (default from epoch.layout)"
)
