package config

// Message constants
const (
	MsgShort   = "Show the effective configuration"
	MsgLong    = "Print the configuration after merging the built-in defaults, the config\nfile, SYSKNIFE_* environment variables and --set overrides.\n\nWith --defaults, print the commented default file instead, ready to be\nsaved as a starting point. --init saves it to the config file location\nunless a file is already there."
	MsgExample = `  sysknife config
  sysknife config --defaults > ~/.config/sysknife/config.toml
  sysknife config --init
  SYSKNIFE_LINKS_NUMBER=5 sysknife config`

	MsgFlagDefaults = "Print the commented default configuration file"
	MsgFlagInit     = "Write the commented defaults to the config file path"

	MsgInitDone      = "wrote %s"
	MsgErrInitExists = "%s already exists"
)
