package sysknife

// Short messages (one-liners)
const (
	MsgRootShort = "Small system administration tools"

	MsgRootLong = `sysknife bundles a few small administration helpers:

  links   fill a directory with symlinks to a random sample of files
  flood   write random messages to syslog at a fixed rate
  epoch   convert seconds since the epoch to calendar time

Defaults come from $XDG_CONFIG_HOME/sysknife/config.toml and SYSKNIFE_*
environment variables; see "sysknife config".`

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSet     = "Override a config value, e.g. --set links.number=5 (repeatable)"
	MsgFlagNoColor = "Disable colored output"

	MsgErrNoCommand = "no command specified"
)

// MsgUsageTemplate is cobra's usage template with styled section headings.
const MsgUsageTemplate = `{{boldUpper "usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if .HasExample}}

{{boldUpper "examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) .IsAvailableCommand)}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "global flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
