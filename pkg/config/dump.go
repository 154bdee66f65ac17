package config

import (
	"github.com/arthur-debert/sysknife/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Durations are written in their string form so the output can be fed back
// in as a config file.
type dumpFile struct {
	Links struct {
		Number        int    `toml:"number"`
		Naming        string `toml:"naming"`
		Finder        string `toml:"finder"`
		FindBinary    string `toml:"find_binary"`
		SearchTimeout string `toml:"search_timeout"`
	} `toml:"links"`
	Flood struct {
		WordsFile   string `toml:"words_file"`
		Network     string `toml:"network"`
		Address     string `toml:"address"`
		SleepAdjust string `toml:"sleep_adjust"`
	} `toml:"flood"`
	Epoch struct {
		Local  bool   `toml:"local"`
		Layout string `toml:"layout"`
	} `toml:"epoch"`
}

// Dump renders the configuration as TOML.
func (c *Config) Dump() ([]byte, error) {
	var d dumpFile
	d.Links.Number = c.Links.Number
	d.Links.Naming = c.Links.Naming
	d.Links.Finder = c.Links.Finder
	d.Links.FindBinary = c.Links.FindBinary
	d.Links.SearchTimeout = c.Links.SearchTimeout.String()
	d.Flood.WordsFile = c.Flood.WordsFile
	d.Flood.Network = c.Flood.Network
	d.Flood.Address = c.Flood.Address
	d.Flood.SleepAdjust = c.Flood.SleepAdjust.String()
	d.Epoch.Local = c.Epoch.Local
	d.Epoch.Layout = c.Epoch.Layout

	out, err := toml.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}
