package config

import (
	"time"
)

// Config is the merged configuration.
type Config struct {
	Links LinksConfig `koanf:"links"`
	Flood FloodConfig `koanf:"flood"`
	Epoch EpochConfig `koanf:"epoch"`
}

type LinksConfig struct {
	Number        int           `koanf:"number"`
	Naming        string        `koanf:"naming"`
	Finder        string        `koanf:"finder"`
	FindBinary    string        `koanf:"find_binary"`
	SearchTimeout time.Duration `koanf:"search_timeout"`
}

type FloodConfig struct {
	WordsFile   string        `koanf:"words_file"`
	Network     string        `koanf:"network"`
	Address     string        `koanf:"address"`
	SleepAdjust time.Duration `koanf:"sleep_adjust"`
}

type EpochConfig struct {
	Local  bool   `koanf:"local"`
	Layout string `koanf:"layout"`
}

// Sections lists the top-level keys that environment variables may set.
var Sections = []string{"links", "flood", "epoch"}
