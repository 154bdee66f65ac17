package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"slices"
	"strings"

	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/logging"
	"github.com/arthur-debert/sysknife/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of configuration environment variables.
const EnvPrefix = "SYSKNIFE_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// DefaultContent returns the embedded defaults file, comments included.
func DefaultContent() string {
	return string(defaultConfig)
}

// Load reads the configuration from the default locations. The file is
// required only when SYSKNIFE_CONFIG names it explicitly.
func Load(overrides map[string]interface{}) (*Config, error) {
	_, explicit := os.LookupEnv(paths.EnvConfigFile)
	return LoadFrom(paths.ConfigFilePath(), explicit, overrides)
}

// LoadFrom merges, later wins: embedded defaults, the TOML file at path,
// SYSKNIFE_* environment variables and overrides (dotted keys such as
// "links.number"). A missing file is skipped unless required is set.
func LoadFrom(path string, required bool, overrides map[string]interface{}) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
					WithDetail("path", path)
			}
			log.Debug().Str("path", path).Msg("loaded user config")
		} else if required || !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// envKey maps SYSKNIFE_LINKS_FIND_BINARY to links.find_binary. Only the
// first underscore separates section from key. Variables outside the known
// sections, such as SYSKNIFE_CONFIG, are ignored.
func envKey(s string) string {
	name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || key == "" || !slices.Contains(Sections, section) {
		return ""
	}
	return section + "." + key
}

// ParseOverrides turns "key=value" pairs into an overrides map.
func ParseOverrides(pairs []string) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrUsage, "invalid setting %q, expected key=value", pair)
		}
		out[key] = value
	}
	return out, nil
}
