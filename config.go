package scoredb

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the file and environment form of Options plus logging.
type Config struct {
	Backend     Backend
	Path        string
	WriteScheme Scheme
	FixedScheme bool
	Log         LogConfig
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", string(MemoryBackend))
	v.SetDefault("storage.path", "")
	v.SetDefault("keys.write_scheme", DefaultWriteScheme.String())
	v.SetDefault("keys.fixed_scheme", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.mode", "production")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.console", false)
}

// LoadConfig reads the config file at path (YAML, TOML or JSON by extension)
// over the defaults. An empty path uses defaults only. SCOREDB_* environment
// variables override both, e.g. SCOREDB_STORAGE_BACKEND=bolt.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setConfigDefaults(v)
	v.SetEnvPrefix("scoredb")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("cannot read config file %s: %w", path, err)
		}
	}
	return configFromViper(v)
}

func configFromViper(v *viper.Viper) (Config, error) {
	backend, err := ParseBackend(v.GetString("storage.backend"))
	if err != nil {
		return Config{}, err
	}
	scheme, err := ParseScheme(v.GetString("keys.write_scheme"))
	if err != nil {
		return Config{}, err
	}
	return Config{
		Backend:     backend,
		Path:        v.GetString("storage.path"),
		WriteScheme: scheme,
		FixedScheme: v.GetBool("keys.fixed_scheme"),
		Log: LogConfig{
			Level:   v.GetString("logging.level"),
			Mode:    v.GetString("logging.mode"),
			File:    v.GetString("logging.file"),
			Console: v.GetBool("logging.console"),
		},
	}, nil
}

// Options builds Options with a logger made from c.Log.
func (c Config) Options() (Options, error) {
	logger, err := NewLogger(c.Log)
	if err != nil {
		return Options{}, fmt.Errorf("logging: %w", err)
	}
	return Options{
		Backend:     c.Backend,
		Path:        c.Path,
		WriteScheme: c.WriteScheme,
		FixedScheme: c.FixedScheme,
		Logger:      logger,
	}, nil
}
