package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	configFileName = "ratesyncd"
	configFileType = "toml"
	envPrefix      = "RATESYNCD"
)

// Config is the local configuration of ratesyncd.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	DB      DBConfig      `mapstructure:"db"`
	Output  OutputConfig  `mapstructure:"output"`
}

// LoggingConfig selects the log level and encoding.
type LoggingConfig struct {
	Level  zerolog.Level `mapstructure:"level"`
	Format string        `mapstructure:"format"`
}

// DBConfig selects the database backing the multistore.
type DBConfig struct {
	Backend dbm.BackendType `mapstructure:"backend"`
	Name    string          `mapstructure:"name"`
	// Dir is relative to the home directory unless absolute
	Dir string `mapstructure:"dir"`
}

// OutputConfig controls how command results are printed.
type OutputConfig struct {
	Indent bool `mapstructure:"indent"`
}

// Validate rejects configurations the CLI cannot run with.
func (c Config) Validate() error {
	if _, err := ParseLogLevel(c.Logging.Level.String()); err != nil {
		return fmt.Errorf("invalid logging.level: %w", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.format %q: must be json or console", c.Logging.Format)
	}
	if _, err := parseBackend(string(c.DB.Backend)); err != nil {
		return fmt.Errorf("invalid db.backend: %w", err)
	}
	if c.DB.Name == "" {
		return errors.New("db.name is required")
	}
	return nil
}

// DataDir resolves the database directory against home.
func (c Config) DataDir(home string) string {
	if filepath.IsAbs(c.DB.Dir) {
		return c.DB.Dir
	}
	return filepath.Join(home, c.DB.Dir)
}

// ConfigPath is the location of the config file under home.
func ConfigPath(home string) string {
	return filepath.Join(home, "config", configFileName+"."+configFileType)
}

func newViper(home string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(filepath.Join(home, "config"))
	return v
}

// LoadConfig reads <home>/config/ratesyncd.toml and RATESYNCD_* overrides.
// A missing file leaves the defaults in place.
func LoadConfig(home string) (*Config, error) {
	v := newViper(home)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteDefaultConfig writes the default config file unless one exists.
func WriteDefaultConfig(home string) (bool, error) {
	path := ConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}

	v := viper.New()
	setDefaults(v)
	if err := v.SafeWriteConfigAs(path); err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if errors.As(err, &exists) {
			return false, nil
		}
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("db.backend", string(dbm.GoLevelDBBackend))
	v.SetDefault("db.name", "ratesync")
	v.SetDefault("db.dir", "data")

	v.SetDefault("output.indent", true)
}

// ParseLogLevel parses a named zerolog level. Numeric and empty levels are
// rejected.
func ParseLogLevel(s string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" || level.String() != name {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

func parseBackend(s string) (dbm.BackendType, error) {
	switch backend := dbm.BackendType(strings.ToLower(strings.TrimSpace(s))); backend {
	case dbm.GoLevelDBBackend, dbm.MemDBBackend:
		return backend, nil
	}
	return "", fmt.Errorf("unsupported db backend %q: must be %s or %s", s, dbm.GoLevelDBBackend, dbm.MemDBBackend)
}

var (
	levelType   = reflect.TypeOf(zerolog.Level(0))
	backendType = reflect.TypeOf(dbm.BackendType(""))
)

// stringToTypedHook decodes string settings into their typed fields so bad
// values fail while the config is being read.
func stringToTypedHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		switch to {
		case levelType:
			return ParseLogLevel(s)
		case backendType:
			return parseBackend(s)
		}
		return data, nil
	}
}

// decodeHook keeps viper's default hooks and adds the typed ones.
func decodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToTypedHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}

// NewLogger builds the CLI logger.
func NewLogger(cfg LoggingConfig, out io.Writer) log.Logger {
	opts := []log.Option{log.LevelOption(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		opts = append(opts, log.OutputJSONOption())
	} else {
		opts = append(opts, log.ColorOption(false))
	}
	return log.NewLogger(out, opts...)
}
