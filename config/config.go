// Package config loads decoder limits and logging settings from a TOML
// file and WASMDEC_* environment variables.
package config

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mstoykov/envconfig"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/wasm-bytecode/errors"
	"github.com/wippyai/wasm-bytecode/wasm"
)

// Defaults
const (
	DefaultMaxInputSize = 16 << 20
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
)

// Config is the complete configuration.
type Config struct {
	Decode Decode `toml:"decode"`
	Log    Log    `toml:"log"`
}

// Decode bounds the work a single decode may do.
type Decode struct {
	// MaxNestingDepth bounds block nesting. Zero disables the bound.
	MaxNestingDepth int `toml:"max_nesting_depth" envconfig:"WASMDEC_MAX_NESTING_DEPTH"`

	// MaxInputSize bounds the bytes read from one input. Zero disables the
	// bound.
	MaxInputSize int `toml:"max_input_size" envconfig:"WASMDEC_MAX_INPUT_SIZE"`
}

// Log selects the logger level and encoding.
type Log struct {
	Level  string `toml:"level" envconfig:"WASMDEC_LOG_LEVEL"`
	Format string `toml:"format" envconfig:"WASMDEC_LOG_FORMAT"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Decode: Decode{
			MaxNestingDepth: wasm.DefaultMaxDepth,
			MaxInputSize:    DefaultMaxInputSize,
		},
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads path from fs over the defaults, then applies environment
// overrides from the process environment. An empty path skips the file.
func Load(fs afero.Fs, path string) (Config, error) {
	return LoadWithEnv(fs, path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(fs afero.Fs, path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return cfg, errors.New(errors.PhaseConfig, errors.KindInvalidData).
				Cause(err).
				Detail("read %s", path).
				Build()
		}
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, errors.New(errors.PhaseConfig, errors.KindInvalidData).
				Cause(err).
				Detail("parse %s", path).
				Build()
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return cfg, errors.New(errors.PhaseConfig, errors.KindInvalidData).
				Value(keys).
				Detail("%s: unknown keys %s", path, strings.Join(keys, ", ")).
				Build()
		}
	}

	if err := envconfig.Process("", &cfg.Decode, lookup); err != nil {
		return cfg, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "environment")
	}
	if err := envconfig.Process("", &cfg.Log, lookup); err != nil {
		return cfg, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "environment")
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	invalid := func(field string, v any, why string) error {
		return errors.New(errors.PhaseConfig, errors.KindInvalidData).
			Value(v).
			Detail("%s: %s", field, why).
			Build()
	}
	if c.Decode.MaxNestingDepth < 0 {
		return invalid("decode.max_nesting_depth", c.Decode.MaxNestingDepth, "must not be negative")
	}
	if c.Decode.MaxInputSize < 0 {
		return invalid("decode.max_input_size", c.Decode.MaxInputSize, "must not be negative")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, "unknown level")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return invalid("log.format", c.Log.Format, `must be "console" or "json"`)
	}
	return nil
}

// DecoderOptions converts the decode limits into decoder options.
func (c Config) DecoderOptions() []wasm.Option {
	return []wasm.Option{wasm.WithMaxDepth(c.Decode.MaxNestingDepth)}
}

// NewDecoder builds a decoder honoring the decode limits.
func (c Config) NewDecoder() *wasm.Decoder {
	return wasm.NewDecoder(c.DecoderOptions()...)
}

// CheckSize rejects inputs larger than MaxInputSize.
func (c Config) CheckSize(n int) error {
	if c.Decode.MaxInputSize > 0 && n > c.Decode.MaxInputSize {
		return errors.TooLarge(errors.PhaseLoad, n, c.Decode.MaxInputSize)
	}
	return nil
}

// NewLogger builds a zap logger writing to stderr.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "log.level")
	}

	zc := zap.NewProductionConfig()
	if c.Log.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = c.Log.Format
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	zc.Sampling = nil
	return zc.Build()
}
