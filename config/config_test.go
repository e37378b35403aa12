package config_test

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/wasm-bytecode/config"
	"github.com/wippyai/wasm-bytecode/errors"
	"github.com/wippyai/wasm-bytecode/wasm"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	want := config.Config{
		Decode: config.Decode{MaxNestingDepth: 1024, MaxInputSize: 16 << 20},
		Log:    config.Log{Level: "info", Format: "console"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Default() (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := config.LoadWithEnv(afero.NewMemMapFs(), "", env(nil))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/etc/wasmdec.toml", `
[decode]
max_nesting_depth = 64

[log]
format = "json"
`)

	cfg, err := config.LoadWithEnv(fs, "/etc/wasmdec.toml", env(nil))
	if err != nil {
		t.Fatal(err)
	}
	want := config.Default()
	want.Decode.MaxNestingDepth = 64
	want.Log.Format = "json"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "wasmdec.toml", `
[decode]
max_nesting_depth = 64
max_input_size = 1024

[log]
level = "warn"
`)

	cfg, err := config.LoadWithEnv(fs, "wasmdec.toml", env(map[string]string{
		"WASMDEC_MAX_NESTING_DEPTH": "8",
		"WASMDEC_LOG_LEVEL":         "debug",
		"WASMDEC_LOG_FORMAT":        "json",
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := config.Config{
		Decode: config.Decode{MaxNestingDepth: 8, MaxInputSize: 1024},
		Log:    config.Log{Level: "debug", Format: "json"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "bad.toml", "[decode\n")
	writeFile(t, fs, "unknown.toml", "[decode]\nmax_depth = 3\n")
	writeFile(t, fs, "negative.toml", "[decode]\nmax_input_size = -1\n")
	writeFile(t, fs, "level.toml", "[log]\nlevel = \"loud\"\n")
	writeFile(t, fs, "format.toml", "[log]\nformat = \"xml\"\n")
	writeFile(t, fs, "ok.toml", "")

	tests := []struct {
		name string
		path string
		env  map[string]string
	}{
		{"missing file", "missing.toml", nil},
		{"syntax", "bad.toml", nil},
		{"unknown key", "unknown.toml", nil},
		{"negative size", "negative.toml", nil},
		{"bad level", "level.toml", nil},
		{"bad format", "format.toml", nil},
		{"bad env number", "ok.toml", map[string]string{"WASMDEC_MAX_INPUT_SIZE": "lots"}},
		{"negative env depth", "ok.toml", map[string]string{"WASMDEC_MAX_NESTING_DEPTH": "-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadWithEnv(fs, tt.path, env(tt.env))
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("got %v, want *errors.Error", err)
			}
			if e.Phase != errors.PhaseConfig {
				t.Errorf("Phase = %s, want config", e.Phase)
			}
		})
	}
}

func TestDecoderOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Decode.MaxNestingDepth = 2
	dec := cfg.NewDecoder()
	if dec.MaxDepth() != 2 {
		t.Errorf("MaxDepth = %d, want 2", dec.MaxDepth())
	}

	_, _, err := dec.DecodeExpression([]byte{0x02, 0x40, 0x02, 0x40, 0x02, 0x40, 0x0b, 0x0b, 0x0b, 0x0b})
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindNestingTooDeep}) {
		t.Errorf("got %v, want nesting_too_deep", err)
	}

	cfg.Decode.MaxNestingDepth = 0
	if got := wasm.NewDecoder(cfg.DecoderOptions()...).MaxDepth(); got != 0 {
		t.Errorf("unbounded MaxDepth = %d, want 0", got)
	}
}

func TestCheckSize(t *testing.T) {
	cfg := config.Default()
	cfg.Decode.MaxInputSize = 4
	if err := cfg.CheckSize(4); err != nil {
		t.Errorf("at limit: %v", err)
	}
	err := cfg.CheckSize(5)
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindTooLarge {
		t.Errorf("over limit: got %v", err)
	}

	cfg.Decode.MaxInputSize = 0
	if err := cfg.CheckSize(1 << 30); err != nil {
		t.Errorf("unbounded: %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		t.Run(format, func(t *testing.T) {
			cfg := config.Default()
			cfg.Log.Format = format
			cfg.Log.Level = "warn"
			l, err := cfg.NewLogger()
			if err != nil {
				t.Fatal(err)
			}
			defer func() { _ = l.Sync() }()
			if l.Core().Enabled(zapcore.DebugLevel) {
				t.Error("debug enabled at warn level")
			}
			if !l.Core().Enabled(zapcore.ErrorLevel) {
				t.Error("error disabled at warn level")
			}
		})
	}

	cfg := config.Default()
	cfg.Log.Level = "nope"
	if _, err := cfg.NewLogger(); err == nil {
		t.Error("NewLogger accepted an unknown level")
	}
}
