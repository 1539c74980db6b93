package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rupor-github/gencfg"

	"oss/anim"
	"oss/style"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
engine:
  apply_defaults: false
  animation:
    duration: 1s
    curve: Ease-Out
logging:
  console:
    level: normal
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "test-report.zip") + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Engine.ApplyDefaults {
		t.Error("Expected ApplyDefaults to be false")
	}
	if cfg.Engine.Animation.Duration != time.Second {
		t.Errorf("Duration = %v, want 1s", cfg.Engine.Animation.Duration)
	}
	if cfg.Engine.Animation.Curve != anim.CurveEaseOut {
		t.Errorf("Curve = %v, want %v", cfg.Engine.Animation.Curve, anim.CurveEaseOut)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("FileLogger.Mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `version: 1
engine:
  apply_defaults: true
  invalid indent
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configWithUnknown := `version: 1
unknown_field: value
engine:
  apply_defaults: true
`

	if err := os.WriteFile(configPath, []byte(configWithUnknown), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_InvalidCurve(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "curve.yaml")

	data := `version: 1
engine:
  animation:
    curve: bounce
`
	if err := os.WriteFile(configPath, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unknown animation curve")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_values.yaml")

	tests := []struct {
		name string
		data string
	}{
		{"version", "version: 2\n"},
		{"negative duration", "version: 1\nengine:\n  animation:\n    duration: -1s\n"},
		{"console level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.WriteFile(configPath, []byte(tt.data), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Engine: EngineConfig{
			ApplyDefaults: true,
			Animation: AnimationConfig{
				Duration: 150 * time.Millisecond,
				Curve:    anim.CurveEaseIn,
			},
		},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	if !strings.Contains(string(data), "ease-in") {
		t.Errorf("Dump() should write curve by name, got:\n%s", data)
	}

	// Verify we can load it back
	cfg2 := &Config{}
	_, err = unmarshalConfig(data, cfg2, false)
	if err != nil {
		t.Errorf("Dumped config cannot be loaded: %v", err)
	}

	if cfg2.Version != cfg.Version {
		t.Errorf("Version mismatch after dump/load: got %d, want %d", cfg2.Version, cfg.Version)
	}
	if cfg2.Engine.Animation != cfg.Engine.Animation {
		t.Errorf("Animation mismatch after dump/load: got %+v, want %+v", cfg2.Engine.Animation, cfg.Engine.Animation)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		data := []byte(`version: 1`)
		cfg := &Config{}

		result, err := unmarshalConfig(data, cfg, false)
		if err != nil {
			t.Errorf("unmarshalConfig() error = %v", err)
		}

		if result == nil {
			t.Fatal("unmarshalConfig() returned nil")
		}

		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		data := []byte(`invalid: [yaml`)
		cfg := &Config{}

		_, err := unmarshalConfig(data, cfg, false)
		if err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if !cfg.Engine.ApplyDefaults {
		t.Error("ApplyDefaults should be enabled by default")
	}
	if cfg.Engine.Animation.Duration != 300*time.Millisecond {
		t.Errorf("Duration = %v, want 300ms", cfg.Engine.Animation.Duration)
	}
	if cfg.Engine.Animation.Curve != anim.CurveEaseInOut {
		t.Errorf("Curve = %v, want %v", cfg.Engine.Animation.Curve, anim.CurveEaseInOut)
	}
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	// Partial config that only overrides some values
	partialConfig := `version: 1
engine:
  animation:
    curve: linear
`

	if err := os.WriteFile(configPath, []byte(partialConfig), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Engine.Animation.Curve != anim.CurveLinear {
		t.Errorf("Curve = %v, want linear from config file", cfg.Engine.Animation.Curve)
	}
	if cfg.Engine.Animation.Duration != 300*time.Millisecond {
		t.Errorf("Duration = %v, want default 300ms", cfg.Engine.Animation.Duration)
	}
	if !cfg.Engine.ApplyDefaults {
		t.Error("ApplyDefaults should keep default value")
	}
}

func TestAnimationConfig_Timing(t *testing.T) {
	conf := AnimationConfig{Duration: time.Second, Curve: anim.CurveLinear}
	timing := conf.Timing()
	if timing.Duration != time.Second || timing.Curve != anim.CurveLinear {
		t.Errorf("Timing() = %+v", timing)
	}
	if timing.Now != nil {
		t.Error("Timing() should use default clock")
	}
}

func TestEngineConfig_StyleOptions(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		conf := EngineConfig{ApplyDefaults: true}
		root := style.New(nil, conf.StyleOptions()...)
		if got := root.Style(style.KeyOpacity); got != "1" {
			t.Errorf("opacity = %q, want 1", got)
		}
	})

	t.Run("defaults disabled", func(t *testing.T) {
		conf := EngineConfig{ApplyDefaults: false}
		root := style.New(nil, conf.StyleOptions()...)
		if keys := root.Keys(); len(keys) != 0 {
			t.Errorf("Keys() = %v, want none", keys)
		}
	})
}

func TestCurve_UnmarshalText(t *testing.T) {
	tests := []struct {
		input     string
		expected  anim.Curve
		shouldErr bool
	}{
		{"linear", anim.CurveLinear, false},
		{"EASE-IN", anim.CurveEaseIn, false},
		{"ease-out", anim.CurveEaseOut, false},
		{"ease-in-out", anim.CurveEaseInOut, false},
		{"bounce", anim.Curve(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var c anim.Curve
			err := c.UnmarshalText([]byte(tt.input))
			if tt.shouldErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("UnmarshalText() error = %v", err)
			}
			if c != tt.expected {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.input, c, tt.expected)
			}
		})
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	data := []byte("version: 99\n")
	cfg := &Config{}

	_, err := unmarshalConfig(data, cfg, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}

	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error (errors.Unwrap non-nil), got bare error: %v", err)
	}
}
