package config

import (
	"errors"
	"testing"
)

func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbose || cfg.Progress || cfg.NoColor {
		t.Errorf("expected all switches off, got %+v", cfg)
	}
	if cfg.Peak != 255 {
		t.Errorf("expected Peak=255, got %v", cfg.Peak)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		want         Config
		wantSentinel error
	}{
		{
			name: "empty environment",
			env:  map[string]string{},
			want: Config{Peak: DefaultPeak},
		},
		{
			name: "verbose and progress",
			env:  map[string]string{EnvVerbose: "1", EnvProgress: "true"},
			want: Config{Verbose: true, Progress: true, Peak: DefaultPeak},
		},
		{
			name: "explicit false",
			env:  map[string]string{EnvVerbose: "false", EnvProgress: "0"},
			want: Config{Peak: DefaultPeak},
		},
		{
			name: "blank values are off",
			env:  map[string]string{EnvVerbose: "  ", EnvProgress: ""},
			want: Config{Peak: DefaultPeak},
		},
		{
			name: "NO_COLOR with any value",
			env:  map[string]string{EnvNoColor: "yes please"},
			want: Config{NoColor: true, Peak: DefaultPeak},
		},
		{
			name: "NO_COLOR empty is ignored",
			env:  map[string]string{EnvNoColor: ""},
			want: Config{Peak: DefaultPeak},
		},
		{
			name:         "invalid verbose",
			env:          map[string]string{EnvVerbose: "loud"},
			wantSentinel: ErrInvalidBool,
		},
		{
			name:         "invalid progress",
			env:          map[string]string{EnvProgress: "maybe"},
			wantSentinel: ErrInvalidBool,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromEnv(envMap(tt.env))
			if tt.wantSentinel != nil {
				if !errors.Is(err, tt.wantSentinel) {
					t.Fatalf("FromEnv() error = %v, want %v", err, tt.wantSentinel)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromEnv() error = %v", err)
			}
			if *cfg != tt.want {
				t.Errorf("FromEnv() = %+v, want %+v", *cfg, tt.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name         string
		modify       func(*Config)
		wantSentinel error
	}{
		{
			name:   "default config is valid",
			modify: func(c *Config) {},
		},
		{
			name:   "10-bit peak is valid",
			modify: func(c *Config) { c.Peak = 1023 },
		},
		{
			name:         "zero peak is invalid",
			modify:       func(c *Config) { c.Peak = 0 },
			wantSentinel: ErrInvalidPeak,
		},
		{
			name:         "peak above 16-bit is invalid",
			modify:       func(c *Config) { c.Peak = 70000 },
			wantSentinel: ErrInvalidPeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantSentinel == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantSentinel) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantSentinel)
			}
		})
	}
}
