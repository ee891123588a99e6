package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the runtime settings shared by the culling tools.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Culling CullingConfig `toml:"culling"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error, fatal.
	Level string `toml:"level"`
}

type CullingConfig struct {
	// Tolerance inflates every volume before it is tested against the view
	// frustum, so objects grazing a plane stay visible.
	Tolerance float64 `toml:"tolerance"`
	// Window is the number of passes averaged by the culling metrics.
	Window int `toml:"window"`
	// Workers is the size of the pool that classifies large scenes. One
	// keeps every pass on the calling goroutine.
	Workers int `toml:"workers"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Culling: CullingConfig{
			Tolerance: 1e-5,
			Window:    int(AVG_COUNT),
			Workers:   1,
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys that are absent
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Culling.Window <= 0 {
		return cfg, fmt.Errorf("culling.window must be > 0, got %d: %w", cfg.Culling.Window, ErrInvalidArgument)
	}
	if cfg.Culling.Workers <= 0 {
		return cfg, fmt.Errorf("culling.workers must be > 0, got %d: %w", cfg.Culling.Workers, ErrInvalidArgument)
	}
	if cfg.Culling.Tolerance < 0 {
		return cfg, fmt.Errorf("culling.tolerance must be >= 0, got %g: %w", cfg.Culling.Tolerance, ErrInvalidArgument)
	}
	return cfg, nil
}

// Apply pushes the settings that have global effect, currently the log level.
func (c Config) Apply() error {
	if err := SetLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, err)
	}
	return nil
}
