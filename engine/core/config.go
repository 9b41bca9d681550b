package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/hubastard/californium/engine/colors"
)

// EnvPrefix is prepended to every configuration variable name.
const EnvPrefix = "CALIFORNIUM_"

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrNoState       = errors.New("no initial state")
)

// Config is read once at startup.
type Config struct {
	Title     string `env:"TITLE" envDefault:"Californium"`
	Width     int    `env:"WIDTH" envDefault:"1280"`
	Height    int    `env:"HEIGHT" envDefault:"720"`
	Resizable bool   `env:"RESIZABLE" envDefault:"true"`
	Icon      string `env:"ICON"` // empty = no icon
	VSync     bool   `env:"VSYNC" envDefault:"true"`
	Framerate int    `env:"FRAMERATE" envDefault:"0"` // 0 = uncapped

	// Timestep is the fixed simulation step in seconds.
	Timestep float64 `env:"TIMESTEP" envDefault:"0.0166666667"`
	// MaxStepsPerFrame guards against the spiral of death; 0 = unlimited.
	MaxStepsPerFrame int `env:"MAX_STEPS" envDefault:"0"`

	ClearColor colors.Color `env:"CLEAR_COLOR" envDefault:"#141a1f"`

	Backend         string `env:"BACKEND" envDefault:"glfw"`
	Verbose         bool   `env:"VERBOSE" envDefault:"false"`
	ProfileCapacity int    `env:"PROFILE_CAPACITY" envDefault:"1024"`
}

// LoadConfig reads the process environment.
func LoadConfig() (Config, error) {
	return parseConfig(env.Options{Prefix: EnvPrefix})
}

// LoadConfigFrom reads from the given variables instead of the process
// environment. Keys carry the prefix.
func LoadConfigFrom(vars map[string]string) (Config, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return parseConfig(env.Options{Prefix: EnvPrefix, Environment: vars})
}

// DefaultConfig is the configuration with nothing set.
func DefaultConfig() Config {
	cfg, err := LoadConfigFrom(nil)
	if err != nil {
		panic(err)
	}
	return cfg
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Timestep <= 0:
		return fmt.Errorf("%w: timestep %v", ErrInvalidConfig, c.Timestep)
	case c.Framerate < 0:
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, c.Framerate)
	case c.MaxStepsPerFrame < 0:
		return fmt.Errorf("%w: max steps %d", ErrInvalidConfig, c.MaxStepsPerFrame)
	}
	return nil
}

// Step is the timestep as a duration.
func (c Config) Step() time.Duration {
	return time.Duration(c.Timestep * float64(time.Second))
}
