// Package config resolves runtime settings from embedded defaults, a user TOML file,
// .env files and MIND_PALACE_* environment variables, in that order.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/mind-palace/audio"
)

//go:embed default.toml
var defaultTOML []byte

// ErrInvalid is wrapped by every decode and validation failure
var ErrInvalid = errors.New("invalid config")

// Bounds
const (
	MinFPS = 1
	MaxFPS = 240
)

// Duration decodes TOML strings such as "1500ms"
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the resolved runtime configuration
type Config struct {
	Seed       uint64   `toml:"seed"`
	Debug      bool     `toml:"debug"`
	SkipIntro  bool     `toml:"skip_intro"`
	ContentDir string   `toml:"content_dir"`
	Display    Display  `toml:"display"`
	Loading    Loading  `toml:"loading"`
	Terminal   Terminal `toml:"terminal"`
	Audio      Audio    `toml:"audio"`
}

// Display controls the frame clock
type Display struct {
	FPS         int  `toml:"fps"`
	PauseOnBlur bool `toml:"pause_on_blur"`
}

// Loading controls the intro stages
type Loading struct {
	Duration      Duration `toml:"duration"`
	TerminalDelay Duration `toml:"terminal_delay"`
	Script        string   `toml:"script"`
}

// Terminal controls the faux shell
type Terminal struct {
	Transcript int  `toml:"transcript"`
	Open       bool `toml:"open"`
}

// Audio controls the tone engine
type Audio struct {
	Enabled      bool     `toml:"enabled"`
	MasterVolume float64  `toml:"master_volume"`
	SampleRate   int      `toml:"sample_rate"`
	Buffer       Duration `toml:"buffer"`
	Drone        bool     `toml:"drone"`
}

// Engine converts the section into synthesis parameters
func (a Audio) Engine() audio.Config {
	cfg := audio.DefaultConfig()
	cfg.MasterVolume = a.MasterVolume
	cfg.SampleRate = a.SampleRate
	cfg.Buffer = a.Buffer.Duration
	if !a.Drone {
		cfg.DroneGain = 0
	}
	return cfg
}

// FrameInterval returns the frame clock period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Display.FPS)
}

// Default returns the embedded defaults
func Default() *Config {
	c := &Config{}
	if err := decode(defaultTOML, c); err != nil {
		panic(fmt.Sprintf("embedded config: %v", err))
	}
	return c
}

// Load resolves defaults, then the file at path when non-empty, then environment overrides
func Load(path string) (*Config, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (*Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := decode(data, c); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := applyEnv(c, getenv); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// decode applies a TOML document onto c; unknown keys are rejected
func decode(data []byte, c *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// LoadDotEnv exports variables from the given .env files without overriding the environment
// Missing files are skipped
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Environment variables read by Load
const (
	EnvSeed       = "MIND_PALACE_SEED"
	EnvDebug      = "MIND_PALACE_DEBUG"
	EnvFPS        = "MIND_PALACE_FPS"
	EnvAudio      = "MIND_PALACE_AUDIO"
	EnvSkipIntro  = "MIND_PALACE_SKIP_INTRO"
	EnvContentDir = "MIND_PALACE_CONTENT_DIR"
)

// applyEnv overrides c from the environment; malformed values are errors
func applyEnv(c *Config, getenv func(string) string) error {
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvFPS, err)
		}
		c.Display.FPS = fps
	}
	for name, dst := range map[string]*bool{
		EnvDebug:     &c.Debug,
		EnvAudio:     &c.Audio.Enabled,
		EnvSkipIntro: &c.SkipIntro,
	} {
		if v := getenv(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalid, name, err)
			}
			*dst = b
		}
	}
	if v := getenv(EnvContentDir); v != "" {
		c.ContentDir = v
	}
	return nil
}

// Validate checks ranges the app relies on
func (c *Config) Validate() error {
	switch {
	case c.Display.FPS < MinFPS || c.Display.FPS > MaxFPS:
		return fmt.Errorf("%w: fps %d outside [%d, %d]", ErrInvalid, c.Display.FPS, MinFPS, MaxFPS)
	case c.Loading.Duration.Duration < 0:
		return fmt.Errorf("%w: negative loading duration", ErrInvalid)
	case c.Loading.TerminalDelay.Duration < 0:
		return fmt.Errorf("%w: negative terminal delay", ErrInvalid)
	case c.Terminal.Transcript < 2:
		return fmt.Errorf("%w: transcript must hold at least one input and output line", ErrInvalid)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: master volume %.2f outside [0, 1]", ErrInvalid, c.Audio.MasterVolume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalid)
	case c.Audio.Buffer.Duration <= 0:
		return fmt.Errorf("%w: audio buffer must be positive", ErrInvalid)
	}
	return nil
}
