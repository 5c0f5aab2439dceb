package audio

import (
	"os"
	"strconv"
	"time"
)

// Config holds synthesis parameters; every tone shares them
type Config struct {
	SampleRate   int
	Buffer       time.Duration
	MasterVolume float64
	ToneGain     float64 // envelope start
	ToneFloor    float64 // envelope end
	DroneFreq    float64
	DroneGain    float64
}

// DefaultConfig returns the stock synthesis parameters
func DefaultConfig() Config {
	return Config{
		SampleRate:   48000,
		Buffer:       100 * time.Millisecond,
		MasterVolume: 1,
		ToneGain:     0.1,
		ToneFloor:    0.01,
		DroneFreq:    40,
		DroneGain:    0.02,
	}
}

// Environment variables read by ApplyEnv
const (
	EnvMasterVolume = "MIND_PALACE_MASTER_VOLUME"
	EnvSampleRate   = "MIND_PALACE_SAMPLE_RATE"
	EnvDrone        = "MIND_PALACE_DRONE"
)

// ApplyEnv overrides cfg from environment variables; malformed values are ignored
func ApplyEnv(cfg *Config) {
	applyEnv(cfg, os.Getenv)
}

func applyEnv(cfg *Config, getenv func(string) string) {
	// Master volume is 0-100 converted to 0.0-1.0
	if volume := getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if sampleRate := getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if drone := getenv(EnvDrone); drone != "" {
		if val, err := strconv.ParseBool(drone); err == nil && !val {
			cfg.DroneGain = 0
		}
	}
}
