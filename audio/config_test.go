package audio

import (
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// TestDefaultConfig verifies stock parameters
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SampleRate != 48000 {
		t.Errorf("expected 48000 sample rate, got %d", cfg.SampleRate)
	}
	if cfg.ToneGain != 0.1 || cfg.ToneFloor != 0.01 {
		t.Errorf("unexpected envelope %f -> %f", cfg.ToneGain, cfg.ToneFloor)
	}
	if cfg.DroneFreq != 40 || cfg.DroneGain != 0.02 {
		t.Errorf("unexpected drone %f @ %f", cfg.DroneFreq, cfg.DroneGain)
	}
}

// TestApplyEnv verifies overrides and clamping
func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		volume float64
		rate   int
		drone  float64
	}{
		{"empty", nil, 1, 48000, 0.02},
		{"volume", map[string]string{EnvMasterVolume: "50"}, 0.5, 48000, 0.02},
		{"volume clamped high", map[string]string{EnvMasterVolume: "150"}, 1, 48000, 0.02},
		{"volume clamped low", map[string]string{EnvMasterVolume: "-10"}, 0, 48000, 0.02},
		{"volume malformed", map[string]string{EnvMasterVolume: "loud"}, 1, 48000, 0.02},
		{"rate", map[string]string{EnvSampleRate: "44100"}, 1, 44100, 0.02},
		{"rate rejected", map[string]string{EnvSampleRate: "0"}, 1, 48000, 0.02},
		{"drone off", map[string]string{EnvDrone: "false"}, 1, 48000, 0},
		{"drone on", map[string]string{EnvDrone: "true"}, 1, 48000, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			applyEnv(&cfg, envMap(tt.env))
			if cfg.MasterVolume != tt.volume {
				t.Errorf("volume: expected %f, got %f", tt.volume, cfg.MasterVolume)
			}
			if cfg.SampleRate != tt.rate {
				t.Errorf("rate: expected %d, got %d", tt.rate, cfg.SampleRate)
			}
			if cfg.DroneGain != tt.drone {
				t.Errorf("drone: expected %f, got %f", tt.drone, cfg.DroneGain)
			}
		})
	}
}
