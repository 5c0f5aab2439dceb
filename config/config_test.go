package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, 60, c.Display.FPS)
	assert.True(t, c.Display.PauseOnBlur)
	assert.Equal(t, 1500*time.Millisecond, c.Loading.Duration.Duration)
	assert.Equal(t, 500*time.Millisecond, c.Loading.TerminalDelay.Duration)
	assert.Equal(t, 6, c.Terminal.Transcript)
	assert.True(t, c.Terminal.Open)
	assert.False(t, c.Audio.Enabled)
	assert.Equal(t, time.Second/60, c.FrameInterval())

	ac := c.Audio.Engine()
	assert.Equal(t, 48000, ac.SampleRate)
	assert.Equal(t, 100*time.Millisecond, ac.Buffer)
	assert.Equal(t, 0.02, ac.DroneGain)
}

func TestLoadFileOverridesSubset(t *testing.T) {
	path := writeFile(t, "user.toml", `
seed = 42
[loading]
duration = "0s"
[audio]
drone = false
`)
	c, err := load(path, envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, uint64(42), c.Seed)
	assert.Zero(t, c.Loading.Duration.Duration)
	assert.Equal(t, 500*time.Millisecond, c.Loading.TerminalDelay.Duration, "unset keys keep defaults")
	assert.Zero(t, c.Audio.Engine().DroneGain)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "typo.toml", "[display]\nfsp = 30\n")
	_, err := load(path, envMap(nil))
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "fsp")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := writeFile(t, "bad.toml", "[loading]\nduration = \"soon\"\n")
	_, err := load(path, envMap(nil))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "absent.toml"), envMap(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvOverrides(t *testing.T) {
	c, err := load("", envMap(map[string]string{
		EnvSeed:       "7",
		EnvFPS:        "30",
		EnvAudio:      "true",
		EnvSkipIntro:  "1",
		EnvDebug:      "false",
		EnvContentDir: "/tmp/rooms",
	}))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), c.Seed)
	assert.Equal(t, 30, c.Display.FPS)
	assert.True(t, c.Audio.Enabled)
	assert.True(t, c.SkipIntro)
	assert.False(t, c.Debug)
	assert.Equal(t, "/tmp/rooms", c.ContentDir)
}

func TestEnvMalformed(t *testing.T) {
	for _, name := range []string{EnvSeed, EnvFPS, EnvAudio} {
		_, err := load("", envMap(map[string]string{name: "lots"}))
		assert.ErrorIs(t, err, ErrInvalid, name)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"fps low", func(c *Config) { c.Display.FPS = 0 }},
		{"fps high", func(c *Config) { c.Display.FPS = 1000 }},
		{"loading", func(c *Config) { c.Loading.Duration.Duration = -time.Second }},
		{"delay", func(c *Config) { c.Loading.TerminalDelay.Duration = -time.Second }},
		{"transcript", func(c *Config) { c.Terminal.Transcript = 1 }},
		{"volume", func(c *Config) { c.Audio.MasterVolume = 1.5 }},
		{"rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"buffer", func(c *Config) { c.Audio.Buffer.Duration = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, ".env", "MIND_PALACE_TEST_DOTENV=nebula\n")
	t.Cleanup(func() { os.Unsetenv("MIND_PALACE_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), path))
	assert.Equal(t, "nebula", os.Getenv("MIND_PALACE_TEST_DOTENV"))
}
