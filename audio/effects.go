package audio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave defines oscillator wave shapes
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

var waveNames = [...]string{"sine", "square", "sawtooth", "triangle", "noise"}

func (w Wave) String() string {
	if w < 0 || int(w) >= len(waveNames) {
		return "unknown"
	}
	return waveNames[w]
}

// ParseWave maps a wave name to its Wave, false when unknown
func ParseWave(name string) (Wave, bool) {
	for i, n := range waveNames {
		if n == name {
			return Wave(i), true
		}
	}
	return WaveSine, false
}

// MarshalText encodes the wave by name
func (w Wave) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText decodes a wave name from config or content files
func (w *Wave) UnmarshalText(text []byte) error {
	parsed, ok := ParseWave(string(text))
	if !ok {
		return fmt.Errorf("unknown wave %q", text)
	}
	*w = parsed
	return nil
}

// Tone is one fire-and-forget beep
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// oscillator generates an endless raw wave; callers bound it with beep.Take
type oscillator struct {
	freq  float64
	phase float64
	wave  Wave
	rate  beep.SampleRate
}

// NewOscillator creates an unbounded oscillator
func NewOscillator(freq float64, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay ramps gain exponentially from start to end over total samples
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	start    float64
	ratio    float64
}

// NewDecay shapes s with an exponential gain ramp from start to end over d
// end must be positive; the ramp holds at end once d elapses
func NewDecay(s beep.Streamer, d time.Duration, start, end float64, rate beep.SampleRate) beep.Streamer {
	total := max(rate.N(d), 1)
	return &decay{
		streamer: s,
		total:    total,
		start:    start,
		ratio:    end / start,
	}
}

// Gain returns the envelope gain at a sample position
func (e *decay) Gain(pos int) float64 {
	if pos >= e.total {
		return e.start * e.ratio
	}
	return e.start * math.Pow(e.ratio, float64(pos)/float64(e.total))
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.Gain(e.position)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ToneStreamer renders t as a bounded stream: oscillator, exponential decay, master volume
func ToneStreamer(t Tone, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(t.Freq, t.Wave, rate)
	shaped := NewDecay(osc, t.Duration, cfg.ToneGain, cfg.ToneFloor, rate)
	return newVolume(beep.Take(rate.N(t.Duration), shaped), cfg.MasterVolume)
}

// DroneStreamer renders the endless ambient hum
func DroneStreamer(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(cfg.DroneFreq, WaveSine, rate)
	return newVolume(osc, cfg.DroneGain*cfg.MasterVolume)
}
