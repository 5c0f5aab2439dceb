package audio

import "sync"

// Recorder is a Player that keeps every tone instead of sounding it, for headless runs and tests
type Recorder struct {
	mu    sync.Mutex
	tones []Tone
}

// Play records t and reports success
func (r *Recorder) Play(t Tone) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tones = append(r.tones, t)
	return true
}

// Tones returns a copy of the recorded tones in play order
func (r *Recorder) Tones() []Tone {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Tone, len(r.tones))
	copy(out, r.tones)
	return out
}

// Last returns the newest tone; ok is false when nothing played
func (r *Recorder) Last() (Tone, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.tones) == 0 {
		return Tone{}, false
	}
	return r.tones[len(r.tones)-1], true
}

// Reset forgets every recorded tone
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tones = nil
}
