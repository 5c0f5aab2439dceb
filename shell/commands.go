package shell

import (
	"time"

	"github.com/lixenwraith/mind-palace/audio"
)

// Command is one dispatch table entry
type Command struct {
	Name     string
	Response string
	Tone     audio.Tone // zero Freq plays nothing
	Run      func(s *Shell)
	Clear    bool // empties transcript and input, appends nothing
}

const notFoundFormat = "Command '%s' not found. Try 'enable audio' or explore the neural pathways"

// Hint is the suggestion line shown in the terminal header
const Hint = "Try: enable audio, singularity, hack reality"

var (
	// TypingTone plays for every evaluated command
	TypingTone = audio.Tone{Freq: 1200, Duration: 100 * time.Millisecond, Wave: audio.WaveSquare}

	notFoundTone = audio.Tone{Freq: 180, Duration: 200 * time.Millisecond, Wave: audio.WaveTriangle}
)

func tone(freq float64, d time.Duration, w audio.Wave) audio.Tone {
	return audio.Tone{Freq: freq, Duration: d, Wave: w}
}

// builtins returns the stock command table
func builtins() []Command {
	return []Command{
		{
			Name:     "ls",
			Response: "prefrontal-cortex/  temporal-lobe/  limbic-system/  motor-cortex/  synapse/  consciousness/",
		},
		{
			Name:     "sudo dream",
			Response: "🌙 Entering REM sleep mode... Dreams loading... Reality.exe suspended",
			Tone:     tone(300, time.Second, audio.WaveSine),
		},
		{
			Name:     "cd consciousness",
			Response: "Permission denied. Consciousness is still being compiled by the universe",
			Tone:     tone(150, 500*time.Millisecond, audio.WaveSaw),
		},
		{
			Name:     "rm -rf sleep",
			Response: "⚠️  Warning: Removing sleep will cause system instability. Coffee levels critical!",
			Tone:     tone(200, 300*time.Millisecond, audio.WaveTriangle),
		},
		{
			Name:     "whoami",
			Response: "shivanshi@mindpalace:~$ Digital architect, code poet, neural network navigator",
		},
		{
			Name:     "enable audio",
			Response: "🔊 Audio systems online. Cosmic frequencies activated.",
			Run:      (*Shell).enableAudio,
		},
		{
			Name:     "disable audio",
			Response: "🔇 Audio systems offline. Silence in the void.",
			Run:      (*Shell).disableAudio,
		},
		{
			Name:     "singularity",
			Response: "⚫ Approaching event horizon... Reality distortion detected...",
			Tone:     tone(50, 2*time.Second, audio.WaveSaw),
		},
		{
			Name:     "hack reality",
			Response: "Access denied. Reality has better encryption than expected 🔐",
			Tone:     tone(100, 800*time.Millisecond, audio.WaveSquare),
		},
		{
			Name:  "clear",
			Clear: true,
		},
	}
}
