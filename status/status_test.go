package status

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicFloatSetPercentClamps(t *testing.T) {
	var f AtomicFloat
	assert.Zero(t, f.Get())

	assert.Equal(t, 42.5, f.SetPercent(42.5))
	assert.Equal(t, 42.5, f.Get())
	assert.Equal(t, 100.0, f.SetPercent(130))
	assert.Equal(t, 0.0, f.SetPercent(-3))
	assert.Equal(t, 0.0, f.SetPercent(math.NaN()))
	assert.Equal(t, 0.0, f.Get())

	f.Set(-3)
	assert.Equal(t, -3.0, f.Get(), "Set does not clamp")
}

func TestAtomicFloatConcurrentReaders(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				v := f.Get()
				if v < 0 || v > 100 {
					t.Errorf("torn read: %f", v)
					return
				}
			}
		}()
	}
	for j := 0; j < 1000; j++ {
		f.SetPercent(float64(j % 150))
	}
	wg.Wait()
}

func TestAtomicStringTruncatesByWidth(t *testing.T) {
	var s AtomicString
	assert.Empty(t, s.Load())

	s.Store("prefrontal-cortex")
	assert.Equal(t, "prefrontal-cortex", s.Load())

	s.Store(strings.Repeat("∞", MaxStringWidth+5))
	got := s.Load()
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len([]rune(got)), MaxStringWidth)
}

func TestMetricMapCachesPointers(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	a.Set(3)
	assert.Same(t, a, m.Get("x"))
	assert.True(t, m.Has("x"))
	assert.False(t, m.Has("y"))
	assert.Equal(t, 1, m.Count())
}

func TestRegistrySnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get("session.room").Store("welcome")
	r.Floats.Get("monitor.coffee").Set(23)
	r.Ints.Get("render.frames").Store(120)
	r.Bools.Get("audio.enabled").Store(true)

	require.Equal(t, 4, r.TotalCount())
	assert.Equal(t, []Metric{
		{"audio.enabled", "true"},
		{"monitor.coffee", "23.0"},
		{"render.frames", "120"},
		{"session.room", "welcome"},
	}, r.Snapshot())
}
