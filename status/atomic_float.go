package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge value; the zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores val unchanged
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the current value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// SetPercent stores val clamped to [0, 100] and returns what was stored; NaN stores 0
func (f *AtomicFloat) SetPercent(val float64) float64 {
	switch {
	case math.IsNaN(val) || val < 0:
		val = 0
	case val > 100:
		val = 100
	}
	f.Set(val)
	return val
}
