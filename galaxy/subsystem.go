package galaxy

import (
	"math"
	"time"

	"github.com/lixenwraith/mind-palace/engine"
	"github.com/lixenwraith/mind-palace/starfield"
	"github.com/lixenwraith/mind-palace/vmath"
)

// Reference viewport the preset lengths are authored against
const (
	referenceWidth  = 1920.0
	referenceHeight = 1080.0
)

// depthRange normalizes star depth into a parallax factor
const depthRange = 1000.0

// ScaleFor returns the geometry scale and the star size scale for a pixel surface
// Star sizes shrink slower than geometry so stars stay visible on small terminals
func ScaleFor(pw, ph int) (geom, star float64) {
	geom = math.Min(float64(pw)/referenceWidth, float64(ph)/referenceHeight)
	if geom <= 0 {
		return 0, 0
	}
	star = vmath.Clamp(geom*4, 0.25, 1)
	return geom, star
}

// Arm is a rigid group of stars rotated by the subsystem's single accumulator
// Star positions are relative to the galaxy center in reference units
type Arm struct {
	Angle float64
	Stars []starfield.Star
}

// BlackHole is the swaying vortex state, in pixel space
type BlackHole struct {
	Center    vmath.Vec2
	Radius    float64
	Rotation  float64
	Intensity float64
}

// Link is one constellation segment between two drawn star positions
type Link struct {
	From, To vmath.Vec2
}

// Subsystem is one independent galaxy instance: its own rotation, stars and black hole
type Subsystem struct {
	preset    Preset
	bounds    starfield.Bounds
	center    vmath.Vec2
	scale     float64
	starScale float64
	rng       *vmath.FastRand
	start     time.Time

	rotation   float64
	arms       []Arm
	background []starfield.Star

	pointer     vmath.Vec2
	pointerSeen bool

	hole  BlackHole
	ticks uint64
}

// New builds a galaxy for a pixel surface of pw x ph; the surface is read once and never tracks resizes
func New(p Preset, pw, ph int, rng *vmath.FastRand, start time.Time) *Subsystem {
	geom, starScale := ScaleFor(pw, ph)
	bounds := starfield.Bounds{W: float64(pw), H: float64(ph)}
	s := &Subsystem{
		preset:    p,
		bounds:    bounds,
		center:    bounds.Center(),
		scale:     geom,
		starScale: starScale,
		rng:       rng,
		start:     start,
	}

	s.arms = make([]Arm, p.Arms)
	for a := range s.arms {
		armAngle := float64(a) * 2 * math.Pi / float64(p.Arms)
		stars := make([]starfield.Star, p.StarsPerArm)
		for i := range stars {
			t := float64(i) / float64(p.StarsPerArm)
			radius := p.BaseRadius + t*p.RadiusSpan
			star := starfield.SpawnStar(rng, starfield.Bounds{}, p.ArmStar)
			star.Pos = vmath.Polar(armAngle+t*p.Sweep, radius)
			star.Opacity = star.Brightness
			stars[i] = star
		}
		s.arms[a] = Arm{Angle: armAngle, Stars: stars}
	}

	s.background = starfield.SpawnStars(rng, bounds, p.BackgroundStar, p.Background)
	for i := range s.background {
		s.background[i].Opacity = s.background[i].Brightness * p.BackgroundGain
	}

	if bh := p.BlackHole; bh != nil {
		s.hole = BlackHole{
			Center:    s.center,
			Radius:    bh.Radius * geom,
			Intensity: bh.Intensity,
		}
	}
	return s
}

// Mount drives the subsystem from scope: one tick per frame plus the black hole spin timer
// Closing the scope stops every callback
func (s *Subsystem) Mount(scope *engine.Scope) *engine.FrameClock {
	sched := scope.Scheduler()
	fc := engine.NewFrameClock(scope, func(time.Duration) {
		s.Tick(sched.Now())
	})
	fc.Start()
	if bh := s.preset.BlackHole; bh != nil && bh.SpinEvery > 0 {
		scope.Every(bh.SpinEvery, s.SpinBlackHole)
	}
	return fc
}

// Tick advances rotation, twinkle phases and the black hole sway
func (s *Subsystem) Tick(now time.Time) {
	p := &s.preset
	s.ticks++
	s.rotation += p.RotationStep

	for a := range s.arms {
		stars := s.arms[a].Stars
		for i := range stars {
			star := &stars[i]
			if p.ArmTwinkle > 0 {
				star.Opacity = starfield.Twinkle(star, p.ArmTwinkle)
			} else {
				star.Opacity = star.Brightness
			}
		}
	}

	for i := range s.background {
		star := &s.background[i]
		op := star.Brightness
		if p.BackgroundTwinkle > 0 {
			op = starfield.Twinkle(star, p.BackgroundTwinkle)
		}
		op *= p.BackgroundGain
		op *= 1 - depthFactor(star)*p.DepthFade
		star.Opacity = vmath.Clamp(op, 0, 1)
		star.Flare = p.BackgroundFlare != nil && s.rng.Chance(p.BackgroundFlare.Chance)
	}

	if bh := p.BlackHole; bh != nil {
		ms := float64(now.Sub(s.start)) / float64(time.Millisecond)
		s.hole.Center = s.center.Add(vmath.V2(
			math.Sin(ms*bh.Freq.X)*bh.Sway.X,
			math.Cos(ms*bh.Freq.Y)*bh.Sway.Y,
		).Scale(s.scale))
	}
}

// SpinBlackHole advances the vortex rotation by one step
func (s *Subsystem) SpinBlackHole() {
	if bh := s.preset.BlackHole; bh != nil {
		s.hole.Rotation += bh.Spin
	}
}

// SetPointer records the pointer in pixel space
func (s *Subsystem) SetPointer(p vmath.Vec2) {
	s.pointer = p
	s.pointerSeen = true
}

func depthFactor(star *starfield.Star) float64 {
	return star.Z / depthRange
}

// ArmStarPos returns the screen position of an arm star under the current rotation
func (s *Subsystem) ArmStarPos(star *starfield.Star) vmath.Vec2 {
	return s.center.Add(star.Pos.Rotate(s.rotation).Scale(s.scale))
}

// BackgroundPos returns the parallax-shifted screen position of a background star
func (s *Subsystem) BackgroundPos(star *starfield.Star) vmath.Vec2 {
	p := &s.preset
	pf := depthFactor(star)
	pos := star.Pos
	if p.Orbit != (vmath.Vec2{}) {
		pos = pos.Add(vmath.V2(
			math.Sin(s.rotation*0.1)*pf*p.Orbit.X,
			math.Cos(s.rotation*0.1)*pf*p.Orbit.Y,
		).Scale(s.scale))
	}
	if p.PointerParallax > 0 && s.pointerSeen {
		pos = pos.Add(s.pointer.Sub(s.center).Scale(pf * p.PointerParallax))
	}
	return pos
}

// ArmStarRadius returns the drawn radius of an arm star
func (s *Subsystem) ArmStarRadius(star *starfield.Star) float64 {
	return star.Size * s.starScale
}

// BackgroundRadius returns the drawn radius of a background star after depth shrink
func (s *Subsystem) BackgroundRadius(star *starfield.Star) float64 {
	return star.Size * s.starScale * (1 - depthFactor(star)*s.preset.DepthShrink)
}

// InView reports whether a drawn position falls within the surface plus the preset's cull margin
func (s *Subsystem) InView(pos vmath.Vec2) bool {
	return s.bounds.Contains(pos, s.preset.CullMargin*s.scale)
}

// Constellation links background stars near the pointer that lie close to each other
// Proximity uses base positions; segments join drawn positions from (x1,y1) to (x2,y2)
func (s *Subsystem) Constellation() []Link {
	cs := s.preset.Constellation
	if cs == nil || !s.pointerSeen {
		return nil
	}
	reach := cs.PointerRadius * s.scale
	link := cs.LinkDistance * s.scale

	var near []int
	for i := range s.background {
		if s.background[i].Pos.Dist(s.pointer) < reach {
			near = append(near, i)
		}
	}

	var links []Link
	for a := 0; a < len(near); a++ {
		sa := &s.background[near[a]]
		for b := a + 1; b < len(near); b++ {
			sb := &s.background[near[b]]
			if sa.Pos.Dist(sb.Pos) < link {
				links = append(links, Link{From: s.BackgroundPos(sa), To: s.BackgroundPos(sb)})
			}
		}
	}
	return links
}

func (s *Subsystem) Preset() Preset { return s.preset }
func (s *Subsystem) Rotation() float64 { return s.rotation }
func (s *Subsystem) Arms() []Arm { return s.arms }
func (s *Subsystem) Background() []starfield.Star { return s.background }
func (s *Subsystem) BlackHole() BlackHole { return s.hole }
func (s *Subsystem) Center() vmath.Vec2 { return s.center }
func (s *Subsystem) Scale() float64 { return s.scale }
func (s *Subsystem) StarScale() float64 { return s.starScale }
func (s *Subsystem) Ticks() uint64 { return s.ticks }
func (s *Subsystem) Pointer() (vmath.Vec2, bool) { return s.pointer, s.pointerSeen }
func (s *Subsystem) Bounds() starfield.Bounds { return s.bounds }
