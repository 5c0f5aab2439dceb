package render

import (
	"math"

	"github.com/lixenwraith/mind-palace/vmath"
)

// subPixelRadius is the radius below which a disc collapses to one coverage-weighted pixel
const subPixelRadius = 0.75

// Disc fills a circle in pixel space with source-over alpha
func (b *RenderBuffer) Disc(center vmath.Vec2, radius float64, c RGB, alpha float64) {
	b.disc(center, radius, c, alpha, b.BlendPixel)
}

// Glow fills a circle additively, for halos over dark space
func (b *RenderBuffer) Glow(center vmath.Vec2, radius float64, c RGB, alpha float64) {
	b.disc(center, radius, c, alpha, b.AddPixel)
}

func (b *RenderBuffer) disc(center vmath.Vec2, radius float64, c RGB, alpha float64, plot func(x, y int, c RGB, a float64)) {
	if alpha <= 0 || radius <= 0 {
		return
	}
	if radius < subPixelRadius {
		coverage := math.Pi * radius * radius
		if coverage > 1 {
			coverage = 1
		}
		plot(int(math.Floor(center.X)), int(math.Floor(center.Y)), c, alpha*coverage)
		return
	}

	pw, ph := b.PixelSize()
	x0 := max(0, int(math.Floor(center.X-radius)))
	x1 := min(pw-1, int(math.Ceil(center.X+radius)))
	y0 := max(0, int(math.Floor(center.Y-radius)))
	y1 := min(ph-1, int(math.Ceil(center.Y+radius)))
	r2 := radius * radius

	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - center.Y
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - center.X
			if dx*dx+dy*dy <= r2 {
				plot(x, y, c, alpha)
			}
		}
	}
}

// RadialFill paints gradient g centered at center with gradient radius, clipped to a disc of clip radius
// Pixels map to gradient offset distance/radius
func (b *RenderBuffer) RadialFill(center vmath.Vec2, radius, clip float64, g Gradient) {
	if radius <= 0 || clip <= 0 {
		return
	}
	pw, ph := b.PixelSize()
	x0 := max(0, int(math.Floor(center.X-clip)))
	x1 := min(pw-1, int(math.Ceil(center.X+clip)))
	y0 := max(0, int(math.Floor(center.Y-clip)))
	y1 := min(ph-1, int(math.Ceil(center.Y+clip)))
	clip2 := clip * clip

	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - center.Y
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - center.X
			d2 := dx*dx + dy*dy
			if d2 > clip2 {
				continue
			}
			c, a := g.Sample(math.Sqrt(d2) / radius)
			b.BlendPixel(x, y, c, a)
		}
	}
}

// Line draws a one-pixel supercover line between two pixel-space points
func (b *RenderBuffer) Line(from, to vmath.Vec2, c RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	pw, ph := b.PixelSize()
	vmath.TraverseF(from.X, from.Y, to.X, to.Y, func(x, y int) bool {
		if x >= 0 && x < pw && y >= 0 && y < ph {
			b.BlendPixel(x, y, c, alpha)
		}
		return true
	})
}
