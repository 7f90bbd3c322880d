package particle

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/particle-playground/internal/config"
)

// Particle is a single simulated disc. Position and velocity are mutated in
// place every frame; radius and color are fixed at creation.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity

	// Life is reserved for fade-out and stays at 1.
	Life float64

	radius float64
	color  colorful.Color
}

// New builds a particle at rest with the given appearance.
func New(x, y, radius float64, c colorful.Color) Particle {
	return Particle{X: x, Y: y, Life: 1, radius: radius, color: c}
}

func (p *Particle) Radius() float64       { return p.radius }
func (p *Particle) Color() colorful.Color { return p.color }

// Viewport is the drawing surface size in pixels.
type Viewport struct {
	Width, Height int
}

// Empty reports a viewport with no area, which is never seeded.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Seed creates cfg.Count particles spread uniformly over vp. The returned
// slice is freshly allocated; previous collections are never patched.
func Seed(rng *rand.Rand, vp Viewport, cfg config.Config) []Particle {
	if vp.Empty() {
		return nil
	}
	n := max(cfg.Count, 0)
	w, h := float64(vp.Width), float64(vp.Height)

	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			X:      rng.Float64() * w,
			Y:      rng.Float64() * h,
			VX:     (rng.Float64() - 0.5) * cfg.Speed,
			VY:     (rng.Float64() - 0.5) * cfg.Speed,
			Life:   1,
			radius: cfg.Size + rng.Float64()*cfg.Size,
			color:  SchemeColor(rng, i, n, cfg.Scheme),
		}
	}
	return ps
}
