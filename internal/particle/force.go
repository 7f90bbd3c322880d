package particle

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/particle-playground/internal/config"
)

// Pointer is the cursor position and whether the primary button is held.
type Pointer struct {
	X, Y   float64
	Active bool
}

// Frame is the read-only input of one tick. It is built once per tick so
// every particle sees the same pointer and mode.
type Frame struct {
	Width, Height float64
	Pointer       Pointer
	Mode          config.InteractionMode
	Flow          *FlowField // nil disables the flow field
}

// Advance steps every particle by one frame.
func Advance(ps []Particle, f Frame) {
	for i := range ps {
		Step(&ps[i], f)
	}
}

// Step advances one particle: pointer force, flow nudge, integration,
// boundary bounce, then friction. The order matters.
func Step(p *Particle, f Frame) {
	if f.Pointer.Active {
		applyPointer(p, f.Pointer, f.Mode)
	}
	if f.Flow != nil {
		nx, ny := f.Flow.Nudge(p.X, p.Y)
		p.VX += nx
		p.VY += ny
	}

	p.X += p.VX
	p.Y += p.VY

	// Bounce off edges
	if p.X < 0 || p.X > f.Width {
		p.VX *= -config.Restitution
		p.X = clamp(p.X, 0, f.Width)
	}
	if p.Y < 0 || p.Y > f.Height {
		p.VY *= -config.Restitution
		p.Y = clamp(p.Y, 0, f.Height)
	}

	p.VX *= config.Friction
	p.VY *= config.Friction
}

// applyPointer adds a force toward (attract) or away from (repel) the pointer,
// falling off linearly from 1 at the pointer to 0 at InteractionRadius. A
// particle exactly under the pointer has no direction and is left alone.
func applyPointer(p *Particle, ptr Pointer, mode config.InteractionMode) {
	d := r2.Sub(r2.Vec{X: ptr.X, Y: ptr.Y}, r2.Vec{X: p.X, Y: p.Y})
	dist := r2.Norm(d)
	force := PointerForce(dist)
	if force == 0 {
		return
	}
	k := mode.Sign() * force * config.ForceScale
	p.VX += d.X / dist * k
	p.VY += d.Y / dist * k
}

// PointerForce returns the falloff term for a particle at distance dist, or 0
// outside the interaction radius.
func PointerForce(dist float64) float64 {
	if dist <= 0 || dist >= config.InteractionRadius {
		return 0
	}
	return (config.InteractionRadius - dist) / config.InteractionRadius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
