package particle

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	flowAlpha  = 2.0
	flowBeta   = 2.0
	flowOctave = 3
	flowScale  = 0.004 // noise units per pixel
)

// FlowField is a static noise field that turns each position into a small
// velocity nudge. Its magnitude never exceeds Strength.
type FlowField struct {
	Strength float64
	noise    *perlin.Perlin
}

// NewFlowField returns nil for a non-positive strength so callers can pass the
// result straight into Frame.
func NewFlowField(strength float64, seed int64) *FlowField {
	if strength <= 0 {
		return nil
	}
	return &FlowField{
		Strength: strength,
		noise:    perlin.NewPerlin(flowAlpha, flowBeta, flowOctave, seed),
	}
}

// Nudge maps the noise value at (x, y) to a direction and returns a vector of
// length Strength pointing that way.
func (f *FlowField) Nudge(x, y float64) (float64, float64) {
	angle := f.noise.Noise2D(x*flowScale, y*flowScale) * 2 * math.Pi
	return math.Cos(angle) * f.Strength, math.Sin(angle) * f.Strength
}
