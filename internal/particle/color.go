package particle

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/particle-playground/internal/config"
)

// Fallback is used for schemes the generator does not know.
var Fallback = colorful.Color{R: 1, G: 1, B: 1}

// SchemeColor returns the color of particle i out of n. Only rainbow depends on
// the index; the other schemes draw a fresh random hue on every call, so two
// seeds with the same scheme look different.
func SchemeColor(rng *rand.Rand, i, n int, scheme config.ColorScheme) colorful.Color {
	switch scheme {
	case config.Rainbow:
		hue := 0.0
		if n > 0 {
			hue = float64(i) / float64(n) * 360
		}
		return colorful.Hsl(hue, 0.8, 0.6)
	case config.Fire:
		return colorful.Hsl(rng.Float64()*30, 1, 0.5)
	case config.Ocean:
		return colorful.Hsl(200+rng.Float64()*40, 0.8, 0.6)
	case config.Purple:
		return colorful.Hsl(270+rng.Float64()*60, 0.8, 0.6)
	default:
		return Fallback
	}
}
