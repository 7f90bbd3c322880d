package particle

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/particle-playground/internal/config"
)

// Canvas is the render target. Alpha is in [0,1] and multiplies the color's
// own alpha.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.Color, alpha float64)
	FillCircle(x, y, r float64, c color.Color, alpha float64)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color, alpha float64)
}

var (
	fadeColor = color.Black
	linkColor = color.White
)

// binKey identifies one LinkDistance-sized grid cell.
type binKey struct {
	X, Y int
}

// Renderer paints frames. It keeps its spatial bins between frames to avoid
// reallocating them; the zero value is ready to use.
type Renderer struct {
	bins map[binKey][]int
}

// Render fades the previous frame, draws every particle, then links each
// unordered pair closer than LinkDistance. It returns the number of links
// drawn.
func (r *Renderer) Render(c Canvas, ps []Particle, width, height float64) int {
	c.FillRect(0, 0, width, height, fadeColor, config.FadeAlpha)

	for i := range ps {
		p := &ps[i]
		c.FillCircle(p.X, p.Y, p.radius, p.color, 1)
	}

	r.buildBins(ps)
	return r.drawLinks(c, ps)
}

// buildBins assigns particle indices to grid cells. Any pair closer than
// LinkDistance lies in the same or an adjacent cell.
func (r *Renderer) buildBins(ps []Particle) {
	if r.bins == nil {
		r.bins = make(map[binKey][]int)
	}
	for k, bin := range r.bins {
		r.bins[k] = bin[:0]
	}
	for i := range ps {
		k := keyFor(ps[i].X, ps[i].Y)
		r.bins[k] = append(r.bins[k], i)
	}
}

func (r *Renderer) drawLinks(c Canvas, ps []Particle) int {
	links := 0
	for i := range ps {
		p := &ps[i]
		home := keyFor(p.X, p.Y)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, j := range r.bins[binKey{home.X + dx, home.Y + dy}] {
					if j <= i {
						continue // each pair once, never self
					}
					o := &ps[j]
					alpha, ok := LinkAlpha(p, o)
					if !ok {
						continue
					}
					c.StrokeLine(p.X, p.Y, o.X, o.Y, config.LinkWidth, linkColor, alpha)
					links++
				}
			}
		}
	}
	return links
}

// LinkAlpha returns the opacity of the line between a and b and whether the
// pair is close enough to be linked at all.
func LinkAlpha(a, b *Particle) (float64, bool) {
	dist := r2.Norm(r2.Sub(r2.Vec{X: b.X, Y: b.Y}, r2.Vec{X: a.X, Y: a.Y}))
	if dist >= config.LinkDistance {
		return 0, false
	}
	return (1 - dist/config.LinkDistance) * config.LinkAlpha, true
}

func keyFor(x, y float64) binKey {
	return binKey{
		X: int(math.Floor(x / config.LinkDistance)),
		Y: int(math.Floor(y / config.LinkDistance)),
	}
}
