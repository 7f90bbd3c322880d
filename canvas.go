package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas draws onto whatever screen image ebiten handed to the current
// Draw call. Outside of Draw it has no target and drops every call.
type screenCanvas struct {
	target *ebiten.Image
}

func (c *screenCanvas) FillRect(x, y, w, h float64, col color.Color, alpha float64) {
	if c.target == nil {
		return
	}
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(w), float32(h), withAlpha(col, alpha), false)
}

func (c *screenCanvas) FillCircle(x, y, r float64, col color.Color, alpha float64) {
	if c.target == nil {
		return
	}
	vector.DrawFilledCircle(c.target, float32(x), float32(y), float32(r), withAlpha(col, alpha), true)
}

func (c *screenCanvas) StrokeLine(x0, y0, x1, y1, width float64, col color.Color, alpha float64) {
	if c.target == nil {
		return
	}
	vector.StrokeLine(c.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), withAlpha(col, alpha), true)
}

// withAlpha scales the color's straight alpha by alpha.
func withAlpha(col color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	a := math.Max(0, math.Min(1, alpha))
	n.A = uint8(math.Round(float64(n.A) * a))
	return n
}
