package stream

import (
	"github.com/lucasb-eyer/go-colorful"
)

// GradientStop pins a hue to a position along a gradient.
type GradientStop struct {
	Hue float64 `yaml:"hue"`
	Pos float64 `yaml:"pos"`
}

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []GradientStop

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, v float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			// We are in between c1 and c2. Go blend them!
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hsv(h, s, v)
		}
	}

	// Before the first stop or past the last one.
	if len(g) > 0 && t < g[0].Pos {
		return colorful.Hsv(g[0].Hue, s, v)
	}
	return colorful.Hsv(g[len(g)-1].Hue, s, v)
}
