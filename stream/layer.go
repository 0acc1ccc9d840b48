package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// A Layer is a rectangle of colour laid over the LEDs. Its position and size
// are in the same unit square as the pixel locations.
type Layer struct {
	Name   string
	X      float64
	Y      float64
	Width  float64
	Height float64

	TranslationX float64
	TranslationY float64
	ScaleX       float64
	ScaleY       float64
	Alpha        float64
	Colour       colorful.Color

	// Colour follows Gradient at GradientPos when a gradient is set.
	Gradient    GradientTable
	GradientPos float64
}

// NewLayer creates an instance of a Layer covering every pixel.
func NewLayer(name string, colour colorful.Color) *Layer {
	l := new(Layer)
	l.Name = name
	l.X = 0.5
	l.Y = 0.5
	l.Width = 1
	l.Height = 1
	l.ScaleX = 1
	l.ScaleY = 1
	l.Alpha = 1
	l.Colour = colour
	return l
}

// Covers reports whether p lies inside the layer as currently transformed.
func (l *Layer) Covers(p Point) bool {
	halfWidth := math.Abs(l.Width*l.ScaleX) / 2
	halfHeight := math.Abs(l.Height*l.ScaleY) / 2
	return math.Abs(p.X-(l.X+l.TranslationX)) <= halfWidth &&
		math.Abs(p.Y-(l.Y+l.TranslationY)) <= halfHeight
}

// Render blends the layer onto every covered pixel of f.
func (l *Layer) Render(f *Frame, locations []Point) {
	alpha := math.Max(0, math.Min(1, l.Alpha))
	if alpha == 0 {
		return
	}

	for i := 0; i < f.Len() && i < len(locations); i++ {
		if l.Covers(locations[i]) {
			f.Blend(i, l.Colour, alpha)
		}
	}
}

func (l *Layer) setGradientPos(pos float64) {
	l.GradientPos = pos
	if len(l.Gradient) > 0 {
		_, s, v := l.Colour.Hsv()
		l.Colour = l.Gradient.GetColor(pos, s, v)
	}
}
