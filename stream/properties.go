package stream

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/expression"
	"github.com/matt-g-everett/ledtween/tween"
)

// Properties of a Layer that can be tweened.
var (
	Alpha = tween.FloatProperty("alpha",
		func(l *Layer) float64 { return l.Alpha },
		func(l *Layer, v float64) { l.Alpha = v })
	TranslationX = tween.FloatProperty("translationX",
		func(l *Layer) float64 { return l.TranslationX },
		func(l *Layer, v float64) { l.TranslationX = v })
	TranslationY = tween.FloatProperty("translationY",
		func(l *Layer) float64 { return l.TranslationY },
		func(l *Layer, v float64) { l.TranslationY = v })
	ScaleX = tween.FloatProperty("scaleX",
		func(l *Layer) float64 { return l.ScaleX },
		func(l *Layer, v float64) { l.ScaleX = v })
	ScaleY = tween.FloatProperty("scaleY",
		func(l *Layer) float64 { return l.ScaleY },
		func(l *Layer, v float64) { l.ScaleY = v })
	Scale            = tween.Combined("scale", ScaleX, ScaleY)
	GradientPosition = tween.FloatProperty("gradientPosition",
		func(l *Layer) float64 { return l.GradientPos },
		(*Layer).setGradientPos)

	Colour = tween.Property[*Layer, colorful.Color]{
		Name:        "colour",
		Get:         func(l *Layer) colorful.Color { return l.Colour },
		Set:         func(l *Layer, c colorful.Color) { l.Colour = c },
		Interpolate: BlendColour,
	}
)

var floatProperties = map[string]tween.Property[*Layer, float64]{
	Alpha.Name:            Alpha,
	TranslationX.Name:     TranslationX,
	TranslationY.Name:     TranslationY,
	ScaleX.Name:           ScaleX,
	ScaleY.Name:           ScaleY,
	Scale.Name:            Scale,
	GradientPosition.Name: GradientPosition,
}

// BlendColour interpolates between two colours in HCL space.
func BlendColour(a, b colorful.Color, fraction float64) colorful.Color {
	return a.BlendHcl(b, fraction)
}

// Catalog gets the properties behind a Language's convenience terms.
func Catalog() expression.Catalog[*Layer] {
	return expression.Catalog[*Layer]{
		Alpha:        Alpha,
		TranslationX: TranslationX,
		TranslationY: TranslationY,
		Scale:        Scale,
	}
}
