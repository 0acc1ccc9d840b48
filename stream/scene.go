package stream

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/expression"
	"github.com/matt-g-everett/ledtween/tween"
	"github.com/matt-g-everett/ledtween/util"
)

var segments = map[string]tween.TimingSegment{
	"firstQuarter":       tween.FirstQuarter,
	"secondQuarter":      tween.SecondQuarter,
	"thirdQuarter":       tween.ThirdQuarter,
	"fourthQuarter":      tween.FourthQuarter,
	"firstHalf":          tween.FirstHalf,
	"middleHalf":         tween.MiddleHalf,
	"secondHalf":         tween.SecondHalf,
	"firstThreeQuarters": tween.FirstThreeQuarters,
	"lastThreeQuarters":  tween.LastThreeQuarters,
	"complete":           tween.Complete,
}

// A Scene is an expression bound to the layer it animates.
type Scene struct {
	Layer      *Layer
	Loop       bool
	Expression expression.Expression[*Layer]
}

// NewLanguage creates the Language scenes are written in.
func NewLanguage(config Config) (*expression.Language[*Layer], error) {
	defaults := expression.Defaults{Duration: config.Animation.Duration}
	if config.Animation.Easing != "" {
		e, err := util.Easing(config.Animation.Easing)
		if err != nil {
			return nil, err
		}
		defaults.Easing = e
	}
	return expression.NewLanguage(Catalog(), defaults), nil
}

// BuildExpression chains effects into one expression. Every effect after the
// first is joined with And.
func BuildExpression(lang *expression.Language[*Layer], effects []EffectConfig) (expression.Expression[*Layer], error) {
	if len(effects) == 0 {
		return nil, fmt.Errorf("scene has no effects")
	}

	var expr expression.Expression[*Layer]
	next := lang
	for i, e := range effects {
		var err error
		if e.Effect == "colour" {
			var term *expression.TweenTerm[*Layer, colorful.Color]
			if term, err = colourTerm(next, e); err == nil {
				expr, next = term, term.And()
			}
		} else {
			var term *expression.TweenTerm[*Layer, float64]
			if term, err = floatTerm(next, e); err == nil {
				expr, next = term, term.And()
			}
		}
		if err != nil {
			return nil, fmt.Errorf("effect %d (%s): %w", i, e.Effect, err)
		}
	}
	return expr, nil
}

func floatTerm(lang *expression.Language[*Layer], e EffectConfig) (*expression.TweenTerm[*Layer, float64], error) {
	var term *expression.TweenTerm[*Layer, float64]
	switch e.Effect {
	case "fadeIn":
		term = lang.FadeIn()
	case "fadeOut":
		term = lang.FadeOut()
	case "moveXInBy":
		term = lang.MoveXInBy(e.Value)
	case "moveXOutBy":
		term = lang.MoveXOutBy(e.Value)
	case "moveYInBy":
		term = lang.MoveYInBy(e.Value)
	case "moveYOutBy":
		term = lang.MoveYOutBy(e.Value)
	case "scaleInFrom":
		term = lang.ScaleInFrom(e.Value)
	case "scaleOutTo":
		term = lang.ScaleOutTo(e.Value)
	case "tween":
		property, ok := floatProperties[e.Property]
		if !ok {
			return nil, fmt.Errorf("unknown property %q", e.Property)
		}
		if len(e.Values) == 0 {
			return nil, fmt.Errorf("tween of %s has no values", e.Property)
		}
		term = expression.Tween(lang, property, e.Values...)
	default:
		return nil, fmt.Errorf("unknown effect")
	}

	if e.From != nil {
		term = term.From(*e.From)
	}
	if e.To != nil {
		term = term.To(*e.To)
	}
	return configure(term, e)
}

func colourTerm(lang *expression.Language[*Layer], e EffectConfig) (*expression.TweenTerm[*Layer, colorful.Color], error) {
	if len(e.Colours) == 0 {
		return nil, fmt.Errorf("no colours")
	}

	colours := make([]colorful.Color, len(e.Colours))
	for i, hex := range e.Colours {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, err
		}
		colours[i] = c
	}
	return configure(expression.Tween(lang, Colour, colours...), e)
}

func configure[V any](term *expression.TweenTerm[*Layer, V], e EffectConfig) (*expression.TweenTerm[*Layer, V], error) {
	if e.During != "" {
		segment, ok := segments[e.During]
		if !ok {
			return nil, fmt.Errorf("unknown segment %q", e.During)
		}
		term = term.During(segment)
	}
	if len(e.Segment) > 0 {
		if len(e.Segment) != 2 {
			return nil, fmt.Errorf("segment needs a from and a to")
		}
		term = term.During(tween.TimingSegment{From: e.Segment[0], To: e.Segment[1]})
	}
	if e.Easing != "" {
		easing, err := util.Easing(e.Easing)
		if err != nil {
			return nil, err
		}
		term = term.WithEasingCurve(easing)
	}
	if len(e.KeyframeEasings) > 0 {
		easings := make([]tween.Easing, len(e.KeyframeEasings))
		for i, name := range e.KeyframeEasings {
			easing, err := util.Easing(name)
			if err != nil {
				return nil, err
			}
			easings[i] = easing
		}
		term = term.WithKeyframeEasings(easings...)
	}
	if len(e.Offsets) > 0 {
		term = term.WithOffsets(e.Offsets...)
	}
	if e.Duration > 0 {
		term = term.WithDuration(e.Duration)
	}
	if e.Delay > 0 {
		term = term.WithDelay(e.Delay)
	}
	return term, nil
}
