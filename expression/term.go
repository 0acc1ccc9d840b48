package expression

import (
	"fmt"

	"github.com/matt-g-everett/ledtween/tween"
)

// A TweenTerm is a link in an expression whose plans tween a property with
// values of type V.
type TweenTerm[T any, V any] struct {
	lang *Language[T]
	node *node[T]
}

// Plans realizes the whole expression up to and including this term.
func (t *TweenTerm[T, V]) Plans() []tween.Plan[T] {
	plans, _ := t.node.realize()
	return plans
}

// And continues the expression with a new term from the same Language.
func (t *TweenTerm[T, V]) And() *Language[T] {
	l := new(Language[T])
	l.catalog = t.lang.catalog
	l.defaults = t.lang.defaults
	l.head = t.node
	return l
}

// During restricts the tween to a segment of its duration.
func (t *TweenTerm[T, V]) During(segment tween.TimingSegment) *TweenTerm[T, V] {
	return t.modify(func(tw *tween.Tween[T, V]) {
		tw.Segment = &segment
	})
}

// WithEasingCurve sets the overall easing curve.
func (t *TweenTerm[T, V]) WithEasingCurve(easing tween.Easing) *TweenTerm[T, V] {
	return t.modify(func(tw *tween.Tween[T, V]) {
		tw.Easing = easing
	})
}

// WithDuration sets the total duration in milliseconds.
func (t *TweenTerm[T, V]) WithDuration(durationMs int64) *TweenTerm[T, V] {
	return t.modify(func(tw *tween.Tween[T, V]) {
		tw.Duration = durationMs
	})
}

// WithDelay sets a delay in milliseconds before the tween starts.
func (t *TweenTerm[T, V]) WithDelay(delayMs int64) *TweenTerm[T, V] {
	return t.modify(func(tw *tween.Tween[T, V]) {
		tw.Delay = delayMs
	})
}

// WithOffsets paces the keyframes.
func (t *TweenTerm[T, V]) WithOffsets(offsets ...float64) *TweenTerm[T, V] {
	offsets = append([]float64(nil), offsets...)
	return t.modify(func(tw *tween.Tween[T, V]) {
		tw.Offsets = append([]float64(nil), offsets...)
	})
}

// WithKeyframeEasings eases between each pair of neighbouring keyframes.
func (t *TweenTerm[T, V]) WithKeyframeEasings(easings ...tween.Easing) *TweenTerm[T, V] {
	easings = append([]tween.Easing(nil), easings...)
	return t.modify(func(tw *tween.Tween[T, V]) {
		tw.KeyframeEasings = append([]tween.Easing(nil), easings...)
	})
}

// From sets the first value. A tween with only a final value gains value as
// an explicit start.
func (t *TweenTerm[T, V]) From(value V) *TweenTerm[T, V] {
	return t.modify(func(tw *tween.Tween[T, V]) {
		switch len(tw.Values) {
		case 0:
			panic(fmt.Sprintf("expression: from on %s with no values", tw.Property))
		case 1:
			tw.Values = []V{value, tw.Values[0]}
		default:
			tw.Values[0] = value
		}
	})
}

// To sets the last value.
func (t *TweenTerm[T, V]) To(value V) *TweenTerm[T, V] {
	return t.modify(func(tw *tween.Tween[T, V]) {
		if len(tw.Values) == 0 {
			panic(fmt.Sprintf("expression: to on %s with no values", tw.Property))
		}
		tw.Values[len(tw.Values)-1] = value
	})
}

func (t *TweenTerm[T, V]) modify(change func(*tween.Tween[T, V])) *TweenTerm[T, V] {
	modify := func(p tween.Plan[T]) tween.Plan[T] {
		tw, ok := p.(*tween.Tween[T, V])
		if !ok {
			panic(fmt.Sprintf("expression: cannot modify %T as %T", p, tw))
		}
		c := tw.Clone()
		change(c)
		return c
	}

	next := new(TweenTerm[T, V])
	next.lang = t.lang
	next.node = &node[T]{prev: t.node, modify: modify}
	return next
}
