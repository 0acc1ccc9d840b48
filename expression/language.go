package expression

import "github.com/matt-g-everett/ledtween/tween"

// DefaultDuration is used by a Language whose Defaults leave Duration unset.
const DefaultDuration int64 = 300

// Defaults seed every plan a Language initializes. A zero Duration is read as
// unset and replaced with DefaultDuration; terms that should be instantaneous
// ask for it with WithDuration(0).
type Defaults struct {
	Duration int64
	Easing   tween.Easing
}

// Catalog holds the properties behind a Language's convenience terms.
type Catalog[T any] struct {
	Alpha        tween.Property[T, float64]
	TranslationX tween.Property[T, float64]
	TranslationY tween.Property[T, float64]
	Scale        tween.Property[T, float64]
}

// A Language is the root of an expression. It offers a fixed set of tween
// terms, each seeded with a sensible pair of keyframes.
type Language[T any] struct {
	catalog  Catalog[T]
	defaults Defaults
	head     *node[T]
}

// NewLanguage creates an instance of an empty Language.
func NewLanguage[T any](catalog Catalog[T], defaults Defaults) *Language[T] {
	if defaults.Duration == 0 {
		defaults.Duration = DefaultDuration
	}
	if defaults.Easing == nil {
		defaults.Easing = tween.DefaultEasing
	}

	l := new(Language[T])
	l.catalog = catalog
	l.defaults = defaults
	return l
}

// Plans realizes every term chained before this point.
func (l *Language[T]) Plans() []tween.Plan[T] {
	plans, _ := l.head.realize()
	return plans
}

// Defaults gets the defaults applied to new plans.
func (l *Language[T]) Defaults() Defaults {
	return l.defaults
}

// FadeIn fades alpha from 0 to 1.
func (l *Language[T]) FadeIn() *TweenTerm[T, float64] {
	return l.Fade(0, 1)
}

// FadeOut fades alpha from 1 to 0.
func (l *Language[T]) FadeOut() *TweenTerm[T, float64] {
	return l.Fade(1, 0)
}

// Fade tweens alpha between two values.
func (l *Language[T]) Fade(from, to float64) *TweenTerm[T, float64] {
	return Tween(l, l.catalog.Alpha, from, to)
}

// MoveXInBy moves along x from an offset back to rest.
func (l *Language[T]) MoveXInBy(offset float64) *TweenTerm[T, float64] {
	return l.MoveXBy(offset, 0)
}

// MoveXOutBy moves along x from rest out to an offset.
func (l *Language[T]) MoveXOutBy(offset float64) *TweenTerm[T, float64] {
	return l.MoveXBy(0, offset)
}

// MoveXBy tweens the x translation between two values.
func (l *Language[T]) MoveXBy(from, to float64) *TweenTerm[T, float64] {
	return Tween(l, l.catalog.TranslationX, from, to)
}

// MoveYInBy moves along y from an offset back to rest.
func (l *Language[T]) MoveYInBy(offset float64) *TweenTerm[T, float64] {
	return l.MoveYBy(offset, 0)
}

// MoveYOutBy moves along y from rest out to an offset.
func (l *Language[T]) MoveYOutBy(offset float64) *TweenTerm[T, float64] {
	return l.MoveYBy(0, offset)
}

// MoveYBy tweens the y translation between two values.
func (l *Language[T]) MoveYBy(from, to float64) *TweenTerm[T, float64] {
	return Tween(l, l.catalog.TranslationY, from, to)
}

// ScaleInFrom scales from value up or down to 1.
func (l *Language[T]) ScaleInFrom(value float64) *TweenTerm[T, float64] {
	return l.Scale(value, 1)
}

// ScaleOutTo scales from 1 to value.
func (l *Language[T]) ScaleOutTo(value float64) *TweenTerm[T, float64] {
	return l.Scale(1, value)
}

// Scale tweens the scale between two values.
func (l *Language[T]) Scale(from, to float64) *TweenTerm[T, float64] {
	return Tween(l, l.catalog.Scale, from, to)
}

// Tween starts a term animating any property through values. A single value
// is the final value; the start is read from the target.
func Tween[T any, V any](l *Language[T], property tween.Property[T, V], values ...V) *TweenTerm[T, V] {
	keyframes := append([]V(nil), values...)
	defaults := l.defaults

	initialize := func() []tween.Plan[T] {
		tw := tween.NewTween(property, defaults.Duration, append([]V(nil), keyframes...)...)
		tw.Easing = defaults.Easing
		segment := tween.Complete
		tw.Segment = &segment
		return []tween.Plan[T]{tw}
	}

	t := new(TweenTerm[T, V])
	t.lang = l
	t.node = &node[T]{prev: l.head, initialize: initialize}
	return t
}
