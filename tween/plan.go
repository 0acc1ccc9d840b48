package tween

import "fmt"

// Kind identifies the family a Plan belongs to.
type Kind int

const (
	// KindTween plans interpolate a Property through keyframe values.
	KindTween Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case KindTween:
		return "tween"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// A Plan describes an animation intent for targets of type T. Plans are
// treated as immutable once handed to a Performer.
type Plan[T any] interface {
	Kind() Kind
}

// A Tween interpolates a Property through a sequence of keyframe values.
//
// If Values has a single element it is treated as the final value and the
// initial value is read from the target when the animation starts.
type Tween[T any, V any] struct {
	Property Property[T, V]
	Values   []V

	// Offsets optionally paces the keyframes. Each offset is the fraction of
	// the duration at which the identically indexed value applies. Values
	// are evenly spaced when nil.
	Offsets []float64

	// KeyframeEasings optionally eases each pair of neighbouring keyframes
	// and has one fewer element than Values. Linear when nil.
	KeyframeEasings []Easing

	// Easing is the overall curve, composed with KeyframeEasings.
	// DefaultEasing when nil.
	Easing Easing

	Duration int64
	Delay    int64

	// Segment optionally restricts the tween to part of Duration.
	Segment *TimingSegment
}

// NewTween creates an instance of a Tween plan.
func NewTween[T any, V any](property Property[T, V], durationMs int64, values ...V) *Tween[T, V] {
	t := new(Tween[T, V])
	t.Property = property
	t.Duration = durationMs
	t.Values = values
	return t
}

// Kind returns KindTween.
func (t *Tween[T, V]) Kind() Kind {
	return KindTween
}

// Clone returns a copy of t that shares no slices with it.
func (t *Tween[T, V]) Clone() *Tween[T, V] {
	c := *t
	c.Values = cloneSlice(t.Values)
	c.Offsets = cloneSlice(t.Offsets)
	c.KeyframeEasings = cloneSlice(t.KeyframeEasings)
	if t.Segment != nil {
		s := *t.Segment
		c.Segment = &s
	}
	return &c
}

// Timing resolves the absolute start delay and duration of the tween.
func (t *Tween[T, V]) Timing() (delayMs int64, durationMs int64) {
	if t.Segment == nil {
		return t.Delay, t.Duration
	}
	return t.Delay + t.Segment.StartDelay(t.Duration), t.Segment.Duration(t.Duration)
}

// Validate checks the tween's invariants.
func (t *Tween[T, V]) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil tween", ErrInvalidPlan)
	}
	if err := t.Property.check(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}

	n := len(t.Values)
	if n == 0 {
		return fmt.Errorf("%w: no values for %s", ErrInvalidPlan, t.Property)
	}

	if t.Offsets != nil {
		if len(t.Offsets) != n {
			return fmt.Errorf("%w: %d offsets for %d values", ErrInvalidPlan, len(t.Offsets), n)
		}
		for i, o := range t.Offsets {
			if o < 0 || o > 1 {
				return fmt.Errorf("%w: offset %v out of range", ErrInvalidPlan, o)
			}
			if i > 0 && o < t.Offsets[i-1] {
				return fmt.Errorf("%w: offsets decrease at index %d", ErrInvalidPlan, i)
			}
		}
		if n > 1 && (t.Offsets[0] != 0 || t.Offsets[n-1] != 1) {
			return fmt.Errorf("%w: offsets must run from 0 to 1", ErrInvalidPlan)
		}
	}

	if t.KeyframeEasings != nil && len(t.KeyframeEasings) != n-1 {
		return fmt.Errorf("%w: %d keyframe easings for %d values", ErrInvalidPlan, len(t.KeyframeEasings), n)
	}

	if t.Duration < 0 || t.Delay < 0 {
		return fmt.Errorf("%w: negative duration or delay", ErrInvalidPlan)
	}

	if t.Segment != nil && !t.Segment.valid() {
		return fmt.Errorf("%w: bad timing segment %+v", ErrInvalidPlan, *t.Segment)
	}

	return nil
}

// Keyframes computes the keyframes for a validated tween.
func (t *Tween[T, V]) Keyframes() []Keyframe[V] {
	n := len(t.Values)
	if n == 1 {
		return []Keyframe[V]{
			{Offset: 0, FromTarget: true},
			{Offset: 1, Value: t.Values[0]},
		}
	}

	keyframes := make([]Keyframe[V], n)
	for i, v := range t.Values {
		k := Keyframe[V]{Value: v}
		if t.Offsets != nil {
			k.Offset = t.Offsets[i]
		} else {
			k.Offset = float64(i) / float64(n-1)
		}
		if i > 0 && t.KeyframeEasings != nil {
			k.Easing = t.KeyframeEasings[i-1]
		}
		keyframes[i] = k
	}

	return keyframes
}

func (t *Tween[T, V]) animate(target T) Animation {
	delay, duration := t.Timing()
	easing := t.Easing
	if easing == nil {
		easing = DefaultEasing
	}

	a := new(PropertyAnimation[T, V])
	a.Target = target
	a.Property = t.Property
	a.Keyframes = t.Keyframes()
	a.Easing = easing
	a.DelayMs = delay
	a.DurationMs = duration
	return a
}

func cloneSlice[E any](s []E) []E {
	if s == nil {
		return nil
	}
	return append(make([]E, 0, len(s)), s...)
}
