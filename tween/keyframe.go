package tween

// A Keyframe pins a value to an offset in [0,1] of an animation. Easing eases
// progress from the previous keyframe into this one.
type Keyframe[V any] struct {
	Offset float64
	Value  V
	Easing Easing

	// FromTarget means Value is ignored and the target's live value is read
	// when the animation starts.
	FromTarget bool
}

// An Animation is what a Performer hands to an Animator. The Animator owns the
// clock: it waits out StartDelay, calls Begin once, then calls Update with the
// linear fraction of Duration elapsed until it reaches 1.
type Animation interface {
	StartDelay() int64
	Duration() int64
	Begin()
	Update(fraction float64)
}

// PropertyAnimation drives one Property of one target through keyframes.
type PropertyAnimation[T any, V any] struct {
	Target     T
	Property   Property[T, V]
	Keyframes  []Keyframe[V]
	Easing     Easing
	DelayMs    int64
	DurationMs int64

	values []V
}

// StartDelay gets the delay in milliseconds before the animation begins.
func (a *PropertyAnimation[T, V]) StartDelay() int64 {
	return a.DelayMs
}

// Duration gets the length of the animation in milliseconds.
func (a *PropertyAnimation[T, V]) Duration() int64 {
	return a.DurationMs
}

// Begin resolves keyframes that read from the target.
func (a *PropertyAnimation[T, V]) Begin() {
	a.values = make([]V, len(a.Keyframes))
	for i, k := range a.Keyframes {
		if k.FromTarget {
			a.values[i] = a.Property.Get(a.Target)
		} else {
			a.values[i] = k.Value
		}
	}
}

// Update sets the property to its value at the given linear fraction.
func (a *PropertyAnimation[T, V]) Update(fraction float64) {
	if a.values == nil {
		a.Begin()
	}
	a.Property.Set(a.Target, a.valueAt(a.Easing.apply(fraction)))
}

func (a *PropertyAnimation[T, V]) valueAt(progress float64) V {
	// Hand-built animations may carry fewer than the two keyframes Tween
	// always produces.
	switch len(a.values) {
	case 0:
		return a.Property.Get(a.Target)
	case 1:
		return a.values[0]
	}

	// Progress outside [0,1] extrapolates along the first or last pair.
	i := 1
	for i < len(a.Keyframes)-1 && progress > a.Keyframes[i].Offset {
		i++
	}
	prev, next := a.Keyframes[i-1], a.Keyframes[i]

	local := 1.0
	if span := next.Offset - prev.Offset; span > 0 {
		local = (progress - prev.Offset) / span
	}
	local = next.Easing.apply(local)

	return a.Property.Interpolate(a.values[i-1], a.values[i], local)
}
