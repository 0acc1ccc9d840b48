package tween

import "github.com/fogleman/ease"

// An Easing maps linear progress in [0,1] onto eased progress. Overshooting
// curves may return values outside [0,1].
type Easing func(t float64) float64

// DefaultEasing accelerates then decelerates. Plans without an overall easing
// curve use it.
func DefaultEasing(t float64) float64 {
	return ease.InOutSine(t)
}

// Linear leaves progress unchanged. Keyframe segments without an easing
// curve use it.
func Linear(t float64) float64 {
	return ease.Linear(t)
}

func (e Easing) apply(t float64) float64 {
	if e == nil {
		return t
	}
	return e(t)
}
