package tween

import "fmt"

// A Property is an animatable attribute of targets of type T holding values
// of type V.
type Property[T any, V any] struct {
	Name        string
	Get         func(target T) V
	Set         func(target T, value V)
	Interpolate func(a, b V, fraction float64) V
}

// Combined treats several properties as one. Setting the combined property
// sets every wrapped property in order; getting it reads only the first.
func Combined[T any, V any](name string, properties ...Property[T, V]) Property[T, V] {
	if len(properties) == 0 {
		panic("tween: combined property needs at least one property")
	}

	// Copy so later changes to the caller's slice can't leak in.
	props := append([]Property[T, V](nil), properties...)
	return Property[T, V]{
		Name: name,
		Get: func(target T) V {
			return props[0].Get(target)
		},
		Set: func(target T, value V) {
			for _, p := range props {
				p.Set(target, value)
			}
		},
		Interpolate: props[0].Interpolate,
	}
}

// Lerp linearly interpolates between two scalars.
func Lerp(a, b, fraction float64) float64 {
	return a + (b-a)*fraction
}

// FloatProperty creates a linearly interpolated scalar Property.
func FloatProperty[T any](name string, get func(T) float64, set func(T, float64)) Property[T, float64] {
	return Property[T, float64]{Name: name, Get: get, Set: set, Interpolate: Lerp}
}

func (p Property[T, V]) check() error {
	if p.Get == nil || p.Set == nil || p.Interpolate == nil {
		return fmt.Errorf("property %q is incomplete", p.Name)
	}
	return nil
}

func (p Property[T, V]) String() string {
	return p.Name
}
