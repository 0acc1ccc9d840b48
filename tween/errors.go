package tween

import "errors"

var (
	// ErrInvalidPlan is returned when a plan breaks its own invariants. The
	// target is never touched.
	ErrInvalidPlan = errors.New("plan failed validation")

	// ErrUnsupportedPlan is returned when a Performer is given a kind of plan
	// it does not know how to perform.
	ErrUnsupportedPlan = errors.New("plan type not supported")
)
