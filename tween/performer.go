package tween

import (
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Listener receives an Animator's lifecycle callbacks.
type Listener struct {
	OnStart func()
	OnEnd   func()
}

// An Animator is the primitive that actually plays an Animation over time.
type Animator interface {
	Start(animation Animation, listener Listener)
}

// A Token marks a target as busy until it is terminated. Terminate must be
// called exactly once.
type Token interface {
	Terminate()
}

// A TokenGenerator issues a Token whenever a Performer starts an animation.
type TokenGenerator interface {
	Generate() Token
}

// A DelegatedReporter is told when a Performer starts and finishes a unit of
// delegated work. Each submitted plan gets its own workID, unique among the
// performer's work in flight.
type DelegatedReporter interface {
	ReportDelegatedStart(performerID, workID string)
	ReportDelegatedEnd(performerID, workID string)
}

type performable[T any] interface {
	Plan[T]
	Validate() error
	animate(target T) Animation
}

// A Performer executes plans against a single target using an Animator.
type Performer[T any] struct {
	id       string
	target   T
	animator Animator
	tokens   TokenGenerator
	delegate DelegatedReporter
}

// NewPerformer creates an instance of a Performer bound to target.
func NewPerformer[T any](id string, target T, animator Animator) *Performer[T] {
	p := new(Performer[T])
	p.id = id
	p.target = target
	p.animator = animator
	return p
}

// ID gets the performer's identity.
func (p *Performer[T]) ID() string {
	return p.id
}

// Target gets the target the performer is bound to.
func (p *Performer[T]) Target() T {
	return p.target
}

// SetTokenGenerator sets where liveness tokens come from.
func (p *Performer[T]) SetTokenGenerator(g TokenGenerator) {
	p.tokens = g
}

// SetDelegatedReporter reports start and end of each plan to r instead of
// issuing tokens.
func (p *Performer[T]) SetDelegatedReporter(r DelegatedReporter) {
	p.delegate = r
}

// AddPlan validates plan and starts animating it. Nothing is started and the
// target is untouched if an error is returned.
func (p *Performer[T]) AddPlan(plan Plan[T]) error {
	switch pl := plan.(type) {
	case performable[T]:
		return p.perform(pl)
	default:
		return fmt.Errorf("%w: %T for performer %s", ErrUnsupportedPlan, plan, p.id)
	}
}

func (p *Performer[T]) perform(plan performable[T]) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	a := &activity{
		performerID: p.id,
		workID:      uuid.NewString(),
		tokens:      p.tokens,
		delegate:    p.delegate,
	}
	p.animator.Start(plan.animate(p.target), Listener{OnStart: a.start, OnEnd: a.end})
	return nil
}

// activity tracks one running animation's liveness.
type activity struct {
	performerID string
	workID      string
	tokens      TokenGenerator
	delegate    DelegatedReporter

	token   Token
	started bool
	ended   bool
}

func (a *activity) start() {
	if a.started {
		panic(fmt.Sprintf("tween: work %s started twice", a.workID))
	}
	a.started = true

	switch {
	case a.delegate != nil:
		a.delegate.ReportDelegatedStart(a.performerID, a.workID)
	case a.tokens != nil:
		a.token = a.tokens.Generate()
	default:
		log.Printf("Performer %s has no liveness reporting for %s", a.performerID, a.workID)
	}
}

func (a *activity) end() {
	if !a.started || a.ended {
		panic(fmt.Sprintf("tween: work %s ended without a matching start", a.workID))
	}
	a.ended = true

	switch {
	case a.delegate != nil:
		a.delegate.ReportDelegatedEnd(a.performerID, a.workID)
	case a.token != nil:
		a.token.Terminate()
		a.token = nil
	}
}
