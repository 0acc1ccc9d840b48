// Package scheduler binds plans to targets and keeps track of which targets
// still have animations in flight.
package scheduler

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/matt-g-everett/ledtween/expression"
	"github.com/matt-g-everett/ledtween/tween"
)

// An Observer is told when a target becomes busy or idle.
type Observer[T comparable] func(target T, active bool)

// Scheduler owns one Performer per target.
type Scheduler[T comparable] struct {
	animator  tween.Animator
	delegated bool

	mu         sync.Mutex
	performers map[T]*tween.Performer[T]
	targets    map[string]T
	active     map[T]map[string]struct{}
	observers  []Observer[T]
}

// NewScheduler creates an instance of a Scheduler whose performers play
// animations with animator.
func NewScheduler[T comparable](animator tween.Animator) *Scheduler[T] {
	s := new(Scheduler[T])
	s.animator = animator
	s.performers = make(map[T]*tween.Performer[T])
	s.targets = make(map[string]T)
	s.active = make(map[T]map[string]struct{})
	return s
}

// UseDelegatedReporting makes performers created from now on report the
// start and end of each plan instead of taking tokens.
func (s *Scheduler[T]) UseDelegatedReporting() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delegated = true
}

// Observe registers o for busy and idle transitions.
func (s *Scheduler[T]) Observe(o Observer[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// AddPlan hands plan to target's performer.
func (s *Scheduler[T]) AddPlan(plan tween.Plan[T], target T) error {
	p := s.performer(target)
	if err := p.AddPlan(plan); err != nil {
		log.Printf("Rejected %T plan for performer %s: %v", plan, p.ID(), err)
		return err
	}
	return nil
}

// AddPlans hands each plan to target's performer. A rejected plan does not
// stop the others; all rejections are returned together.
func (s *Scheduler[T]) AddPlans(target T, plans ...tween.Plan[T]) error {
	var errs []error
	for i, plan := range plans {
		if err := s.AddPlan(plan, target); err != nil {
			errs = append(errs, fmt.Errorf("plan %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Commit realizes e and adds its plans to target.
func (s *Scheduler[T]) Commit(e expression.Expression[T], target T) error {
	return s.AddPlans(target, e.Plans()...)
}

// IsActive reports whether target has animations in flight.
func (s *Scheduler[T]) IsActive(target T) bool {
	return s.ActiveCount(target) > 0
}

// ActiveCount gets the number of animations in flight on target.
func (s *Scheduler[T]) ActiveCount(target T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active[target])
}

// ReportDelegatedStart marks a performer's unit of work as in flight.
func (s *Scheduler[T]) ReportDelegatedStart(performerID, workID string) {
	s.acquire(s.targetOf(performerID), performerID+"/"+workID)
}

// ReportDelegatedEnd marks a performer's unit of work as finished.
func (s *Scheduler[T]) ReportDelegatedEnd(performerID, workID string) {
	s.release(s.targetOf(performerID), performerID+"/"+workID)
}

func (s *Scheduler[T]) performer(target T) *tween.Performer[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.performers[target]; ok {
		return p
	}

	p := tween.NewPerformer(uuid.NewString(), target, s.animator)
	if s.delegated {
		p.SetDelegatedReporter(s)
	} else {
		p.SetTokenGenerator(&tokenGenerator[T]{scheduler: s, target: target})
	}
	s.performers[target] = p
	s.targets[p.ID()] = target
	return p
}

func (s *Scheduler[T]) targetOf(performerID string) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.targets[performerID]
	if !ok {
		panic(fmt.Sprintf("scheduler: unknown performer %s", performerID))
	}
	return target
}

func (s *Scheduler[T]) acquire(target T, key string) {
	s.mu.Lock()
	work, ok := s.active[target]
	if !ok {
		work = make(map[string]struct{})
		s.active[target] = work
	}
	if _, dup := work[key]; dup {
		s.mu.Unlock()
		panic(fmt.Sprintf("scheduler: %s is already active", key))
	}
	work[key] = struct{}{}
	becameActive := len(work) == 1
	observers := s.observers
	s.mu.Unlock()

	if becameActive {
		notify(observers, target, true)
	}
}

func (s *Scheduler[T]) release(target T, key string) {
	s.mu.Lock()
	work := s.active[target]
	if _, ok := work[key]; !ok {
		s.mu.Unlock()
		panic(fmt.Sprintf("scheduler: %s is not active", key))
	}
	delete(work, key)
	becameIdle := len(work) == 0
	if becameIdle {
		delete(s.active, target)
	}
	observers := s.observers
	s.mu.Unlock()

	if becameIdle {
		notify(observers, target, false)
	}
}

func notify[T comparable](observers []Observer[T], target T, active bool) {
	for _, o := range observers {
		o(target, active)
	}
}

type tokenGenerator[T comparable] struct {
	scheduler *Scheduler[T]
	target    T
}

func (g *tokenGenerator[T]) Generate() tween.Token {
	t := &token[T]{scheduler: g.scheduler, target: g.target, id: uuid.NewString()}
	g.scheduler.acquire(g.target, t.id)
	return t
}

type token[T comparable] struct {
	scheduler  *Scheduler[T]
	target     T
	id         string
	terminated atomic.Bool
}

func (t *token[T]) Terminate() {
	if !t.terminated.CompareAndSwap(false, true) {
		panic(fmt.Sprintf("scheduler: token %s terminated twice", t.id))
	}
	t.scheduler.release(t.target, t.id)
}
