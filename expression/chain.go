// Package expression builds tween plans with a fluent, append-only chain of
// terms. Every call returns a new term; earlier terms are never changed, so
// any term can be branched from freely.
package expression

import "github.com/matt-g-everett/ledtween/tween"

// An Expression produces plans for targets of type T.
type Expression[T any] interface {
	Plans() []tween.Plan[T]
}

// A node is one link of a chain. It either initializes new plans or modifies
// the plans of the most recent initializer before it.
type node[T any] struct {
	prev       *node[T]
	initialize func() []tween.Plan[T]
	modify     func(tween.Plan[T]) tween.Plan[T]
}

// realize folds the chain from its root, returning fresh plans and the index
// of the first plan owned by the most recent initializer.
func (n *node[T]) realize() ([]tween.Plan[T], int) {
	if n == nil {
		return nil, 0
	}

	plans, start := n.prev.realize()
	if n.initialize != nil {
		return append(plans, n.initialize()...), len(plans)
	}

	for i := start; i < len(plans); i++ {
		plans[i] = n.modify(plans[i])
	}
	return plans, start
}
