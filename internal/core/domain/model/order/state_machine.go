package order

import (
	"errors"

	"commerce/internal/pkg/errs"
)

// ErrOrderHasNoLines is the guard failure preventing checkout of an empty order.
var ErrOrderHasNoLines = errors.New("order has no lines")

// TransitionGuard vetoes a configured edge based on the order's current
// contents. A nil return permits the transition.
type TransitionGuard func(o *Order) error

type transitionKey struct {
	from State
	to   State
}

// StateMachine enforces the directed graph of legal lifecycle transitions.
// The edge set and guards are supplied at construction, so deployments can
// reconfigure the lifecycle without touching the aggregate; the machine is
// the only component that assigns an order's state.
//
// A StateMachine is immutable after construction and safe for concurrent use.
type StateMachine struct {
	transitions map[State][]State
	guards      map[transitionKey]TransitionGuard
}

// NewStateMachine creates a machine over the given edge set.
func NewStateMachine(transitions map[State][]State) *StateMachine {
	copied := make(map[State][]State, len(transitions))
	for from, tos := range transitions {
		copied[from] = append([]State(nil), tos...)
	}
	return &StateMachine{
		transitions: copied,
		guards:      make(map[transitionKey]TransitionGuard),
	}
}

// WithGuard attaches a guard to the (from, to) edge and returns the machine
// for chaining during construction.
func (m *StateMachine) WithGuard(from, to State, guard TransitionGuard) *StateMachine {
	m.guards[transitionKey{from: from, to: to}] = guard
	return m
}

// NewDefaultStateMachine creates the standard order lifecycle:
// AddingItems through payment to settled, with Cancelled reachable from every
// non-terminal state. Leaving AddingItems requires at least one line.
func NewDefaultStateMachine() *StateMachine {
	return NewStateMachine(map[State][]State{
		AddingItems:       {ArrangingPayment, Cancelled},
		ArrangingPayment:  {PaymentAuthorized, PaymentSettled, Cancelled},
		PaymentAuthorized: {PaymentSettled, Cancelled},
	}).WithGuard(AddingItems, ArrangingPayment, func(o *Order) error {
		if o.IsEmpty() {
			return ErrOrderHasNoLines
		}
		return nil
	})
}

// NextStates returns all states reachable from the order's current state via
// a single configured edge whose guard (if any) currently passes.
func (m *StateMachine) NextStates(o *Order) []State {
	var next []State
	for _, to := range m.transitions[o.State()] {
		if guard, ok := m.guards[transitionKey{from: o.State(), to: to}]; ok {
			if guard(o) != nil {
				continue
			}
		}
		next = append(next, to)
	}
	return next
}

// Transition moves the order to the target state. It fails with an
// illegal-transition error when no edge exists from the current state or the
// edge's guard rejects; the order's state is left unchanged on failure.
func (m *StateMachine) Transition(o *Order, target State) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	from := o.State()
	if !m.hasEdge(from, target) {
		return errs.NewIllegalOrderTransitionError(from.String(), target.String())
	}

	if guard, ok := m.guards[transitionKey{from: from, to: target}]; ok {
		if err := guard(o); err != nil {
			return errs.NewIllegalOrderTransitionErrorWithCause(from.String(), target.String(), err)
		}
	}

	o.setState(target)
	return nil
}

func (m *StateMachine) hasEdge(from, to State) bool {
	for _, t := range m.transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
