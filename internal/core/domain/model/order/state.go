package order

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// State represents the lifecycle state of an order.
//
// The default transition graph:
//
//	AddingItems ──> ArrangingPayment ──> PaymentAuthorized ──> PaymentSettled
//	     │                 │                     │
//	     └─────────────────┴─────────────────────┴──> Cancelled
//
// PaymentSettled and Cancelled are terminal. The edges themselves live in a
// StateMachine so deployments can configure a different graph; State only
// names the states.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// AddingItems is the initial state: the order is an active cart whose
	// lines, customer and shipping selection may still change.
	AddingItems

	// ArrangingPayment means checkout has begun; mutating the line graph is
	// no longer legal.
	ArrangingPayment

	// PaymentAuthorized means a payment is authorized but not yet captured.
	PaymentAuthorized

	// PaymentSettled means payment is captured. Terminal.
	PaymentSettled

	// Cancelled means the order was abandoned or rejected. Terminal.
	Cancelled
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:           "Unknown",
		AddingItems:       "AddingItems",
		ArrangingPayment:  "ArrangingPayment",
		PaymentAuthorized: "PaymentAuthorized",
		PaymentSettled:    "PaymentSettled",
		Cancelled:         "Cancelled",
	}
}

func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]string{
		AddingItems:       "AddingItems",
		ArrangingPayment:  "ArrangingPayment",
		PaymentAuthorized: "PaymentAuthorized",
		PaymentSettled:    "PaymentSettled",
		Cancelled:         "Cancelled",
	}
}

// Validate checks that the State is one of the defined lifecycle states.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid",
			fmt.Errorf("%d is not a valid order state", s))
	}
	return nil
}

// String returns the state's name, or "Unknown" for invalid values.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StateFromString parses a state name as it appears over the wire.
func StateFromString(name string) (State, error) {
	for s, str := range getValidStateStrings() {
		if str == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("state is invalid",
		fmt.Errorf("%q is not a valid order state", name))
}

// IsTerminal reports whether the state has no outgoing edges in the default
// transition graph.
func (s State) IsTerminal() bool {
	return s == PaymentSettled || s == Cancelled
}

// ActiveStates returns the states in which an order still counts as a
// customer's active order.
func ActiveStates() []State {
	return []State{AddingItems, ArrangingPayment, PaymentAuthorized}
}
