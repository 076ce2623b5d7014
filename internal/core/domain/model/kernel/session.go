package kernel

// Session is the per-caller state a request arrives with. It holds at most
// one active order reference at a time; the session store port is the only
// sanctioned mutator of that binding, so components other than the request
// currently processing the session never touch it.
type Session struct {
	id            string
	activeOrderID *UUID
}

// NewSession creates a session with no active order bound.
func NewSession(id string) *Session {
	return &Session{id: id}
}

// RestoreSession rebuilds a session from persisted state.
func RestoreSession(id string, activeOrderID *UUID) *Session {
	return &Session{id: id, activeOrderID: activeOrderID}
}

// ID returns the opaque session identifier.
func (s *Session) ID() string {
	return s.id
}

// ActiveOrderID returns the order currently bound to this session, or nil.
func (s *Session) ActiveOrderID() *UUID {
	return s.activeOrderID
}

// BindActiveOrder sets the active order reference.
// Called only by the session store when persisting the binding.
func (s *Session) BindActiveOrder(orderID UUID) {
	s.activeOrderID = &orderID
}

// UnbindActiveOrder clears the active order reference.
func (s *Session) UnbindActiveOrder() {
	s.activeOrderID = nil
}
