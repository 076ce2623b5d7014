package kernel

// RequestContext carries the session, channel and active-user identity of a
// single incoming request. Every mutating operation on an order requires one;
// owner-only operations additionally require the session to be present.
//
// RequestContext is constructed once at the request boundary and passed down
// unchanged. It is never stored beyond the request that created it.
type RequestContext struct {
	session      *Session
	channel      Channel
	activeUserID *UUID
}

// NewRequestContext creates a request context. The session and active user
// may be nil for anonymous, read-only requests.
func NewRequestContext(session *Session, channel Channel, activeUserID *UUID) RequestContext {
	return RequestContext{
		session:      session,
		channel:      channel,
		activeUserID: activeUserID,
	}
}

// Session returns the caller's session, or nil when the request is sessionless.
func (r RequestContext) Session() *Session {
	return r.session
}

// Channel returns the sales channel the request operates in.
func (r RequestContext) Channel() Channel {
	return r.channel
}

// ActiveUserID returns the authenticated user's ID, or nil for anonymous callers.
func (r RequestContext) ActiveUserID() *UUID {
	return r.activeUserID
}
