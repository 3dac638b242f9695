package runtime

import (
	"sync"
	"time"

	"github.com/ramyaaaa4/sign-language-recognition/contract"
	"github.com/ramyaaaa4/sign-language-recognition/domain"
	"github.com/ramyaaaa4/sign-language-recognition/errors"
)

type connEntry struct {
	conn domain.Connection
	sink contract.EventSink
}

// Registry is the keyed store of live connections. All mutations are
// serialized behind one RWMutex; Claim is the single compare-and-swap that
// resolves concurrent acceptance on a patient's record.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*connEntry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*connEntry)}
}

// Attach records a transport-level connection before any identity is known.
// Attaching twice replaces the sink, which covers a reconnect reusing an id.
func (r *Registry) Attach(connID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[connID]; ok {
		e.sink = sink
		return
	}
	r.entries[connID] = &connEntry{
		conn: domain.Connection{ID: connID, LastSeen: time.Now().UTC()},
		sink: sink,
	}
}

// Register upserts the declared identity of a connection. Re-registering
// the same connection id overwrites rather than duplicates.
func (r *Registry) Register(connID string, identity domain.Identity) domain.Connection {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[connID]
	if !ok {
		e = &connEntry{conn: domain.Connection{ID: connID}}
		r.entries[connID] = e
	}
	e.conn.Identity = identity
	e.conn.LastSeen = time.Now().UTC()
	return e.conn
}

func (r *Registry) Lookup(connID string) (domain.Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[connID]
	if !ok {
		return domain.Connection{}, false
	}
	return e.conn, true
}

func (r *Registry) Sink(connID string) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[connID]
	if !ok || e.sink == nil {
		return nil, false
	}
	return e.sink, true
}

// Heartbeat refreshes last-seen. A heartbeat for an absent connection is a
// silent no-op: the caller already expired.
func (r *Registry) Heartbeat(connID string, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[connID]; ok {
		e.conn.LastSeen = now
	}
}

// Remove deletes the entry and returns the final record so the caller can
// run the cascading teardown (session end, doctor_offline).
func (r *Registry) Remove(connID string) (domain.Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[connID]
	if !ok {
		return domain.Connection{}, false
	}
	delete(r.entries, connID)
	return e.conn, true
}

// Claim atomically binds a patient to a freshly minted session id.
// Exactly one concurrent acceptance for the same patient can observe the
// session slot as empty; every other claimant fails cleanly.
func (r *Registry) Claim(patientID, sessionID string) (domain.Connection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[patientID]
	if !ok || !e.conn.Registered() {
		return domain.Connection{}, errors.ErrNotConnected
	}
	if e.conn.SessionID != "" {
		return domain.Connection{}, errors.ErrAlreadyInSession
	}
	e.conn.SessionID = sessionID
	return e.conn, nil
}

// Bind sets the current session without a guard. It is used for the doctor
// side of a claim and for join_session, where no race has to be resolved.
func (r *Registry) Bind(connID, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[connID]; ok {
		e.conn.SessionID = sessionID
	}
}

// ClearSession resets the session slot, but only if it still points at the
// given session. The explicit end and the disconnect teardown can race to
// clear the same participant.
func (r *Registry) ClearSession(connID, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[connID]; ok && e.conn.SessionID == sessionID {
		e.conn.SessionID = ""
	}
}

// Doctors returns the sinks of every registered doctor, excluding one
// connection id (usually the sender).
func (r *Registry) Doctors(exclude string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sinks []contract.EventSink
	for id, e := range r.entries {
		if id == exclude || e.sink == nil {
			continue
		}
		if e.conn.Identity.Role == domain.RoleDoctor {
			sinks = append(sinks, e.sink)
		}
	}
	return sinks
}

// Others returns the sinks of every attached connection except one. It backs
// the doctor_online / doctor_offline broadcasts.
func (r *Registry) Others(exclude string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sinks []contract.EventSink
	for id, e := range r.entries {
		if id == exclude || e.sink == nil {
			continue
		}
		sinks = append(sinks, e.sink)
	}
	return sinks
}

// Stale lists the connections whose last-seen timestamp is older than the
// idle threshold. The reaper feeds these ids into the disconnect path.
func (r *Registry) Stale(now time.Time, idle time.Duration) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, e := range r.entries {
		if now.Sub(e.conn.LastSeen) > idle {
			ids = append(ids, id)
		}
	}
	return ids
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
