package runtime

import (
	"sync"

	"github.com/ramyaaaa4/sign-language-recognition/contract"
	"github.com/ramyaaaa4/sign-language-recognition/domain"
)

type roomEntry struct {
	session domain.Session
	known   bool // false for a membership-only room the directory never created
	members map[string]contract.EventSink
}

// Directory tracks active rooms and which connections occupy each. A room
// can exist as pure membership before (or without) a recorded session:
// joining an unknown session id still yields a broadcast scope, matching
// the original room semantics.
type Directory struct {
	mu    sync.RWMutex
	rooms map[string]*roomEntry
}

func NewDirectory() *Directory {
	return &Directory{rooms: make(map[string]*roomEntry)}
}

// Create records a new session and subscribes both participants to its
// channel. Only the matching protocol calls this.
func (d *Directory) Create(s domain.Session, patientSink, doctorSink contract.EventSink) {
	d.mu.Lock()
	defer d.mu.Unlock()

	room := d.room(s.ID)
	room.session = s
	room.known = true
	if patientSink != nil {
		room.members[s.PatientConn] = patientSink
	}
	if doctorSink != nil {
		room.members[s.DoctorConn] = doctorSink
	}
}

// Join subscribes a connection to a session's channel and returns the
// session record when the directory knows it, plus the sinks of the members
// that were already present.
func (d *Directory) Join(sessionID, connID string, sink contract.EventSink) (domain.Session, bool, []contract.EventSink) {
	d.mu.Lock()
	defer d.mu.Unlock()

	room := d.room(sessionID)
	var existing []contract.EventSink
	for id, s := range room.members {
		if id != connID {
			existing = append(existing, s)
		}
	}
	room.members[connID] = sink
	return room.session, room.known, existing
}

// Leave drops a single membership without ending the session. An empty
// membership-only room is removed to avoid leaking entries.
func (d *Directory) Leave(sessionID, connID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	room, ok := d.rooms[sessionID]
	if !ok {
		return
	}
	delete(room.members, connID)
	if len(room.members) == 0 && !room.known {
		delete(d.rooms, sessionID)
	}
}

func (d *Directory) Get(sessionID string) (domain.Session, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	room, ok := d.rooms[sessionID]
	if !ok || !room.known {
		return domain.Session{}, false
	}
	return room.session, true
}

// Members returns the sinks currently subscribed to a session's channel,
// excluding one connection id. Pass an empty exclude to reach everyone.
func (d *Directory) Members(sessionID, exclude string) []contract.EventSink {
	d.mu.RLock()
	defer d.mu.RUnlock()

	room, ok := d.rooms[sessionID]
	if !ok {
		return nil
	}
	var sinks []contract.EventSink
	for id, s := range room.members {
		if id != exclude {
			sinks = append(sinks, s)
		}
	}
	return sinks
}

// End removes the session and its channel, returning the final record and
// member ids for the caller's cleanup. Ending an absent session is a no-op,
// never an error: the explicit end and the disconnect teardown race for it.
func (d *Directory) End(sessionID string) (domain.Session, []string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	room, ok := d.rooms[sessionID]
	if !ok {
		return domain.Session{}, nil, false
	}
	delete(d.rooms, sessionID)

	var memberIDs []string
	for id := range room.members {
		memberIDs = append(memberIDs, id)
	}
	return room.session, memberIDs, room.known
}

func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := 0
	for _, room := range d.rooms {
		if room.known {
			n++
		}
	}
	return n
}

// room returns the entry for a session id, creating a membership-only one
// on the fly. Caller must hold the write lock.
func (d *Directory) room(sessionID string) *roomEntry {
	room, ok := d.rooms[sessionID]
	if !ok {
		room = &roomEntry{members: make(map[string]contract.EventSink)}
		d.rooms[sessionID] = room
	}
	return room
}
