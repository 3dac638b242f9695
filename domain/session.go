package domain

import "time"

type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionEnded  SessionStatus = "ended"
)

// Session is an active room between exactly one patient and one doctor.
// Identities are snapshotted at creation so that counterpart info survives
// a participant re-joining after the peer record changed.
type Session struct {
	ID          string
	PatientConn string
	DoctorConn  string
	Patient     Identity
	Doctor      Identity
	StartTime   time.Time
	EndTime     time.Time
	Status      SessionStatus
}

// Complete reports whether both participant slots are recorded.
func (s Session) Complete() bool {
	return s.PatientConn != "" && s.DoctorConn != ""
}

// CounterpartOf returns the identity facing the given connection.
func (s Session) CounterpartOf(connID string) (Identity, bool) {
	switch connID {
	case s.PatientConn:
		return s.Doctor, true
	case s.DoctorConn:
		return s.Patient, true
	default:
		return Identity{}, false
	}
}
