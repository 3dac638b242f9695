// Package domain contains core concepts of the coordination system.
// This file defines live connections and their declared identity.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// Identity is what the identity collaborator vouches for. The core trusts
// it as given and never mutates it.
type Identity struct {
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	Role           Role   `json:"role"`
	Specialization string `json:"specialization,omitempty"`
}

// Profile is the public subset of an identity exchanged inside session
// events. It never carries the transport-level connection id.
type Profile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           Role   `json:"role"`
	Specialization string `json:"specialization,omitempty"`
}

func (i Identity) Public() Profile {
	return Profile{
		ID:             i.UserID,
		Name:           i.Name,
		Role:           i.Role,
		Specialization: i.Specialization,
	}
}

// Connection is the ephemeral per-link record held by the registry.
// SessionID is empty while the connection is not in a room; it is the
// field the accept race is resolved on.
type Connection struct {
	ID        string
	Identity  Identity
	LastSeen  time.Time
	SessionID string
}

// Registered reports whether register_user has been processed for this
// connection. A bare attach (transport open, no identity yet) is not
// visible to matching or fanout.
func (c Connection) Registered() bool {
	return c.Identity.UserID != ""
}
