package runtime

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ramyaaaa4/sign-language-recognition/domain"
)

func activeSession(patientConn, doctorConn string) domain.Session {
	return domain.Session{
		ID:          "session_" + uuid.NewString(),
		PatientConn: patientConn,
		DoctorConn:  doctorConn,
		Patient:     domain.Identity{UserID: "p", Name: "Alice", Role: domain.RolePatient},
		Doctor:      domain.Identity{UserID: "d", Name: "Dr. Smith", Role: domain.RoleDoctor},
		StartTime:   time.Now().UTC(),
		Status:      domain.SessionActive,
	}
}

func TestDirectory_Create_Subscribes_Both_Participants(t *testing.T) {
	req := require.New(t)
	directory := NewDirectory()
	patientConn := uuid.NewString()
	doctorConn := uuid.NewString()
	s := activeSession(patientConn, doctorConn)

	// When the matching protocol records the session
	directory.Create(s, Sink{}, Sink{})

	// Then the session is known and both members are on its channel
	got, ok := directory.Get(s.ID)
	req.True(ok)
	req.Equal(s.ID, got.ID)
	req.Len(directory.Members(s.ID, ""), 2)
	req.Len(directory.Members(s.ID, patientConn), 1)
	req.Equal(1, directory.Count())
}

func TestDirectory_Join_Unknown_Session_Gives_A_Channel_Only(t *testing.T) {
	req := require.New(t)
	directory := NewDirectory()
	sessionID := "session_" + uuid.NewString()

	// When a connection joins a session the directory never created
	_, known, existing := directory.Join(sessionID, uuid.NewString(), Sink{})

	// Then no session record exists, but the channel does
	req.False(known)
	req.Empty(existing)
	req.Len(directory.Members(sessionID, ""), 1)

	// And a membership-only room never counts as an active session
	req.Zero(directory.Count())
}

func TestDirectory_Join_Returns_Existing_Members(t *testing.T) {
	req := require.New(t)
	directory := NewDirectory()
	patientConn := uuid.NewString()
	doctorConn := uuid.NewString()
	s := activeSession(patientConn, doctorConn)
	directory.Create(s, Sink{}, Sink{})

	// When a third connection joins the channel
	got, known, existing := directory.Join(s.ID, uuid.NewString(), Sink{})

	// Then it sees the session and the two members already present
	req.True(known)
	req.Equal(s.ID, got.ID)
	req.Len(existing, 2)
	req.Len(directory.Members(s.ID, ""), 3)
}

func TestDirectory_Leave_Removes_An_Empty_Unknown_Room(t *testing.T) {
	req := require.New(t)
	directory := NewDirectory()
	sessionID := "session_" + uuid.NewString()
	connID := uuid.NewString()
	directory.Join(sessionID, connID, Sink{})

	// When the only member leaves
	directory.Leave(sessionID, connID)

	// Then the membership-only room is gone
	req.Empty(directory.Members(sessionID, ""))
}

func TestDirectory_End_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	directory := NewDirectory()
	s := activeSession(uuid.NewString(), uuid.NewString())
	directory.Create(s, Sink{}, Sink{})

	// When the session ends
	ended, memberIDs, known := directory.End(s.ID)

	// Then the caller gets the record and the members to clean up
	req.True(known)
	req.Equal(s.ID, ended.ID)
	req.Len(memberIDs, 2)
	req.Zero(directory.Count())

	// And a second end, racing the first, is a clean no-op
	_, _, known = directory.End(s.ID)
	req.False(known)
}
