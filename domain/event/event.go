// Package event defines the outbound events the core emits back to
// connections, rooms, and the doctor group. Names and payload shapes match
// the wire protocol one to one.
package event

import "github.com/ramyaaaa4/sign-language-recognition/domain"

type Event interface {
	Name() string
}

type DoctorOnline struct {
	domain.Identity
}

func (DoctorOnline) Name() string { return "doctor_online" }

type DoctorOffline struct {
	domain.Identity
}

func (DoctorOffline) Name() string { return "doctor_offline" }

// PatientRequest carries an open request to every doctor's local view.
// SocketID is the patient's connection id, the handle a doctor accepts with.
type PatientRequest struct {
	domain.Identity
	SocketID  string `json:"socketId"`
	Urgency   string `json:"urgency"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func (PatientRequest) Name() string { return "patient_request" }

type SessionStarted struct {
	SessionID string         `json:"sessionId"`
	Doctor    domain.Profile `json:"doctor"`
}

func (SessionStarted) Name() string { return "session_started" }

type SessionCreated struct {
	SessionID string         `json:"sessionId"`
	Patient   domain.Profile `json:"patient"`
}

func (SessionCreated) Name() string { return "session_created" }

type SystemMessage struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	SessionID string `json:"sessionId"`
}

func (SystemMessage) Name() string { return "system_message" }

type NewMessage struct {
	Type      string          `json:"type"`
	Message   string          `json:"message"`
	Timestamp int64           `json:"timestamp"`
	Sender    domain.Identity `json:"sender"`
}

func (NewMessage) Name() string { return "new_message" }

type AslMessage struct {
	Type       string          `json:"type"`
	Message    string          `json:"message"`
	Confidence float64         `json:"confidence"`
	Timestamp  int64           `json:"timestamp"`
	Sender     domain.Identity `json:"sender"`
}

func (AslMessage) Name() string { return "asl_message" }

type SessionParticipantInfo struct {
	UserID         string      `json:"userId"`
	UserName       string      `json:"name"`
	Role           domain.Role `json:"role"`
	Specialization string      `json:"specialization,omitempty"`
	Timestamp      int64       `json:"timestamp"`
}

func (SessionParticipantInfo) Name() string { return "session_participant_info" }

type SessionEnded struct {
	EndedBy   domain.Profile `json:"endedBy"`
	Timestamp int64          `json:"timestamp"`
}

func (SessionEnded) Name() string { return "session_ended" }

type UserDisconnected struct {
	domain.Identity
}

func (UserDisconnected) Name() string { return "user_disconnected" }

type EmergencyAlert struct {
	Type       domain.AlertKind `json:"type"`
	Emotion    string           `json:"emotion,omitempty"`
	Confidence float64          `json:"confidence,omitempty"`
	Message    string           `json:"message,omitempty"`
	Severity   domain.Severity  `json:"severity"`
	Patient    domain.Identity  `json:"patient"`
	Timestamp  int64            `json:"timestamp"`
}

func (EmergencyAlert) Name() string { return "emergency_alert" }

type Error struct {
	Reason  string `json:"reason"`
	Message string `json:"message,omitempty"`
}

func (Error) Name() string { return "error" }
