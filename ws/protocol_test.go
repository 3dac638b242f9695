package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_RegisterUser(t *testing.T) {
	req := require.New(t)

	// When a well-formed register frame arrives
	payload, err := decode[RegisterUserPayload](json.RawMessage(
		`{"userId":"d-42","name":"Dr. Smith","role":"doctor","specialization":"ASL Interpretation"}`))

	// Then every field is bound
	req.NoError(err)
	req.Equal("d-42", payload.UserID)
	req.Equal("doctor", payload.Role)
	req.Equal("ASL Interpretation", payload.Specialization)
}

func TestDecode_RegisterUser_Rejects_Unknown_Role(t *testing.T) {
	req := require.New(t)
	_, err := decode[RegisterUserPayload](json.RawMessage(
		`{"userId":"x","name":"Eve","role":"admin"}`))
	req.Error(err)
}

func TestDecode_RequestDoctor_Urgency_Is_Optional(t *testing.T) {
	req := require.New(t)

	// An empty payload is valid; urgency defaults at dispatch time
	payload, err := decode[RequestDoctorPayload](nil)
	req.NoError(err)
	req.Empty(payload.Urgency)

	// A listed urgency passes
	payload, err = decode[RequestDoctorPayload](json.RawMessage(`{"urgency":"critical"}`))
	req.NoError(err)
	req.Equal("critical", payload.Urgency)

	// An invented one does not
	_, err = decode[RequestDoctorPayload](json.RawMessage(`{"urgency":"yesterday"}`))
	req.Error(err)
}

func TestDecode_AcceptPatient_Requires_The_Target(t *testing.T) {
	req := require.New(t)
	_, err := decode[AcceptPatientPayload](json.RawMessage(`{}`))
	req.Error(err)

	payload, err := decode[AcceptPatientPayload](json.RawMessage(
		`{"patientConnectionId":"conn-1"}`))
	req.NoError(err)
	req.Equal("conn-1", payload.PatientConnectionID)
}

func TestDecode_EmergencyAlert_Validates_Kind_And_Emotion(t *testing.T) {
	req := require.New(t)

	payload, err := decode[EmergencyAlertPayload](json.RawMessage(
		`{"type":"emotion","emotion":"distress","confidence":0.92}`))
	req.NoError(err)
	req.Equal("emotion", payload.Type)
	req.InDelta(0.92, payload.Confidence, 1e-9)

	// Unknown emotion labels are rejected before they reach the core
	_, err = decode[EmergencyAlertPayload](json.RawMessage(
		`{"type":"emotion","emotion":"bored"}`))
	req.Error(err)

	// Confidence outside [0,1] is rejected
	_, err = decode[EmergencyAlertPayload](json.RawMessage(
		`{"type":"sign","confidence":1.5}`))
	req.Error(err)
}

func TestDecode_Malformed_JSON_Fails(t *testing.T) {
	req := require.New(t)
	_, err := decode[SendMessagePayload](json.RawMessage(`{"sessionId":`))
	req.Error(err)
}

func TestEnvelope_RoundTrip(t *testing.T) {
	req := require.New(t)

	raw := []byte(`{"type":"send_message","payload":{"sessionId":"session_1","message":"hello"}}`)
	var envelope Envelope
	req.NoError(json.Unmarshal(raw, &envelope))
	req.Equal("send_message", envelope.Type)

	payload, err := decode[SendMessagePayload](envelope.Payload)
	req.NoError(err)
	req.Equal("session_1", payload.SessionID)
	req.Equal("hello", payload.Message)
}
