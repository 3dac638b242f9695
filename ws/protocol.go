package ws

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Envelope is the wire frame in both directions:
// {"type": <event name>, "payload": <object>}.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Inbound payloads. Connection ids are never taken from the client except
// for the accept target, which is exactly the handle the patient_request
// event handed out.

type RegisterUserPayload struct {
	UserID         string `json:"userId" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Role           string `json:"role" validate:"required,oneof=patient doctor"`
	Specialization string `json:"specialization,omitempty"`
}

type RequestDoctorPayload struct {
	Urgency string `json:"urgency" validate:"omitempty,oneof=low normal high critical"`
	Message string `json:"message,omitempty" validate:"max=2000"`
}

type AcceptPatientPayload struct {
	PatientConnectionID string `json:"patientConnectionId" validate:"required"`
}

type JoinSessionPayload struct {
	SessionID string `json:"sessionId" validate:"required"`
}

type SendMessagePayload struct {
	SessionID string `json:"sessionId" validate:"required"`
	Message   string `json:"message" validate:"required,max=4000"`
}

type AslRecognitionPayload struct {
	Text       string  `json:"text" validate:"required"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
}

type EmergencyAlertPayload struct {
	Type       string  `json:"type" validate:"required,oneof=emotion sign emergency"`
	Emotion    string  `json:"emotion,omitempty" validate:"omitempty,oneof=angry fear sad pain distress"`
	Confidence float64 `json:"confidence,omitempty" validate:"gte=0,lte=1"`
	Message    string  `json:"message,omitempty" validate:"max=2000"`
}

type EndSessionPayload struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// decode unmarshals a raw payload into its typed form and runs the
// validation tags. Malformed frames never reach the coordinator.
func decode[T any](raw json.RawMessage) (T, error) {
	var payload T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return payload, err
		}
	}
	if err := validate.Struct(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}
