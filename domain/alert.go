package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertKind string

const (
	AlertEmotion   AlertKind = "emotion"
	AlertSign      AlertKind = "sign"
	AlertEmergency AlertKind = "emergency"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Alert is the transient fanout payload. The core derives severity on the
// fly and never stores alerts itself; durable storage is the collaborator's
// problem.
type Alert struct {
	ID         uuid.UUID
	PatientID  string
	Kind       AlertKind
	Emotion    string
	Confidence float64
	Message    string
	Severity   Severity
	At         time.Time
}

// DeriveSeverity maps an alert kind and recognizer confidence to a severity.
// Emergency is always critical. Emotion escalates above the confidence
// threshold. Sign stays at the schema default.
func DeriveSeverity(kind AlertKind, confidence, threshold float64) Severity {
	switch kind {
	case AlertEmergency:
		return SeverityCritical
	case AlertEmotion:
		if confidence > threshold {
			return SeverityHigh
		}
		return SeverityMedium
	default:
		return SeverityMedium
	}
}
