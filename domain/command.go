package domain

// Commands are the inbound intents decoded at the transport boundary and
// handed to the coordinator. Connection ids are always the transport's,
// never client supplied, except for the accept target.

type RequestDoctorCommand struct {
	ConnectionID string
	Urgency      string
	Message      string
}

type AcceptPatientCommand struct {
	DoctorConnectionID  string
	PatientConnectionID string
}

type JoinSessionCommand struct {
	ConnectionID string
	SessionID    string
}

type SendMessageCommand struct {
	ConnectionID string
	SessionID    string
	Message      string
}

type RecognizeSignCommand struct {
	ConnectionID string
	Text         string
	Confidence   float64
}

type RaiseAlertCommand struct {
	ConnectionID string
	Kind         AlertKind
	Emotion      string
	Confidence   float64
	Message      string
}

type EndSessionCommand struct {
	ConnectionID string
	SessionID    string
}
