package test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"github.com/ramyaaaa4/sign-language-recognition/auth"
	"github.com/ramyaaaa4/sign-language-recognition/domain"
	"github.com/ramyaaaa4/sign-language-recognition/internal"
	"github.com/ramyaaaa4/sign-language-recognition/moderation"
	"github.com/ramyaaaa4/sign-language-recognition/observability"
	"github.com/ramyaaaa4/sign-language-recognition/repositories"
	"github.com/ramyaaaa4/sign-language-recognition/runtime"
	"github.com/ramyaaaa4/sign-language-recognition/services"
	"github.com/ramyaaaa4/sign-language-recognition/ws"
)

const testSecret = "integration-test-secret"

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// wsPeer is one test-side websocket participant.
type wsPeer struct {
	t    *testing.T
	conn *websocket.Conn
	cfg  Config
}

func (p *wsPeer) send(msgType string, payload any) {
	p.t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(p.t, err)
	require.NoError(p.t, p.conn.WriteJSON(envelope{Type: msgType, Payload: raw}))
}

// waitFor reads frames until one of the given type arrives, skipping
// everything else. Presence broadcasts interleave freely with the protocol
// events, so tests select what they assert on.
func (p *wsPeer) waitFor(msgType string) envelope {
	p.t.Helper()
	deadline := time.Now().Add(p.cfg.WaitTimeout)
	for {
		require.NoError(p.t, p.conn.SetReadDeadline(deadline))
		var e envelope
		err := p.conn.ReadJSON(&e)
		require.NoError(p.t, err, "waiting for %s", msgType)
		if p.cfg.DebugFrames {
			p.t.Logf("frame: %s %s", e.Type, e.Payload)
		}
		if e.Type == msgType {
			return e
		}
	}
}

func (p *wsPeer) close() {
	_ = p.conn.Close()
}

type harness struct {
	server *httptest.Server
	db     *badger.DB
	cfg    Config
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	testCfg, err := LoadConfig()
	require.NoError(t, err)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Reduced value log for testing (avoid gigabytes of preallocation)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)

	moderator, err := moderation.NewModerator([]string{"badger"}, '*')
	require.NoError(t, err)

	registry := runtime.NewRegistry()
	directory := runtime.NewDirectory()
	monitor := observability.NewMonitor()
	alertRepository := repositories.NewAlertRepository(db, log)
	coordinator := runtime.NewCoordinator(
		log, registry, directory, alertRepository, &moderator, monitor,
		5*time.Minute, 0.8,
	)
	careService := services.NewCareService(coordinator)

	cfg := internal.Config{
		AllowedOrigin:        "*",
		ConnectionBufferSize: 64,
		SinkTimeout:          time.Second,
		JWTSecret:            testSecret,
		AlertListLimit:       50,
	}
	server := httptest.NewServer(ws.NewServer(log, careService, alertRepository, cfg).Router())

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})
	return &harness{server: server, db: db, cfg: testCfg}
}

func (h *harness) dial(t *testing.T, token string) *wsPeer {
	t.Helper()
	url := "ws" + strings.TrimPrefix(h.server.URL, "http") + "/ws"
	if token != "" {
		url += "?token=" + token
	}
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return &wsPeer{t: t, conn: conn, cfg: h.cfg}
}

func (h *harness) connect(t *testing.T, identity map[string]any) *wsPeer {
	t.Helper()
	peer := h.dial(t, "")
	peer.send("register_user", identity)
	return peer
}

func patientPayload(name string) map[string]any {
	return map[string]any{"userId": uuid.NewString(), "name": name, "role": "patient"}
}

func doctorPayload(name string) map[string]any {
	return map[string]any{
		"userId": uuid.NewString(), "name": name, "role": "doctor",
		"specialization": "ASL Interpretation",
	}
}

func Test_Full_Consultation_Flow(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	// Given a patient online before any doctor
	patient := h.connect(t, patientPayload("Alice"))

	// When a doctor comes online
	doctor := h.connect(t, doctorPayload("Smith"))

	// Then the patient sees the announcement
	patient.waitFor("doctor_online")

	// When the patient requests an interpreter
	patient.send("request_doctor", map[string]any{
		"urgency": "high",
		"message": "consultation at 3pm",
	})

	// Then the doctor receives the open request with the patient's handle
	request := doctor.waitFor("patient_request")
	var requestPayload struct {
		SocketID string `json:"socketId"`
		Urgency  string `json:"urgency"`
		Name     string `json:"name"`
	}
	req.NoError(json.Unmarshal(request.Payload, &requestPayload))
	req.Equal("high", requestPayload.Urgency)
	req.Equal("Alice", requestPayload.Name)
	req.NotEmpty(requestPayload.SocketID)

	// When the doctor accepts
	doctor.send("accept_patient", map[string]any{
		"patientConnectionId": requestPayload.SocketID,
	})

	// Then both ends land in the same session
	started := patient.waitFor("session_started")
	var startedPayload struct {
		SessionID string `json:"sessionId"`
		Doctor    struct {
			Name string `json:"name"`
		} `json:"doctor"`
	}
	req.NoError(json.Unmarshal(started.Payload, &startedPayload))
	req.Equal("Smith", startedPayload.Doctor.Name)
	doctor.waitFor("session_created")

	// And both receive the system banner
	banner := patient.waitFor("system_message")
	var bannerPayload struct {
		Message string `json:"message"`
	}
	req.NoError(json.Unmarshal(banner.Payload, &bannerPayload))
	req.Equal("Communication session started between Dr. Smith and Alice", bannerPayload.Message)

	// When the patient sends a text with a blacklisted word
	patient.send("send_message", map[string]any{
		"sessionId": startedPayload.SessionID,
		"message":   "a badger bit me",
	})

	// Then the doctor receives the censored form
	message := doctor.waitFor("new_message")
	var messagePayload struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	req.NoError(json.Unmarshal(message.Payload, &messagePayload))
	req.Equal("text", messagePayload.Type)
	req.Equal("a ****** bit me", messagePayload.Message)

	// When the recognizer emits a sign for the patient
	patient.send("asl_recognition", map[string]any{
		"text":       "PAIN",
		"confidence": 0.91,
	})

	// Then the doctor sees the asl frame with its confidence
	asl := doctor.waitFor("asl_message")
	var aslPayload struct {
		Type       string  `json:"type"`
		Message    string  `json:"message"`
		Confidence float64 `json:"confidence"`
	}
	req.NoError(json.Unmarshal(asl.Payload, &aslPayload))
	req.Equal("asl", aslPayload.Type)
	req.Equal("PAIN", aslPayload.Message)
	req.InDelta(0.91, aslPayload.Confidence, 1e-9)

	// When the doctor closes the consultation
	doctor.send("end_session", map[string]any{"sessionId": startedPayload.SessionID})

	// Then the patient learns who ended it
	ended := patient.waitFor("session_ended")
	var endedPayload struct {
		EndedBy struct {
			Name string `json:"name"`
		} `json:"endedBy"`
	}
	req.NoError(json.Unmarshal(ended.Payload, &endedPayload))
	req.Equal("Smith", endedPayload.EndedBy.Name)
}

func Test_Emergency_Alert_Fanout_And_Triage(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	patient := h.connect(t, patientPayload("Alice"))
	doctorIdentity := domain.Identity{
		UserID: "d-42", Name: "Smith", Role: domain.RoleDoctor,
		Specialization: "ASL Interpretation",
	}
	token, err := auth.GenerateToken(doctorIdentity, []byte(testSecret), time.Hour)
	req.NoError(err)

	// Given a doctor whose identity comes from a token
	doctor := h.dial(t, token)
	doctor.send("register_user", map[string]any{})
	patient.waitFor("doctor_online")

	// When the patient raises an emergency without any session
	patient.send("emergency_alert", map[string]any{
		"type":    "emergency",
		"message": "patient pressed the panic button",
	})

	// Then the doctor receives the alert with critical severity
	alert := doctor.waitFor("emergency_alert")
	var alertPayload struct {
		Severity string `json:"severity"`
		Patient  struct {
			Name string `json:"name"`
		} `json:"patient"`
	}
	req.NoError(json.Unmarshal(alert.Payload, &alertPayload))
	req.Equal("critical", alertPayload.Severity)
	req.Equal("Alice", alertPayload.Patient.Name)

	// And the alert shows up on the triage route
	listReq, err := http.NewRequest(http.MethodGet, h.server.URL+"/api/alerts/doctor", nil)
	req.NoError(err)
	listReq.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(listReq)
	req.NoError(err)
	defer resp.Body.Close()
	req.Equal(http.StatusOK, resp.StatusCode)

	var listed []struct {
		ID        string `json:"id"`
		PatientID string `json:"patientId"`
		Severity  string `json:"severity"`
		Handled   bool   `json:"handled"`
	}
	req.NoError(json.NewDecoder(resp.Body).Decode(&listed))
	req.Len(listed, 1)
	req.Equal("critical", listed[0].Severity)
	req.False(listed[0].Handled)

	// When the doctor marks it handled
	body := strings.NewReader(`{"notes":"called the patient back"}`)
	handleReq, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("%s/api/alerts/%s/handle", h.server.URL, listed[0].ID), body)
	req.NoError(err)
	handleReq.Header.Set("Authorization", "Bearer "+token)
	handleReq.Header.Set("Content-Type", "application/json")
	resp2, err := http.DefaultClient.Do(handleReq)
	req.NoError(err)
	defer resp2.Body.Close()
	req.Equal(http.StatusOK, resp2.StatusCode)

	// Then the triage list is empty again
	resp3, err := http.DefaultClient.Do(listReq)
	req.NoError(err)
	defer resp3.Body.Close()
	var after []any
	req.NoError(json.NewDecoder(resp3.Body).Decode(&after))
	req.Empty(after)

	// And the patient's history still carries it, marked handled
	historyReq, err := http.NewRequest(http.MethodGet,
		h.server.URL+"/api/alerts/patient/"+listed[0].PatientID, nil)
	req.NoError(err)
	historyReq.Header.Set("Authorization", "Bearer "+token)
	resp4, err := http.DefaultClient.Do(historyReq)
	req.NoError(err)
	defer resp4.Body.Close()
	req.Equal(http.StatusOK, resp4.StatusCode)

	var history []struct {
		ID      string `json:"id"`
		Handled bool   `json:"handled"`
	}
	req.NoError(json.NewDecoder(resp4.Body).Decode(&history))
	req.Len(history, 1)
	req.Equal(listed[0].ID, history[0].ID)
	req.True(history[0].Handled)
}

func Test_Disconnect_Frees_The_Counterpart(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	patient := h.connect(t, patientPayload("Alice"))
	doctor := h.connect(t, doctorPayload("Smith"))
	patient.waitFor("doctor_online")

	patient.send("request_doctor", map[string]any{})
	request := doctor.waitFor("patient_request")
	var requestPayload struct {
		SocketID string `json:"socketId"`
	}
	req.NoError(json.Unmarshal(request.Payload, &requestPayload))
	doctor.send("accept_patient", map[string]any{
		"patientConnectionId": requestPayload.SocketID,
	})
	patient.waitFor("session_started")

	// When the doctor's transport drops mid-session
	doctor.close()

	// Then the patient observes the departure and the doctor going offline
	patient.waitFor("user_disconnected")
	patient.waitFor("doctor_offline")

	// And the patient can request again, proving the session slot is free
	patient.send("request_doctor", map[string]any{})
	errored := false
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		require.NoError(t, patient.conn.SetReadDeadline(time.Now().Add(500*time.Millisecond)))
		var e envelope
		if err := patient.conn.ReadJSON(&e); err != nil {
			break
		}
		if e.Type == "error" {
			errored = true
			break
		}
	}
	req.False(errored, "re-request after teardown must not fail")
}

func Test_Accept_Race_Over_The_Wire(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	patient := h.connect(t, patientPayload("Alice"))
	doctor1 := h.connect(t, doctorPayload("Smith"))
	doctor2 := h.connect(t, doctorPayload("Jones"))
	patient.waitFor("doctor_online")
	patient.waitFor("doctor_online")

	patient.send("request_doctor", map[string]any{"urgency": "critical"})
	request1 := doctor1.waitFor("patient_request")
	doctor2.waitFor("patient_request")
	var requestPayload struct {
		SocketID string `json:"socketId"`
	}
	req.NoError(json.Unmarshal(request1.Payload, &requestPayload))

	// When both doctors accept the same request
	accept := map[string]any{"patientConnectionId": requestPayload.SocketID}
	doctor1.send("accept_patient", accept)
	doctor2.send("accept_patient", accept)

	// Then the patient is matched exactly once
	patient.waitFor("session_started")

	// And across both doctors there is one session_created and one error
	outcomes := map[string]int{}
	for _, doctor := range []*wsPeer{doctor1, doctor2} {
		deadline := time.Now().Add(5 * time.Second)
		for {
			require.NoError(t, doctor.conn.SetReadDeadline(deadline))
			var e envelope
			req.NoError(doctor.conn.ReadJSON(&e))
			if e.Type == "session_created" || e.Type == "error" {
				outcomes[e.Type]++
				break
			}
		}
	}
	req.Equal(1, outcomes["session_created"])
	req.Equal(1, outcomes["error"])
}

func Test_Invalid_Token_Is_Rejected_At_Upgrade(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)

	url := "ws" + strings.TrimPrefix(h.server.URL, "http") + "/ws?token=garbage"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	req.Error(err)
	req.Equal(http.StatusUnauthorized, resp.StatusCode)
}
