// Package runtime owns the two keyed stores and coordinates every inbound
// operation of the presence core. It contains no transport code: events go
// out through contract.EventSink only.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"

	"github.com/ramyaaaa4/sign-language-recognition/contract"
	"github.com/ramyaaaa4/sign-language-recognition/domain"
	"github.com/ramyaaaa4/sign-language-recognition/domain/event"
	"github.com/ramyaaaa4/sign-language-recognition/errors"
	"github.com/ramyaaaa4/sign-language-recognition/moderation"
	"github.com/ramyaaaa4/sign-language-recognition/observability"
	"github.com/ramyaaaa4/sign-language-recognition/repositories"
)

// Coordinator glues the registry, the directory, the alert collaborator and
// the moderation pipeline together. One instance per process; no
// module-level state.
type Coordinator struct {
	log              *slog.Logger
	registry         *Registry
	directory        *Directory
	alerts           repositories.IAlertRepository
	moderator        *moderation.Moderator
	monitor          *observability.Monitor
	idleThreshold    time.Duration
	emotionThreshold float64
}

func NewCoordinator(
	log *slog.Logger,
	registry *Registry,
	directory *Directory,
	alerts repositories.IAlertRepository,
	moderator *moderation.Moderator,
	monitor *observability.Monitor,
	idleThreshold time.Duration,
	emotionThreshold float64,
) *Coordinator {
	return &Coordinator{
		log:              log,
		registry:         registry,
		directory:        directory,
		alerts:           alerts,
		moderator:        moderator,
		monitor:          monitor,
		idleThreshold:    idleThreshold,
		emotionThreshold: emotionThreshold,
	}
}

// Attach wires a transport-level connection and its delivery sink into the
// registry before any identity is declared.
func (c *Coordinator) Attach(connID string, sink contract.EventSink) {
	c.registry.Attach(connID, sink)
}

// Register upserts the connection's declared identity. A doctor coming
// online is announced to every other connection; patients register silently.
func (c *Coordinator) Register(ctx context.Context, connID string, identity domain.Identity) {
	c.registry.Register(connID, identity)
	c.log.Info("participant registered",
		"conn_id", connID,
		"role", identity.Role,
		"name", identity.Name)

	if identity.Role == domain.RoleDoctor {
		c.fanout(ctx, c.registry.Others(connID), event.DoctorOnline{Identity: identity})
	}
}

// Heartbeat refreshes last-seen. Unknown connections are ignored: from the
// caller's point of view they already expired.
func (c *Coordinator) Heartbeat(connID string) {
	c.registry.Heartbeat(connID, time.Now().UTC())
}

// RequestDoctor broadcasts a patient's open request to every registered
// doctor. No queue is kept: the request lives only as a copy in each
// doctor's local view until one of them claims it.
func (c *Coordinator) RequestDoctor(ctx context.Context, cmd domain.RequestDoctorCommand) error {
	patient, ok := c.registry.Lookup(cmd.ConnectionID)
	if !ok || !patient.Registered() {
		return errors.ErrNotConnected
	}
	if patient.SessionID != "" {
		return errors.ErrAlreadyInSession
	}

	c.fanout(ctx, c.registry.Doctors(cmd.ConnectionID), event.PatientRequest{
		Identity:  patient.Identity,
		SocketID:  patient.ID,
		Urgency:   cmd.Urgency,
		Message:   cmd.Message,
		Timestamp: now(),
	})
	c.log.Info("doctor requested", "conn_id", cmd.ConnectionID, "urgency", cmd.Urgency)
	return nil
}

// AcceptPatient turns an open request plus this doctor's acceptance into a
// new session. The registry claim is the single atomic check-and-set that
// decides the race: whichever acceptance observes the patient's session slot
// as still empty wins; every other one fails cleanly. The doctor's own
// record is written only after the claim succeeded.
func (c *Coordinator) AcceptPatient(ctx context.Context, cmd domain.AcceptPatientCommand) error {
	doctor, ok := c.registry.Lookup(cmd.DoctorConnectionID)
	if !ok || !doctor.Registered() {
		return errors.ErrNotConnected
	}

	sessionID := fmt.Sprintf("session_%s", uuid.NewString())
	patient, err := c.registry.Claim(cmd.PatientConnectionID, sessionID)
	if err != nil {
		return err
	}
	c.registry.Bind(cmd.DoctorConnectionID, sessionID)

	session := domain.Session{
		ID:          sessionID,
		PatientConn: patient.ID,
		DoctorConn:  doctor.ID,
		Patient:     patient.Identity,
		Doctor:      doctor.Identity,
		StartTime:   time.Now().UTC(),
		Status:      domain.SessionActive,
	}
	patientSink, _ := c.registry.Sink(patient.ID)
	doctorSink, _ := c.registry.Sink(doctor.ID)
	c.directory.Create(session, patientSink, doctorSink)

	// The patient can disconnect between the claim and the room creation;
	// its teardown ran before the room existed and ended nothing. Re-check
	// and undo, so no session survives its patient.
	if _, alive := c.registry.Lookup(patient.ID); !alive {
		if _, _, known := c.directory.End(sessionID); known && doctorSink != nil {
			c.deliver(ctx, doctorSink, event.UserDisconnected{Identity: patient.Identity})
		}
		c.registry.ClearSession(doctor.ID, sessionID)
		return errors.ErrNotConnected
	}
	c.monitor.IncrSessionsCreated()

	if patientSink != nil {
		c.deliver(ctx, patientSink, event.SessionStarted{
			SessionID: sessionID,
			Doctor:    doctor.Identity.Public(),
		})
	}
	if doctorSink != nil {
		c.deliver(ctx, doctorSink, event.SessionCreated{
			SessionID: sessionID,
			Patient:   patient.Identity.Public(),
		})
	}
	c.fanout(ctx, c.directory.Members(sessionID, ""), event.SystemMessage{
		Type: "system",
		Message: fmt.Sprintf("Communication session started between Dr. %s and %s",
			doctor.Identity.Name, patient.Identity.Name),
		Timestamp: now(),
		SessionID: sessionID,
	})

	c.log.Info("session started",
		"session_id", sessionID,
		"patient", patient.Identity.Name,
		"doctor", doctor.Identity.Name)
	return nil
}

// JoinSession subscribes a connection to a session's channel. Existing
// members learn about the joiner; when the directory already records both
// participants, the joiner receives the counterpart's identity directly, so
// a reconnect lands in the room with full context.
func (c *Coordinator) JoinSession(ctx context.Context, cmd domain.JoinSessionCommand) error {
	conn, ok := c.registry.Lookup(cmd.ConnectionID)
	if !ok || !conn.Registered() {
		return errors.ErrNotConnected
	}
	sink, _ := c.registry.Sink(cmd.ConnectionID)

	session, known, existing := c.directory.Join(cmd.SessionID, cmd.ConnectionID, sink)
	c.registry.Bind(cmd.ConnectionID, cmd.SessionID)

	c.fanout(ctx, existing, participantInfo(conn.Identity))

	if known && session.Complete() && sink != nil {
		if counterpart, ok := session.CounterpartOf(cmd.ConnectionID); ok {
			c.deliver(ctx, sink, participantInfo(counterpart))
		}
	}
	return nil
}

// SendMessage publishes a text message to the room, everyone but the
// sender. Text passes the censor first; sign and system events never do.
func (c *Coordinator) SendMessage(ctx context.Context, cmd domain.SendMessageCommand) error {
	sender, ok := c.registry.Lookup(cmd.ConnectionID)
	if !ok || !sender.Registered() {
		return errors.ErrNotConnected
	}
	if _, ok := c.directory.Get(cmd.SessionID); !ok {
		return errors.ErrUnknownSession
	}

	message := cmd.Message
	if c.moderator != nil {
		censored, found := c.moderator.Censor(message)
		if len(found) > 0 {
			info := whatlanggo.Detect(message)
			c.log.Warn("message censored",
				"conn_id", cmd.ConnectionID,
				"lang", info.Lang.Iso6391(),
				"patterns", len(found))
			message = censored
		}
	}

	c.fanout(ctx, c.directory.Members(cmd.SessionID, cmd.ConnectionID), event.NewMessage{
		Type:      "text",
		Message:   message,
		Timestamp: now(),
		Sender:    sender.Identity,
	})
	return nil
}

// RecognizeSign relays one (label, confidence) pair from the recognizer to
// the sender's current room. A sender without a session is silently
// ignored, exactly like the original.
func (c *Coordinator) RecognizeSign(ctx context.Context, cmd domain.RecognizeSignCommand) error {
	sender, ok := c.registry.Lookup(cmd.ConnectionID)
	if !ok || !sender.Registered() {
		return errors.ErrNotConnected
	}
	if sender.SessionID == "" {
		return nil
	}

	c.fanout(ctx, c.directory.Members(sender.SessionID, cmd.ConnectionID), event.AslMessage{
		Type:       "asl",
		Message:    cmd.Text,
		Confidence: cmd.Confidence,
		Timestamp:  now(),
		Sender:     sender.Identity,
	})
	return nil
}

// RaiseAlert fans an alert out to every registered doctor, independent of
// session membership, then submits it to the persistence collaborator.
// A storage failure is logged and swallowed: the fanout already happened
// and there is no retry.
func (c *Coordinator) RaiseAlert(ctx context.Context, cmd domain.RaiseAlertCommand) error {
	sender, ok := c.registry.Lookup(cmd.ConnectionID)
	if !ok || !sender.Registered() {
		return errors.ErrNotConnected
	}

	alert := domain.Alert{
		ID:         uuid.New(),
		PatientID:  sender.Identity.UserID,
		Kind:       cmd.Kind,
		Emotion:    cmd.Emotion,
		Confidence: cmd.Confidence,
		Message:    cmd.Message,
		Severity:   domain.DeriveSeverity(cmd.Kind, cmd.Confidence, c.emotionThreshold),
		At:         time.Now().UTC(),
	}

	c.fanout(ctx, c.registry.Doctors(cmd.ConnectionID), event.EmergencyAlert{
		Type:       alert.Kind,
		Emotion:    alert.Emotion,
		Confidence: alert.Confidence,
		Message:    alert.Message,
		Severity:   alert.Severity,
		Patient:    sender.Identity,
		Timestamp:  alert.At.UnixMilli(),
	})
	c.monitor.IncrAlertsRaised()
	c.log.Warn("alert raised",
		"conn_id", cmd.ConnectionID,
		"kind", alert.Kind,
		"severity", alert.Severity)

	if err := c.alerts.StoreAlert(alert); err != nil {
		c.log.Error("alert persistence failed", "alert_id", alert.ID, "error", err)
	}
	return nil
}

// EndSession closes a room explicitly. Ending an already-absent session is
// a no-op, never an error: this path races with the disconnect teardown for
// the same session id.
func (c *Coordinator) EndSession(ctx context.Context, cmd domain.EndSessionCommand) error {
	conn, ok := c.registry.Lookup(cmd.ConnectionID)
	if !ok || !conn.Registered() {
		return errors.ErrNotConnected
	}
	c.end(ctx, cmd.SessionID, conn.Identity.Public())
	return nil
}

// Disconnect is the transport-level closure path and the only teardown the
// reaper knows. It ends the connection's session, removes the registry
// entry, and announces a doctor going offline.
func (c *Coordinator) Disconnect(ctx context.Context, connID string) {
	// Remove first and read the session off the returned record: it is the
	// final state under the registry lock, so a claim that won just before
	// this teardown is visible here, never in an earlier stale lookup.
	removed, ok := c.registry.Remove(connID)
	if !ok {
		return
	}

	if removed.SessionID != "" {
		session, memberIDs, known := c.directory.End(removed.SessionID)
		c.fanout(ctx, sinksOf(c.registry, memberIDs, connID), event.UserDisconnected{Identity: removed.Identity})
		if known {
			c.registry.ClearSession(session.PatientConn, session.ID)
			c.registry.ClearSession(session.DoctorConn, session.ID)
		}
		for _, id := range memberIDs {
			c.registry.ClearSession(id, removed.SessionID)
		}
	}

	if removed.Identity.Role == domain.RoleDoctor {
		c.fanout(ctx, c.registry.Others(connID), event.DoctorOffline{Identity: removed.Identity})
	}
	if removed.Registered() {
		c.log.Info("participant disconnected",
			"conn_id", connID,
			"role", removed.Identity.Role,
			"name", removed.Identity.Name)
	}
}

// ReapIdle evicts every connection whose last-seen timestamp exceeds the
// idle threshold, reusing the disconnect path so peers observe exactly a
// disconnect-shaped event. Returns the number of evictions.
func (c *Coordinator) ReapIdle(ctx context.Context, now time.Time) int {
	stale := c.registry.Stale(now, c.idleThreshold)
	for _, connID := range stale {
		c.log.Info("reaping idle connection", "conn_id", connID)
		c.Disconnect(ctx, connID)
	}
	c.monitor.AddReaped(len(stale))
	return len(stale)
}

func (c *Coordinator) Online() int { return c.registry.Count() }

func (c *Coordinator) ActiveSessions() int { return c.directory.Count() }

// end broadcasts session_ended to every member, clears the participants'
// session slots, and removes the room. Idempotent.
func (c *Coordinator) end(ctx context.Context, sessionID string, endedBy domain.Profile) {
	session, memberIDs, known := c.directory.End(sessionID)
	if !known && len(memberIDs) == 0 {
		return
	}

	c.fanout(ctx, sinksOf(c.registry, memberIDs, ""), event.SessionEnded{
		EndedBy:   endedBy,
		Timestamp: now(),
	})
	if known {
		c.registry.ClearSession(session.PatientConn, session.ID)
		c.registry.ClearSession(session.DoctorConn, session.ID)
	}
	for _, id := range memberIDs {
		c.registry.ClearSession(id, sessionID)
	}
	c.log.Info("session ended", "session_id", sessionID, "ended_by", endedBy.Name)
}

// deliver pushes one event into one sink. Failures are counted and logged,
// never propagated: delivery is at-most-once and best-effort.
func (c *Coordinator) deliver(ctx context.Context, sink contract.EventSink, e event.Event) {
	if err := sink.Consume(ctx, e); err != nil {
		c.monitor.IncrDropped()
		c.log.Debug("event dropped", "event", e.Name(), "error", err)
		return
	}
	c.monitor.IncrDelivered()
}

func (c *Coordinator) fanout(ctx context.Context, sinks []contract.EventSink, e event.Event) {
	for _, sink := range sinks {
		c.deliver(ctx, sink, e)
	}
}

func sinksOf(r *Registry, connIDs []string, exclude string) []contract.EventSink {
	var sinks []contract.EventSink
	for _, id := range connIDs {
		if id == exclude {
			continue
		}
		if sink, ok := r.Sink(id); ok {
			sinks = append(sinks, sink)
		}
	}
	return sinks
}

func participantInfo(identity domain.Identity) event.SessionParticipantInfo {
	return event.SessionParticipantInfo{
		UserID:         identity.UserID,
		UserName:       identity.Name,
		Role:           identity.Role,
		Specialization: identity.Specialization,
		Timestamp:      now(),
	}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
