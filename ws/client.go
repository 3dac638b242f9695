package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ramyaaaa4/sign-language-recognition/auth"
	"github.com/ramyaaaa4/sign-language-recognition/domain"
	"github.com/ramyaaaa4/sign-language-recognition/domain/event"
	"github.com/ramyaaaa4/sign-language-recognition/errors"
	"github.com/ramyaaaa4/sign-language-recognition/services"
	"github.com/ramyaaaa4/sign-language-recognition/sink"
)

const (
	pingInterval = 10 * time.Second // interval between transport-level pings
	pongTimeout  = 15 * time.Second // read deadline refreshed on every pong
	writeTimeout = 5 * time.Second
)

// client is one live websocket connection: a read pump dispatching inbound
// frames into the care service, and a write pump draining the connection's
// sink. The connection id is minted server-side at upgrade time.
type client struct {
	id      string
	conn    *websocket.Conn
	sink    *sink.WsSink
	service services.ICareService
	claims  *auth.Claims // nil when the socket connected without a token
	log     *slog.Logger
}

// readPump consumes frames until the transport closes, which is the sole
// cancellation signal of the whole system. The deferred teardown is shared
// with the reaper through the service's Disconnect.
func (c *client) readPump(ctx context.Context) {
	defer func() {
		c.service.Disconnect(ctx, c.id)
		c.sink.Close()
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var envelope Envelope
		if err := json.Unmarshal(raw, &envelope); err != nil {
			c.log.Debug("invalid frame", "conn_id", c.id, "error", err)
			c.fail("Internal", "invalid frame")
			continue
		}
		c.dispatch(ctx, envelope)
	}
}

// dispatch routes one inbound envelope to the matching operation. Every
// failure is converted into a single error event sent back to this
// connection only; nothing crashes or pauses the coordinator.
func (c *client) dispatch(ctx context.Context, envelope Envelope) {
	var err error
	switch envelope.Type {
	case "register_user":
		err = c.register(ctx, envelope.Payload)
	case "request_doctor":
		var p RequestDoctorPayload
		if p, err = decode[RequestDoctorPayload](envelope.Payload); err == nil {
			if p.Urgency == "" {
				p.Urgency = "normal"
			}
			err = c.service.RequestDoctor(ctx, domain.RequestDoctorCommand{
				ConnectionID: c.id,
				Urgency:      p.Urgency,
				Message:      p.Message,
			})
		}
	case "accept_patient":
		var p AcceptPatientPayload
		if p, err = decode[AcceptPatientPayload](envelope.Payload); err == nil {
			err = c.service.AcceptPatient(ctx, domain.AcceptPatientCommand{
				DoctorConnectionID:  c.id,
				PatientConnectionID: p.PatientConnectionID,
			})
		}
	case "join_session":
		var p JoinSessionPayload
		if p, err = decode[JoinSessionPayload](envelope.Payload); err == nil {
			err = c.service.JoinSession(ctx, domain.JoinSessionCommand{
				ConnectionID: c.id,
				SessionID:    p.SessionID,
			})
		}
	case "send_message":
		var p SendMessagePayload
		if p, err = decode[SendMessagePayload](envelope.Payload); err == nil {
			err = c.service.SendMessage(ctx, domain.SendMessageCommand{
				ConnectionID: c.id,
				SessionID:    p.SessionID,
				Message:      p.Message,
			})
		}
	case "asl_recognition":
		var p AslRecognitionPayload
		if p, err = decode[AslRecognitionPayload](envelope.Payload); err == nil {
			err = c.service.RecognizeSign(ctx, domain.RecognizeSignCommand{
				ConnectionID: c.id,
				Text:         p.Text,
				Confidence:   p.Confidence,
			})
		}
	case "emergency_alert":
		var p EmergencyAlertPayload
		if p, err = decode[EmergencyAlertPayload](envelope.Payload); err == nil {
			err = c.service.RaiseAlert(ctx, domain.RaiseAlertCommand{
				ConnectionID: c.id,
				Kind:         domain.AlertKind(p.Type),
				Emotion:      p.Emotion,
				Confidence:   p.Confidence,
				Message:      p.Message,
			})
		}
	case "end_session":
		var p EndSessionPayload
		if p, err = decode[EndSessionPayload](envelope.Payload); err == nil {
			err = c.service.EndSession(ctx, domain.EndSessionCommand{
				ConnectionID: c.id,
				SessionID:    p.SessionID,
			})
		}
	case "heartbeat":
		c.service.Heartbeat(c.id)
	default:
		c.log.Debug("unknown event type", "conn_id", c.id, "type", envelope.Type)
	}

	if err != nil {
		c.fail(errors.Reason(err), err.Error())
	}
}

// register resolves the connection's identity. When the socket carries
// verified token claims, those win over whatever the client sent: the
// identity service is the authority, the payload a fallback for local runs.
func (c *client) register(ctx context.Context, raw json.RawMessage) error {
	identity := domain.Identity{}
	if c.claims != nil {
		identity = c.claims.Identity()
	} else {
		p, err := decode[RegisterUserPayload](raw)
		if err != nil {
			return err
		}
		identity = domain.Identity{
			UserID:         p.UserID,
			Name:           p.Name,
			Role:           domain.Role(p.Role),
			Specialization: p.Specialization,
		}
	}
	c.service.Register(ctx, c.id, identity)
	return nil
}

// fail pushes an error event into this connection's sink only.
func (c *client) fail(reason, message string) {
	_ = c.sink.Consume(context.Background(), event.Error{
		Reason:  reason,
		Message: message,
	})
}

// writePump drains the sink into the websocket and keeps the transport
// alive with pings. It owns all writes to the connection.
func (c *client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.sink.Done():
			return
		case e := <-c.sink.Events():
			payload, err := json.Marshal(e)
			if err != nil {
				c.log.Error("event marshal failed", "event", e.Name(), "error", err)
				continue
			}
			frame, _ := json.Marshal(Envelope{Type: e.Name(), Payload: payload})
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
