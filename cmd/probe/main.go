package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
)

// Manual probe for a running gateway. Connects a websocket, registers an
// identity and prints every event pushed by the server. Useful for eyeballing
// the matching flow with two terminals (one doctor, one patient).
func main() {
	var (
		addr    = flag.String("addr", "ws://localhost:3001/ws", "gateway websocket URL")
		role    = flag.String("role", "patient", "role to register (patient|doctor)")
		name    = flag.String("name", "", "display name (default: generated)")
		spec    = flag.String("spec", "ASL Interpretation", "doctor specialization")
		token   = flag.String("token", "", "optional JWT, appended as ?token=")
		urgency = flag.String("urgency", "normal", "urgency for request_doctor")
		request = flag.Bool("request", false, "send request_doctor right after registering")
	)
	flag.Parse()

	userName := *name
	if userName == "" {
		userName = fmt.Sprintf("%s-%s", *role, uuid.NewString()[:8])
	}

	url := *addr
	if *token != "" {
		url = fmt.Sprintf("%s?token=%s", url, *token)
	}

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		color.Red.Printf("dial %s: %v\n", url, err)
		os.Exit(1)
	}
	defer conn.Close()
	color.Green.Printf("Connected as %s (%s)\n", userName, *role)

	send := func(msgType string, payload any) {
		raw, _ := json.Marshal(payload)
		envelope := map[string]any{"type": msgType, "payload": json.RawMessage(raw)}
		if err := conn.WriteJSON(envelope); err != nil {
			color.Red.Printf("send %s: %v\n", msgType, err)
		}
	}

	send("register_user", map[string]any{
		"userId":         uuid.NewString(),
		"name":           userName,
		"role":           *role,
		"specialization": *spec,
	})
	if *request {
		send("request_doctor", map[string]any{
			"urgency": *urgency,
			"message": "Probe: patient requesting an interpreter",
		})
	}

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			send("heartbeat", map[string]any{})
		}
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var incoming struct {
				Type    string          `json:"type"`
				Payload json.RawMessage `json:"payload"`
			}
			if err := conn.ReadJSON(&incoming); err != nil {
				color.Yellow.Printf("connection closed: %v\n", err)
				return
			}
			switch incoming.Type {
			case "error":
				color.Red.Printf("[%s] %s\n", incoming.Type, incoming.Payload)
			case "emergency_alert", "patient_request":
				color.Magenta.Printf("[%s] %s\n", incoming.Type, incoming.Payload)
			case "session_started", "session_created", "session_ended":
				color.Cyan.Printf("[%s] %s\n", incoming.Type, incoming.Payload)
			default:
				color.Gray.Printf("[%s] %s\n", incoming.Type, incoming.Payload)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case <-quit:
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		select {
		case <-done:
		case <-time.After(time.Second):
		}
	case <-done:
	}
}
