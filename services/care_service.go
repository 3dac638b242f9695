//go:generate go run go.uber.org/mock/mockgen -source=care_service.go -destination=../mocks/mock_care_service.go -package=mocks
package services

import (
	"context"

	"github.com/ramyaaaa4/sign-language-recognition/contract"
	"github.com/ramyaaaa4/sign-language-recognition/domain"
	"github.com/ramyaaaa4/sign-language-recognition/runtime"
)

// ICareService is the seam between the transport and the coordinator. The
// gateway only ever talks to this interface, which keeps the websocket
// handlers testable against a mock.
type ICareService interface {
	Attach(connID string, sink contract.EventSink)
	Register(ctx context.Context, connID string, identity domain.Identity)
	Heartbeat(connID string)
	RequestDoctor(ctx context.Context, cmd domain.RequestDoctorCommand) error
	AcceptPatient(ctx context.Context, cmd domain.AcceptPatientCommand) error
	JoinSession(ctx context.Context, cmd domain.JoinSessionCommand) error
	SendMessage(ctx context.Context, cmd domain.SendMessageCommand) error
	RecognizeSign(ctx context.Context, cmd domain.RecognizeSignCommand) error
	RaiseAlert(ctx context.Context, cmd domain.RaiseAlertCommand) error
	EndSession(ctx context.Context, cmd domain.EndSessionCommand) error
	Disconnect(ctx context.Context, connID string)
}

type CareService struct {
	coordinator *runtime.Coordinator
}

func NewCareService(c *runtime.Coordinator) *CareService {
	return &CareService{coordinator: c}
}

func (s *CareService) Attach(connID string, sink contract.EventSink) {
	s.coordinator.Attach(connID, sink)
}

func (s *CareService) Register(ctx context.Context, connID string, identity domain.Identity) {
	s.coordinator.Register(ctx, connID, identity)
}

func (s *CareService) Heartbeat(connID string) {
	s.coordinator.Heartbeat(connID)
}

func (s *CareService) RequestDoctor(ctx context.Context, cmd domain.RequestDoctorCommand) error {
	return s.coordinator.RequestDoctor(ctx, cmd)
}

func (s *CareService) AcceptPatient(ctx context.Context, cmd domain.AcceptPatientCommand) error {
	return s.coordinator.AcceptPatient(ctx, cmd)
}

func (s *CareService) JoinSession(ctx context.Context, cmd domain.JoinSessionCommand) error {
	return s.coordinator.JoinSession(ctx, cmd)
}

func (s *CareService) SendMessage(ctx context.Context, cmd domain.SendMessageCommand) error {
	return s.coordinator.SendMessage(ctx, cmd)
}

func (s *CareService) RecognizeSign(ctx context.Context, cmd domain.RecognizeSignCommand) error {
	return s.coordinator.RecognizeSign(ctx, cmd)
}

func (s *CareService) RaiseAlert(ctx context.Context, cmd domain.RaiseAlertCommand) error {
	return s.coordinator.RaiseAlert(ctx, cmd)
}

func (s *CareService) EndSession(ctx context.Context, cmd domain.EndSessionCommand) error {
	return s.coordinator.EndSession(ctx, cmd)
}

func (s *CareService) Disconnect(ctx context.Context, connID string) {
	s.coordinator.Disconnect(ctx, connID)
}
