//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"github.com/ramyaaaa4/sign-language-recognition/domain/event"
)

type WorkerName string

// Worker doesn't protect itself.
// Can be silly, focused.
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// initialization or lifecycle events, avoiding the need for manual naming
// in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is the single capability the core uses to reach a connection.
// Delivery is best-effort and at-most-once; a sink whose peer is gone simply
// swallows or rejects the event.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// IdleReaper is the slice of the coordinator the presence reaper depends on.
type IdleReaper interface {
	ReapIdle(ctx context.Context, now time.Time) int
}
