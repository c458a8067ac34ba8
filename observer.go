package powermodule

import (
	"context"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// Observer receives the application's lifecycle events. An error returned
// from OnEvent is logged and otherwise ignored.
type Observer interface {
	OnEvent(ctx context.Context, event cloudevents.Event) error

	// ObserverID identifies the observer in logs.
	ObserverID() string
}

// Lifecycle event types, in reverse domain notation.
const (
	EventTypeModulesSorted    = "com.powermodule.modules.sorted"
	EventTypeModuleRegistered = "com.powermodule.module.registered"
	EventTypeModuleSetUp      = "com.powermodule.module.setup"
	EventTypeModuleFailed     = "com.powermodule.module.failed"
)

const eventSource = "powermodule/app"

// RegisterObserver adds o to the observers notified of lifecycle events.
func (a *App) RegisterObserver(o Observer) {
	a.observers = append(a.observers, o)
}

// FunctionalObserver adapts a function to Observer.
type FunctionalObserver struct {
	id      string
	handler func(ctx context.Context, event cloudevents.Event) error
}

func NewFunctionalObserver(id string, handler func(ctx context.Context, event cloudevents.Event) error) *FunctionalObserver {
	return &FunctionalObserver{id: id, handler: handler}
}

func (f *FunctionalObserver) OnEvent(ctx context.Context, event cloudevents.Event) error {
	return f.handler(ctx, event)
}

func (f *FunctionalObserver) ObserverID() string { return f.id }
