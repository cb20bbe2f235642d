// Package ecs provides ECS adapters for dnd.
package ecs

import (
	"github.com/phanxgames/dnd"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EngineEventType is the Donburi event type for dnd engine events.
// Subscribe to this in your ECS systems to receive drag, hover, drop and
// reorder events.
var EngineEventType = events.NewEventType[dnd.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Engine events are published to EngineEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) dnd.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dnd.Event) {
	EngineEventType.Publish(s.world, event)
}
