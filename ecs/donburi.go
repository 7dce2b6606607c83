package ecs

import (
	"github.com/phanxgames/orbital"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PassEventType is the Donburi event type for committed passes.
var PassEventType = events.NewEventType[orbital.PassEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Pass events are published to PassEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) orbital.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitPass(event orbital.PassEvent) {
	PassEventType.Publish(s.world, event)
}
