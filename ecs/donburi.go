package ecs

import (
	"github.com/phanxgames/willowfx"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EntranceEventType is the Donburi event type for willowfx entrance events.
var EntranceEventType = events.NewEventType[willowfx.EntranceEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on EntranceEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) willowfx.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEntranceEvent(event willowfx.EntranceEvent) {
	EntranceEventType.Publish(s.world, event)
}
