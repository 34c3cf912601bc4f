package ecs

import (
	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for folio interaction events.
// Subscribe to this in your ECS systems to receive enter, leave, press,
// release, and click events on page elements.
var InteractionEventType = events.NewEventType[folio.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) folio.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event folio.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// Counter tallies interaction events per element. It is a ready-made
// subscriber for analytics-style systems: attach it with Subscribe and read
// the counts after ProcessEvents.
type Counter struct {
	byEntity map[uint32]map[folio.EventType]int
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{byEntity: make(map[uint32]map[folio.EventType]int)}
}

// Subscribe registers the counter on world.
func (c *Counter) Subscribe(world donburi.World) {
	InteractionEventType.Subscribe(world, c.handle)
}

func (c *Counter) handle(_ donburi.World, e folio.InteractionEvent) {
	m := c.byEntity[e.EntityID]
	if m == nil {
		m = make(map[folio.EventType]int)
		c.byEntity[e.EntityID] = m
	}
	m[e.Type]++
}

// Count returns how many events of type t the element with id received.
func (c *Counter) Count(id uint32, t folio.EventType) int {
	return c.byEntity[id][t]
}
