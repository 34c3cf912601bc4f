// Package ecs provides ECS adapters for folio's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges pointer events on
// page elements that carry an EntityID into a [Donburi] world as typed
// events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them, or attach a [Counter].
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	app.Stage().SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
