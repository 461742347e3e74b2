// Package ecs provides ECS adapters for willowfx's entrance events.
//
// The primary adapter is [NewDonburiSink], which publishes entrance lifecycle
// events (started, completed, cancelled) into a [Donburi] world as typed
// events. Subscribe to [EntranceEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
