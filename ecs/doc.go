// Package ecs provides ECS adapters for dnd's engine event stream.
//
// The primary adapter is [NewDonburiStore], which bridges engine events
// (drag start and end, hover changes, drops, reorders) into a [Donburi]
// world as typed events. Subscribe to [EngineEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine := dnd.NewEngine(dnd.WithEventSink(store))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
