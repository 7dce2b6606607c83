// Package ecs provides ECS adapters for orbital's pass notifications.
//
// The primary adapter is [NewDonburiStore], which forwards every committed
// pass into a [Donburi] world as a typed event. Subscribe to
// [PassEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
