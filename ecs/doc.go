// Package ecs provides ECS adapters for warp's scene events.
//
// The primary adapter is [NewDonburiSink], which forwards scene lifecycle
// events (reveal started, reveal completed, resized) into a [Donburi] world
// as typed events. Subscribe to [SceneEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
