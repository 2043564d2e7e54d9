// Package ecs provides ECS adapters for slider's event system.
//
// The adapter is [NewDonburiSink], which bridges slider events (index and
// window changes, drags, pinches, taps, lightbox open and close) into a
// [Donburi] world as typed events. Subscribe to [SliderEventType] in your
// ECS systems to receive them.
//
// [NewDonburiStateSink] does the same and also keeps a [SliderState]
// component on an entity up to date, for systems that only need the
// current index, window and lightbox state.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	carousel.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
