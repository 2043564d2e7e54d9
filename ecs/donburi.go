// Package ecs provides ECS adapters for slider.
package ecs

import (
	"github.com/phanxgames/slider"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SliderEventType is the Donburi event type for slider events.
// Subscribe to this in your ECS systems to receive index, window, gesture
// and lightbox events.
var SliderEventType = events.NewEventType[slider.Event]()

// SliderState is the carousel state as seen through its events.
type SliderState struct {
	Index         int // active index of the main slider
	First         int // first visible index of the main slider
	LightboxIndex int // slider.NoIndex while the lightbox is closed
	Dragging      bool
	Scale         float64 // scale of the last pinched item
}

// SliderStateComponent holds a SliderState on the entity created by
// NewDonburiStateSink.
var SliderStateComponent = donburi.NewComponentType[SliderState]()

// Apply folds one event into the state.
func (st *SliderState) Apply(e slider.Event) {
	switch e.Type {
	case slider.EventIndexChange:
		if !e.Lightbox {
			st.Index, st.First = e.Index, e.First
		} else if st.LightboxIndex != slider.NoIndex {
			st.LightboxIndex = e.Index
		}
	case slider.EventFirstVisibleChange:
		if !e.Lightbox {
			st.First = e.First
		}
	case slider.EventDragStart:
		st.Dragging = true
	case slider.EventDragEnd:
		st.Dragging = false
	case slider.EventPinch:
		st.Scale = e.Scale
	case slider.EventLightboxOpen:
		st.LightboxIndex = e.Index
	case slider.EventLightboxClose:
		st.LightboxIndex = slider.NoIndex
	}
}

type donburiSink struct {
	world  donburi.World
	entity donburi.Entity
	state  bool
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Slider events are published to SliderEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) slider.EventSink {
	return &donburiSink{world: world}
}

// NewDonburiStateSink is NewDonburiSink plus an entity carrying a
// SliderStateComponent that is kept current as events are emitted, so
// systems can query the carousel state without subscribing.
func NewDonburiStateSink(world donburi.World) (slider.EventSink, donburi.Entity) {
	e := world.Create(SliderStateComponent)
	SliderStateComponent.SetValue(world.Entry(e), SliderState{LightboxIndex: slider.NoIndex, Scale: 1})
	return &donburiSink{world: world, entity: e, state: true}, e
}

func (s *donburiSink) EmitEvent(event slider.Event) {
	if s.state && s.world.Valid(s.entity) {
		SliderStateComponent.Get(s.world.Entry(s.entity)).Apply(event)
	}
	SliderEventType.Publish(s.world, event)
}
