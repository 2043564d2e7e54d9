// Package slider is a swipeable, pinch-zoomable carousel for [Ebitengine].
//
// A [Carousel] shows a row of items, several per page, that can be paged
// with the previous/next controls, swiped with a mouse or finger, and
// zoomed with two fingers. With a lightbox, tapping an item opens a
// fullscreen copy of the content in a [Modal].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	items := []*slider.Node{
//		slider.NewBox("a", 200, 150, slider.Color{R: 1, A: 1}),
//		slider.NewBox("b", 200, 150, slider.Color{G: 1, A: 1}),
//	}
//	c := slider.NewCarousel(items, slider.DefaultOptions())
//	slider.Run(c, slider.RunConfig{Title: "Gallery", Width: 800, Height: 300})
//
// For full control, implement [ebiten.Game] yourself and call
// [Carousel.Step], [Carousel.Draw] and [Carousel.Layout] directly.
//
// # Content
//
// Items are [Node] trees: solid boxes ([NewBox]), images ([NewImage],
// [LoadImageNode]), videos with sources ([NewVideo], [NewSource]), bare
// strings or numbers ([NewPrimitive]) and fragments ([NewFragment]), which
// are flattened. [SplitContent] derives the lightbox copies: images switch
// to their data-fullscreen-src variant and videos to their fullscreen
// sources.
//
// # Pages
//
// [Options.ItemsPerPage] is either a fixed count or [AutoItemsPerPage],
// which measures the first item against the container. Measurements are
// throttled and the derived layout is debounced, so a resize settles once.
// The active index follows [Options.Index], or is controlled by the caller
// when [Options.OnIndexChange] is set.
//
// # Gestures
//
// The [Recognizer] turns mouse and touch input into drags, pinches and
// taps. Page drags follow the pointer with rubberband resistance past the
// ends and settle on a page boundary, carried by the release velocity.
// Zoomed items pan instead. Input can be injected with the Inject methods
// and replayed from JSON scripts with [LoadTestScript].
//
// # Events
//
// Set an [EventSink] to receive [Event]s. The ecs sub-package publishes
// them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package slider
