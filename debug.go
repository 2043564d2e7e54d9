package slider

import (
	"fmt"
	"os"
)

// debugf prints a debug line to stderr when debug mode is on.
func (s *Slider) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	name := "slider"
	if s.lightboxMode {
		name = "slider/lightbox"
	}
	_, _ = fmt.Fprintf(os.Stderr, "["+name+"] "+format+"\n", args...)
}

// debugCheckItemCount warns on stderr if a slider holds more items than it
// can lay out comfortably.
const debugMaxItemCount = 1000

func debugCheckItemCount(n int) {
	if n > debugMaxItemCount {
		_, _ = fmt.Fprintf(os.Stderr, "[slider] warning: %d items (threshold %d)\n",
			n, debugMaxItemCount)
	}
}

// SetDebugMode enables or disables debug logging. When enabled, layout
// changes, gestures, navigation and degenerate frames are logged to stderr.
func (s *Slider) SetDebugMode(enabled bool) {
	s.debug = enabled
}
