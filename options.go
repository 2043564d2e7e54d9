package slider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ItemsPerPage is either a fixed number of items per page or automatic,
// where the count is derived from the container and first item widths.
type ItemsPerPage struct {
	Auto  bool
	Count int
}

// AutoItemsPerPage derives the page size from measured widths.
var AutoItemsPerPage = ItemsPerPage{Auto: true}

// FixedItemsPerPage shows exactly n items per page.
func FixedItemsPerPage(n int) ItemsPerPage {
	return ItemsPerPage{Count: n}
}

// ParseItemsPerPage accepts "auto" or a positive integer.
func ParseItemsPerPage(s string) (ItemsPerPage, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "auto") {
		return AutoItemsPerPage, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return ItemsPerPage{}, fmt.Errorf("items per page %q: %w", s, err)
	}
	return FixedItemsPerPage(n), nil
}

// String returns "auto" or the fixed count.
func (p ItemsPerPage) String() string {
	if p.Auto {
		return "auto"
	}
	return strconv.Itoa(p.Count)
}

// MarshalJSON encodes "auto" as a string and fixed counts as numbers.
func (p ItemsPerPage) MarshalJSON() ([]byte, error) {
	if p.Auto {
		return []byte(`"auto"`), nil
	}
	return []byte(strconv.Itoa(p.Count)), nil
}

// UnmarshalJSON accepts a number or the string "auto".
func (p *ItemsPerPage) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := ParseItemsPerPage(s)
		if err != nil {
			return err
		}
		*p = v
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("items per page: want number or \"auto\": %w", err)
	}
	*p = FixedItemsPerPage(n)
	return nil
}

// NavigationTarget selects what previous/next moves: the active item or
// the visible page.
type NavigationTarget uint8

const (
	NavigateItems NavigationTarget = iota // step the active index by one
	NavigateSlide                         // step the visible window by a page
)

// String returns "items" or "slide".
func (t NavigationTarget) String() string {
	if t == NavigateSlide {
		return "slide"
	}
	return "items"
}

// MarshalText implements encoding.TextMarshaler.
func (t NavigationTarget) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *NavigationTarget) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "items", "":
		*t = NavigateItems
	case "slide":
		*t = NavigateSlide
	default:
		return fmt.Errorf("navigation target %q: want \"items\" or \"slide\"", text)
	}
	return nil
}

// StyleState is a styling hook. Plain identifiers apply in both modes;
// Base and Fullscreen differ when the hook is set as a pair.
type StyleState struct {
	Base       string `json:"base,omitempty"`
	Fullscreen string `json:"fullscreen,omitempty"`
}

// Style returns a hook that applies the same identifier in both modes.
func Style(name string) StyleState {
	return StyleState{Base: name, Fullscreen: name}
}

// Resolve picks the identifier for the current mode.
func (s StyleState) Resolve(fullscreen bool) string {
	if fullscreen {
		return s.Fullscreen
	}
	return s.Base
}

// UnmarshalJSON accepts a string or a {base, fullscreen} object.
func (s *StyleState) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*s = Style(name)
		return nil
	}
	type plain StyleState
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("style: want string or {base, fullscreen}: %w", err)
	}
	*s = StyleState(p)
	return nil
}

// Styles holds every styling hook of the widget.
type Styles struct {
	Root         StyleState `json:"root"`
	Wrapper      StyleState `json:"wrapper"`
	Slide        StyleState `json:"slide"`
	VisibleSlide StyleState `json:"visibleSlide"`
	ActiveSlide  StyleState `json:"activeSlide"`
	PreviousBtn  StyleState `json:"previousBtn"`
	NextBtn      StyleState `json:"nextBtn"`
	Modal        StyleState `json:"modal"`
	ModalOverlay StyleState `json:"modalOverlay"`
	ItemsPerPage string     `json:"itemsPerPagePrefix"`
}

// Options configures a Carousel. Start from DefaultOptions; the zero value
// of several fields (Index, LightboxIndex) is meaningful.
type Options struct {
	// Index is the initial active index, or the controlled value when
	// OnIndexChange is set.
	Index int `json:"index"`
	// OnIndexChange switches the active index to controlled mode. The
	// slider reports requested indices here and waits for SetIndex.
	OnIndexChange func(index int) `json:"-"`

	ItemsPerPage ItemsPerPage `json:"itemsPerPage"`
	// InitialItemsPerPage is used before the first layout measurement.
	// Defaults to the fixed ItemsPerPage count, or 1.
	InitialItemsPerPage int `json:"initialItemsPerPage"`

	WithLightbox bool `json:"withLightbox"`
	// LightboxIndex opens the lightbox at start when not NoIndex.
	LightboxIndex int `json:"lightboxIndex"`
	// OnLightboxIndexChange switches the lightbox index to controlled mode.
	// NoIndex is reported when the lightbox asks to close.
	OnLightboxIndexChange func(index int) `json:"-"`

	NavigationTarget NavigationTarget `json:"navigationTarget"`
	// NavigationTriggers seeds the previous/next counter baseline of
	// SetNavigationTriggers. Without it the first pushed pair is the
	// baseline.
	NavigationTriggers *[2]int `json:"navigationTriggers"`
	// WithScaling enables pinch zoom of individual items.
	WithScaling bool `json:"withScaling"`

	Styles Styles `json:"styles"`

	PreviousBtnLabel   string `json:"previousBtnLabel"`
	NextBtnLabel       string `json:"nextBtnLabel"`
	PreviousBtnContent *Node  `json:"-"`
	NextBtnContent     *Node  `json:"-"`
	ModalLabel         string `json:"modalLabel"`
	// Modal replaces the default OverlayModal.
	Modal Modal `json:"-"`

	// DragDeadZone is the tap filter threshold in pixels.
	DragDeadZone float64 `json:"dragDeadZone"`
	Debug        bool    `json:"debug"`
}

// DefaultOptions returns the options a Carousel uses when nothing is set.
func DefaultOptions() Options {
	return Options{
		ItemsPerPage:     AutoItemsPerPage,
		LightboxIndex:    NoIndex,
		NavigationTarget: NavigateItems,
		WithScaling:      true,
		PreviousBtnLabel: "Previous",
		NextBtnLabel:     "Next",
		DragDeadZone:     defaultDragDeadZone,
	}
}

// ParseOptions decodes JSON options on top of DefaultOptions.
func ParseOptions(jsonData []byte) (Options, error) {
	opts := DefaultOptions()
	if err := json.Unmarshal(jsonData, &opts); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}

// initialItemsPerPage resolves the page size used before measurement.
func (o Options) initialItemsPerPage() int {
	if o.InitialItemsPerPage > 0 {
		return o.InitialItemsPerPage
	}
	if !o.ItemsPerPage.Auto && o.ItemsPerPage.Count > 0 {
		return o.ItemsPerPage.Count
	}
	return 1
}
