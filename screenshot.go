package slider

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultScreenshotDir is where screenshots go unless SetScreenshotDir is
// called.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. A label ending in ".webp" is written as WebP,
// anything else as PNG, with a timestamped filename.
func (c *Carousel) Screenshot(label string) {
	c.screenshotQueue = append(c.screenshotQueue, label)
}

// SetScreenshotDir sets the output directory of Screenshot.
func (c *Carousel) SetScreenshotDir(dir string) {
	c.screenshotDir = dir
}

// drawScreenshots captures the rendered frame for every queued label.
// Called at the end of Carousel.Draw.
func (c *Carousel) drawScreenshots(screen *ebiten.Image) {
	if len(c.screenshotQueue) == 0 {
		return
	}
	dir := c.screenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[slider] screenshot: mkdir %s: %v\n", dir, err)
		c.screenshotQueue = c.screenshotQueue[:0]
		return
	}

	img := readScreen(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range c.screenshotQueue {
		path, err := writeScreenshot(dir, stamp, label, img)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[slider] screenshot: %v\n", err)
			continue
		}
		if c.debug {
			_, _ = fmt.Fprintf(os.Stderr, "[slider] screenshot: wrote %s\n", path)
		}
	}
	c.screenshotQueue = c.screenshotQueue[:0]
}

// readScreen copies the frame into a straight-alpha NRGBA image.
func readScreen(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writeScreenshot encodes img under dir and returns the written path.
func writeScreenshot(dir, stamp, label string, img image.Image) (string, error) {
	ext := ".png"
	if strings.HasSuffix(strings.ToLower(label), ".webp") {
		ext = ".webp"
		label = label[:len(label)-len(".webp")]
	}
	path := filepath.Join(dir, stamp+"_"+sanitizeLabel(label)+ext)
	if ext == ".webp" {
		return path, writeWebP(path, img)
	}
	return path, writePNG(path, img)
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// writeWebP encodes an image to a lossless WebP file at the given path.
func writeWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
