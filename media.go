package slider

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/ftrvxmtrx/tga"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// ErrUnknownImageFormat is returned when media data matches no supported
// format.
var ErrUnknownImageFormat = errors.New("slider: unknown image format")

type decodeFunc func(io.Reader) (image.Image, error)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// DecodeImage decodes PNG, JPEG, WebP, BMP or TGA data and returns the
// format name.
func DecodeImage(data []byte) (image.Image, string, error) {
	format, decode := decoderFor(data)
	img, err := decode(bytes.NewReader(data))
	if err != nil {
		// Anything without a known signature was tried as TGA.
		if format == "tga" {
			return nil, "", fmt.Errorf("%w: %v", ErrUnknownImageFormat, err)
		}
		return nil, "", fmt.Errorf("decode %s image: %w", format, err)
	}
	return img, format, nil
}

// decoderFor picks a decoder from the leading bytes. TGA has no signature
// and takes whatever is left.
func decoderFor(data []byte) (string, decodeFunc) {
	switch {
	case bytes.HasPrefix(data, pngSignature):
		return "png", png.Decode
	case bytes.HasPrefix(data, []byte{0xff, 0xd8}):
		return "jpeg", jpeg.Decode
	case bytes.HasPrefix(data, []byte("BM")):
		return "bmp", bmp.Decode
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "webp", webp.Decode
	}
	return "tga", tga.Decode
}

// LoadImage reads and decodes an image file into an ebiten image.
func LoadImage(path string) (*ebiten.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	img, _, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadImageNode loads path as an image node. When fullPath is not empty it
// is loaded as the fullscreen variant and recorded as data-fullscreen-src.
func LoadImageNode(name, path, fullPath string) (*Node, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	n := NewImage(name, path, img)
	if fullPath != "" {
		full, err := LoadImage(fullPath)
		if err != nil {
			return nil, err
		}
		n.FullImage = full
		n.SetAttr(AttrFullscreenSrc, fullPath)
	}
	return n, nil
}

// Thumbnail downscales src to fit within maxW x maxH, keeping the aspect
// ratio. Images already small enough are returned as they are.
func Thumbnail(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 || maxW <= 0 || maxH <= 0 || (w <= maxW && h <= maxH) {
		return src
	}
	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	tw, th := max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale))
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
