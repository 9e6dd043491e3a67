package assets

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageLoader decodes and caches images from an asset FS.
type ImageLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) Load(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// SplitFrames cuts a horizontal strip into frames of w x h.
func SplitFrames(sheet *ebiten.Image, w, h int) []*ebiten.Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	bounds := sheet.Bounds()
	n := bounds.Dx() / w
	frames := make([]*ebiten.Image, 0, n)
	for i := 0; i < n; i++ {
		x := bounds.Min.X + i*w
		rect := image.Rect(x, bounds.Min.Y, x+w, bounds.Min.Y+h)
		frames = append(frames, sheet.SubImage(rect).(*ebiten.Image))
	}
	return frames
}
