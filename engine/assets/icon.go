package assets

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// IconSizes are the square sizes handed to the window system, which picks
// the closest one per context (taskbar, title bar, alt-tab).
var IconSizes = []int{16, 32, 48}

// LoadIconSet loads path and returns it at its own size plus every entry of
// IconSizes smaller than it.
func LoadIconSet(path string) ([]image.Image, error) {
	src, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return IconSet(src)
}

func IconSet(src image.Image) ([]image.Image, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("icon: empty image")
	}
	out := []image.Image{ToRGBA(src)}
	for _, size := range IconSizes {
		if size >= b.Dx() && size >= b.Dy() {
			continue
		}
		out = append(out, Resize(src, size, size))
	}
	return out, nil
}

// Resize scales src to w x h with Catmull-Rom filtering.
func Resize(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
