package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func checker(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.NRGBA{0, 0, 255, 255})
			}
		}
	}
	return img
}

func writeFile(t *testing.T, name string, enc func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := enc(f); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadImageFormats(t *testing.T) {
	src := checker(8)
	pngPath := writeFile(t, "icon.png", func(f *os.File) error { return png.Encode(f, src) })
	bmpPath := writeFile(t, "icon.bmp", func(f *os.File) error { return bmp.Encode(f, src) })

	for _, path := range []string{pngPath, bmpPath} {
		img, err := LoadImage(path)
		if err != nil {
			t.Fatalf("LoadImage(%s): %v", filepath.Base(path), err)
		}
		if got := img.Bounds().Dx(); got != 8 {
			t.Errorf("%s: width %d, want 8", filepath.Base(path), got)
		}
		r, _, b, _ := img.At(0, 0).RGBA()
		if r>>8 != 255 || b != 0 {
			t.Errorf("%s: pixel (0,0) not red", filepath.Base(path))
		}
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	junk := writeFile(t, "junk.png", func(f *os.File) error {
		_, err := f.WriteString("not an image")
		return err
	})
	if _, err := LoadImage(junk); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestPixelsTightlyPacked(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 3, 5, 5)) // non-zero origin, 3x2
	src.Set(2, 3, color.RGBA{1, 2, 3, 4})
	w, h, pix := Pixels(src)
	if w != 3 || h != 2 {
		t.Fatalf("size %dx%d, want 3x2", w, h)
	}
	if len(pix) != 3*2*4 {
		t.Fatalf("len %d, want 24", len(pix))
	}
	if pix[0] != 1 || pix[1] != 2 || pix[2] != 3 || pix[3] != 4 {
		t.Errorf("first pixel %v", pix[:4])
	}
}

func TestLoadIconSet(t *testing.T) {
	path := writeFile(t, "big.png", func(f *os.File) error { return png.Encode(f, checker(40)) })
	icons, err := LoadIconSet(path)
	if err != nil {
		t.Fatal(err)
	}
	// original 40 plus the 16 and 32 downscales; 48 would upscale.
	want := []int{40, 16, 32}
	if len(icons) != len(want) {
		t.Fatalf("got %d icons, want %d", len(icons), len(want))
	}
	for i, img := range icons {
		if got := img.Bounds().Dx(); got != want[i] {
			t.Errorf("icon %d: width %d, want %d", i, got, want[i])
		}
	}
}

func TestIconSetRejectsEmpty(t *testing.T) {
	if _, err := IconSet(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Error("expected error for empty image")
	}
}
