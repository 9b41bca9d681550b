package colors

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a linear RGBA value with components in [0..1].
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Transparent = Color{0, 0, 0, 0}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGBA8 returns the color quantized to 8 bits per channel.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c[0]), to8(c[1]), to8(c[2]), to8(c[3])
}

// Blend composites c over dst using c's alpha.
func (c Color) Blend(dst Color) Color {
	a := clamp01(c[3])
	return Color{
		c[0]*a + dst[0]*(1-a),
		c[1]*a + dst[1]*(1-a),
		c[2]*a + dst[2]*(1-a),
		a + dst[3]*(1-a),
	}
}

// Hex formats the color as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) Hex() string {
	r, g, b, a := c.RGBA8()
	if a == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func (c Color) String() string { return c.Hex() }

// ParseHex accepts #rgb, #rrggbb and #rrggbbaa (leading # optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("colors: invalid hex %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors: invalid hex %q: %w", s, err)
	}
	return Color{
		float32(v>>24&0xff) / 255,
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// UnmarshalText lets colors be read from env/config as hex strings.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

func to8(f float32) uint8 { return uint8(clamp01(f)*255 + 0.5) }

func clamp01(f float32) float32 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
