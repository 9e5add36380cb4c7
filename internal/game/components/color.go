package components

import (
	"fmt"
	"image/color"
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

var (
	Black  = RGB{0, 0, 0}
	White  = RGB{255, 255, 255}
	Yellow = RGB{255, 255, 0}
	Red    = RGB{255, 0, 0}
	Green  = RGB{0, 255, 0}
	Grey   = RGB{128, 128, 128}
)

// ParseHex reads "#rrggbb" or "rrggbb"
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var c RGB
	if len(s) != 6 {
		return c, fmt.Errorf("invalid hex color %q", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}

// Hex formats the color as "#rrggbb"
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Greyscale converts the color using luminance weights
func (c RGB) Greyscale() RGB {
	l := uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000)
	return RGB{l, l, l}
}

// ToColor converts to an image/color value
func (c RGB) ToColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
