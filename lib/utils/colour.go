package utils

import (
	"fmt"
	"regexp"
)

var colourRegexp = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

// Colour is a normalised RGBA colour as GL expects it.
type Colour struct {
	R float32
	G float32
	B float32
	A float32
}

func ColourValidate(c string) bool {
	return colourRegexp.MatchString(c)
}

// ColourParse turns #RRGGBBAA into a Colour.
func ColourParse(s string) (Colour, error) {
	if !ColourValidate(s) {
		return Colour{}, fmt.Errorf("%s is not a valid RGBA hex colour", s)
	}
	var r, g, b, a uint8
	_, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	if err != nil {
		return Colour{}, fmt.Errorf("could not parse colour %s: %w", s, err)
	}
	return Colour{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}, nil
}

func (c Colour) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A))
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
