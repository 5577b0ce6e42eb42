package utils

import (
	"fmt"
	"regexp"

	"github.com/go-gl/mathgl/mgl32"
)

var colourRe = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

// Colour is a normalised RGBA colour, ready to hand to gl.ClearColor.
type Colour = mgl32.Vec4

func ColourValidate(c string) bool {
	return colourRe.MatchString(c)
}

// ColourParse turns "#RRGGBBAA" into a Colour. Invalid input gives an
// error and opaque black.
func ColourParse(s string) (Colour, error) {
	if !ColourValidate(s) {
		return Colour{0, 0, 0, 1}, fmt.Errorf("%s is not a valid RGBA hex colour", s)
	}
	var r, g, b, a uint8
	_, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	if err != nil {
		return Colour{0, 0, 0, 1}, fmt.Errorf("could not parse colour %s: %w", s, err)
	}
	return Colour{
		float32(r) / 255,
		float32(g) / 255,
		float32(b) / 255,
		float32(a) / 255,
	}, nil
}
