package scratch

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Gradient is a three stop linear gradient running from the top-left to the bottom-right corner.
type Gradient [3]color.RGBA

// ParseGradient parses three "#RRGGBB" (or "#RGB") colours.
func ParseGradient(stops [3]string) (Gradient, error) {
	var g Gradient
	for i, s := range stops {
		c, err := ParseHexColor(s)
		if err != nil {
			return Gradient{}, fmt.Errorf("invalid gradient stop %d: %w", i, err)
		}
		g[i] = c
	}
	return g, nil
}

func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %v", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// At returns the colour at pixel (x, y) of a width x height overlay.
func (g Gradient) At(x, y, width, height int) color.RGBA {
	w, h := float64(width), float64(height)
	den := w*w + h*h
	t := 0.0
	if den > 0 {
		t = ((float64(x)+0.5)*w + (float64(y)+0.5)*h) / den
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if t <= 0.5 {
		return lerp(g[0], g[1], t*2)
	}
	return lerp(g[1], g[2], (t-0.5)*2)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}
