package render

import "image/color"

// FadePalette returns a 256-entry ramp from off (index 0) to on (index 255).
// Display value v is drawn as off blended toward on by v/255.
func FadePalette(on, off color.RGBA) []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		palette[i] = Blend(off, on, float64(i)/255)
	}
	return palette
}

// Blend mixes overlay into base with the given overlay weight in [0, 1].
func Blend(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	return color.RGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*w + 0.5),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*w + 0.5),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*w + 0.5),
		A: uint8(float64(base.A)*inv + float64(overlay.A)*w + 0.5),
	}
}
