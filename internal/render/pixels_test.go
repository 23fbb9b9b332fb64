package render

import (
	"image/color"
	"testing"
)

func TestFillBinary(t *testing.T) {
	buf := make([]byte, 8)
	Fill(buf, []uint8{1, 0}, nil, color.White, color.Black)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}

func TestFillPaletteClampsIndex(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}}
	buf := make([]byte, 8)
	Fill(buf, []uint8{0, 200}, palette, nil, nil)
	if buf[0] != 1 || buf[4] != 2 {
		t.Fatalf("palette lookup wrong: %v", buf)
	}
}

func TestFillShortBufferIsNoop(t *testing.T) {
	buf := []byte{9, 9, 9}
	Fill(buf, []uint8{1}, nil, color.White, color.Black)
	if buf[0] != 9 {
		t.Fatal("a short buffer should be left untouched")
	}
}

func TestFadePaletteEnds(t *testing.T) {
	on := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	off := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	p := FadePalette(on, off)
	if len(p) != 256 {
		t.Fatalf("palette has %d entries, want 256", len(p))
	}
	if p[0] != off || p[255] != on {
		t.Fatalf("palette ends = %v, %v", p[0], p[255])
	}
	if p[128].R <= p[64].R {
		t.Fatal("palette should brighten with the index")
	}
}
