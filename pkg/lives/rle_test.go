package lives

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

var gliderCells = []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

func TestParseRLEGlider(t *testing.T) {
	p := ParseRLE("#N Glider\nx = 3, y = 3, rule = B3/S23\nbob$2bo$3o!\n")
	if p.Name != "Glider" {
		t.Fatalf("name = %q, want Glider", p.Name)
	}
	if p.Width != 3 || p.Height != 3 {
		t.Fatalf("size = %dx%d, want 3x3", p.Width, p.Height)
	}
	if p.Rule != Conway {
		t.Fatalf("rule = %s, want B3/S23", p.Rule)
	}
	if !slices.Equal(p.Cells, gliderCells) {
		t.Fatalf("cells = %v, want %v", p.Cells, gliderCells)
	}
}

func TestParseRLEDefaultsWithoutHeader(t *testing.T) {
	p := ParseRLE("bob$2bo$3o!")
	if p.Width != DefaultWidth || p.Height != DefaultHeight {
		t.Fatalf("size = %dx%d, want defaults", p.Width, p.Height)
	}
	if p.Rule != Conway {
		t.Fatalf("rule = %s, want Conway", p.Rule)
	}
	if !slices.Equal(p.Cells, gliderCells) {
		t.Fatalf("cells = %v, want %v", p.Cells, gliderCells)
	}
}

func TestParseRLEMalformedHeaderFallsBack(t *testing.T) {
	p := ParseRLE("x = wide, y = -4, rule = Q\n3o!")
	if p.Width != DefaultWidth || p.Height != DefaultHeight {
		t.Fatalf("size = %dx%d, want defaults", p.Width, p.Height)
	}
	if p.Rule != Conway {
		t.Fatalf("unreadable rule should fall back to Conway, got %s", p.Rule)
	}
	if len(p.Cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(p.Cells))
	}
}

func TestParseRLEEmptyInput(t *testing.T) {
	p := ParseRLE("")
	if len(p.Cells) != 0 || p.Width != DefaultWidth || p.Rule != Conway {
		t.Fatalf("unexpected pattern for empty input: %+v", p)
	}
}

func TestParseRLEStrictReportsProblems(t *testing.T) {
	if _, err := ParseRLEStrict("x = 3, y = 3, rule = B3/S23\nbob$2bo$3o!"); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}

	p, err := ParseRLEStrict("bob$2bo$3o!")
	if !errors.Is(err, ErrMissingHeader) {
		t.Fatalf("expected ErrMissingHeader, got %v", err)
	}
	if len(p.Cells) != 5 {
		t.Fatalf("strict parse should still decode cells, got %d", len(p.Cells))
	}

	_, err = ParseRLEStrict("x = 3, y = zero\n3o!")
	if !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}

	_, err = ParseRLEStrict("x = 3\n3o!")
	if !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("missing y should be reported, got %v", err)
	}
}

func TestParseRLERunsAndRowSkips(t *testing.T) {
	p := ParseRLE("x = 5, y = 5\n2o2bo3$o\n4b o!")
	want := []Point{{0, 0}, {1, 0}, {4, 0}, {0, 3}, {5, 3}}
	if !slices.Equal(p.Cells, want) {
		t.Fatalf("cells = %v, want %v", p.Cells, want)
	}
}

func TestParseRLEStopsAtBang(t *testing.T) {
	p := ParseRLE("x = 3, y = 3\no!\n3o$3o")
	if len(p.Cells) != 1 {
		t.Fatalf("cells after '!' should be ignored, got %v", p.Cells)
	}
}

func TestParseRLEComments(t *testing.T) {
	p := ParseRLE("#N Block\n#C still life\n#O someone\nx = 2, y = 2\n2o$2o!")
	if p.Name != "Block" {
		t.Fatalf("name = %q", p.Name)
	}
	if len(p.Comments) != 1 || p.Comments[0] != "still life" {
		t.Fatalf("comments = %q", p.Comments)
	}
}

func TestLoadRLEFileFixtures(t *testing.T) {
	cases := []struct {
		file   string
		cells  int
		w, h   int
		rule   string
		header bool
	}{
		{file: "glider.rle", cells: 5, w: 3, h: 3, rule: "B3/S23"},
		{file: "gosper.rle", cells: 36, w: 36, h: 9, rule: "B3/S23"},
		{file: "headerless.rle", cells: 4, w: DefaultWidth, h: DefaultHeight, rule: "B3/S23"},
		{file: "highlife.rle", cells: 12, w: 5, h: 5, rule: "B36/S23"},
	}
	for _, tc := range cases {
		p, err := LoadRLEFile(filepath.Join("testdata", tc.file))
		if err != nil {
			t.Fatalf("%s: %v", tc.file, err)
		}
		if len(p.Cells) != tc.cells {
			t.Fatalf("%s: %d cells, want %d", tc.file, len(p.Cells), tc.cells)
		}
		if p.Width != tc.w || p.Height != tc.h {
			t.Fatalf("%s: size %dx%d, want %dx%d", tc.file, p.Width, p.Height, tc.w, tc.h)
		}
		if p.Rule.String() != tc.rule {
			t.Fatalf("%s: rule %s, want %s", tc.file, p.Rule, tc.rule)
		}
	}
}

func TestLoadRLEFileMissing(t *testing.T) {
	if _, err := LoadRLEFile(filepath.Join("testdata", "missing.rle")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestEncodeRLERoundTrip(t *testing.T) {
	src, err := LoadRLEFile(filepath.Join("testdata", "gosper.rle"))
	if err != nil {
		t.Fatal(err)
	}
	text := src.EncodeRLE()
	if !strings.HasPrefix(text, "#N Gosper glider gun\n") {
		t.Fatalf("encoded text lost the name:\n%s", text)
	}
	for _, line := range strings.Split(text, "\n") {
		if len(line) > 70 {
			t.Fatalf("line longer than 70 columns: %q", line)
		}
	}
	back := ParseRLE(text)
	if back.Width != src.Width || back.Height != src.Height || back.Rule != src.Rule {
		t.Fatalf("header mismatch: %+v vs %+v", back, src)
	}
	want := src.Normalize().Cells
	got := back.Normalize().Cells
	if !slices.Equal(got, want) {
		t.Fatalf("cells changed in round trip:\n got %v\nwant %v", got, want)
	}
}

func TestEncodeRLEWrapsLongComments(t *testing.T) {
	long := strings.Repeat("period ", 20) + strings.Repeat("x", 90)
	p := Pattern{Width: 3, Height: 3, Rule: Conway, Comments: []string{long, ""}, Cells: gliderCells}
	text := p.EncodeRLE()

	var words []string
	comments := 0
	for _, line := range strings.Split(text, "\n") {
		if len(line) > 70 {
			t.Fatalf("line longer than 70 columns: %q", line)
		}
		if strings.HasPrefix(line, "#C") {
			comments++
			words = append(words, strings.Fields(strings.TrimPrefix(line, "#C"))...)
		}
	}
	if comments < 4 {
		t.Fatalf("long comment should span several lines, got %d:\n%s", comments, text)
	}
	if got, want := strings.Join(words, ""), strings.Join(strings.Fields(long), ""); got != want {
		t.Fatalf("comment text changed:\n got %q\nwant %q", got, want)
	}
	if back := ParseRLE(text); !slices.Equal(back.Normalize().Cells, gliderCells) {
		t.Fatalf("cells changed: %v", back.Cells)
	}
}

func TestEncodeRLEGlider(t *testing.T) {
	p := Pattern{Width: 3, Height: 3, Rule: Conway, Cells: gliderCells}
	want := "x = 3, y = 3, rule = B3/S23\nbo$2bo$3o!\n"
	if got := p.EncodeRLE(); got != want {
		t.Fatalf("EncodeRLE() = %q, want %q", got, want)
	}
}
