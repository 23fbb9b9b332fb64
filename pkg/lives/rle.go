package lives

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrMissingHeader reports an RLE document without an "x = ..." header line.
	ErrMissingHeader = errors.New("lives: missing rle header")
	// ErrMalformedHeader reports a header field that could not be read.
	ErrMalformedHeader = errors.New("lives: malformed rle header")
)

// maxRun bounds a single run count so a corrupt document cannot allocate
// an unbounded number of cells.
const maxRun = 1 << 16

// ParseRLE decodes a run-length encoded pattern. It never fails: header
// fields that are absent or unreadable fall back to a 100x100 board and
// Conway's rule, and unknown body characters are skipped.
func ParseRLE(text string) Pattern {
	p, _ := parseRLE(text)
	return p
}

// ParseRLEStrict decodes like ParseRLE and additionally reports every header
// problem it had to paper over. The returned pattern is the permissive result.
func ParseRLEStrict(text string) (Pattern, error) {
	p, problems := parseRLE(text)
	return p, errors.Join(problems...)
}

// LoadRLE reads a whole pattern document from r. Only read errors are returned.
func LoadRLE(r io.Reader) (Pattern, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return NewPattern(), fmt.Errorf("lives: read pattern: %w", err)
	}
	return ParseRLE(string(data)), nil
}

// LoadRLEFile reads the pattern stored at path.
func LoadRLEFile(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewPattern(), fmt.Errorf("lives: read pattern %s: %w", path, err)
	}
	return ParseRLE(string(data)), nil
}

type rleDecoder struct {
	p        Pattern
	problems []error

	x, y   int
	count  int
	header bool
	done   bool
}

func parseRLE(text string) (Pattern, []error) {
	d := &rleDecoder{p: NewPattern()}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] == '#' {
			d.comment(line)
			continue
		}
		if d.done {
			continue
		}
		if !d.header && isHeaderLine(line) {
			d.header = true
			d.parseHeader(line)
			continue
		}
		d.body(line)
	}
	if !d.header {
		d.problems = append(d.problems, ErrMissingHeader)
	}
	return d.p, d.problems
}

func isHeaderLine(line string) bool {
	return (line[0] == 'x' || line[0] == 'X') && strings.Contains(line, "=")
}

func (d *rleDecoder) comment(line string) {
	if len(line) < 2 {
		return
	}
	rest := strings.TrimSpace(line[2:])
	switch line[1] {
	case 'N':
		d.p.Name = rest
	case 'C', 'c':
		d.p.Comments = append(d.p.Comments, rest)
	}
}

func (d *rleDecoder) parseHeader(line string) {
	seen := map[string]bool{}
	for _, field := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			d.problems = append(d.problems, fmt.Errorf("%w: field %q has no value", ErrMalformedHeader, strings.TrimSpace(field)))
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		seen[key] = true
		switch key {
		case "x":
			d.p.Width = d.dimension(key, value, DefaultWidth)
		case "y":
			d.p.Height = d.dimension(key, value, DefaultHeight)
		case "rule":
			// Bounded-grid suffixes such as ":T64,64" are not supported.
			spec, _, _ := strings.Cut(value, ":")
			r, err := ParseRuleStrict(spec)
			if err != nil {
				d.problems = append(d.problems, fmt.Errorf("%w: %w", ErrMalformedHeader, err))
				if r == (Rule{}) {
					r = Conway
				}
			}
			d.p.Rule = r
		}
	}
	for _, key := range []string{"x", "y"} {
		if !seen[key] {
			d.problems = append(d.problems, fmt.Errorf("%w: field %s missing", ErrMalformedHeader, key))
		}
	}
}

func (d *rleDecoder) dimension(key, value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		d.problems = append(d.problems, fmt.Errorf("%w: %s = %q", ErrMalformedHeader, key, value))
		return fallback
	}
	return n
}

func (d *rleDecoder) body(line string) {
	for i := 0; i < len(line) && !d.done; i++ {
		c := line[i]
		if c >= '0' && c <= '9' {
			if d.count < maxRun {
				d.count = d.count*10 + int(c-'0')
			}
			continue
		}
		if c == ' ' || c == '\t' || c == '\r' {
			continue
		}
		n := d.run()
		switch c {
		case 'o':
			for k := 0; k < n; k++ {
				d.p.Cells = append(d.p.Cells, Point{X: d.x + k, Y: d.y})
			}
			d.x += n
		case 'b':
			d.x += n
		case '$':
			d.x = 0
			d.y += n
		case '!':
			d.done = true
		}
	}
}

// run consumes the pending run count, defaulting to 1.
func (d *rleDecoder) run() int {
	n := d.count
	d.count = 0
	if n <= 0 {
		return 1
	}
	if n > maxRun {
		return maxRun
	}
	return n
}

// EncodeRLE writes the pattern as an RLE document. Cells with negative
// coordinates are dropped; the header carries the board size and rule.
func (p Pattern) EncodeRLE() string {
	const lineWidth = 70

	var out strings.Builder
	if p.Name != "" {
		fmt.Fprintf(&out, "#N %s\n", p.Name)
	}
	for _, c := range p.Comments {
		for _, line := range wrapWords(c, lineWidth-len("#C ")) {
			fmt.Fprintf(&out, "#C %s\n", line)
		}
	}
	width, height := p.Width, p.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	fmt.Fprintf(&out, "x = %d, y = %d, rule = %s\n", width, height, p.Rule)

	cells := make([]Point, 0, len(p.Cells))
	for _, c := range p.Cells {
		if c.X >= 0 && c.Y >= 0 {
			cells = append(cells, c)
		}
	}
	sortPoints(cells)
	cells = slices.Compact(cells)

	var tokens []string
	curX, curY := 0, 0
	for i := 0; i < len(cells); {
		c := cells[i]
		if c.Y > curY {
			tokens = append(tokens, runToken(c.Y-curY, '$'))
			curX, curY = 0, c.Y
		}
		if c.X > curX {
			tokens = append(tokens, runToken(c.X-curX, 'b'))
		}
		n := 1
		for i+n < len(cells) && cells[i+n].Y == c.Y && cells[i+n].X == c.X+n {
			n++
		}
		tokens = append(tokens, runToken(n, 'o'))
		curX = c.X + n
		i += n
	}
	tokens = append(tokens, "!")

	lineLen := 0
	for _, tok := range tokens {
		if lineLen > 0 && lineLen+len(tok) > lineWidth {
			out.WriteByte('\n')
			lineLen = 0
		}
		out.WriteString(tok)
		lineLen += len(tok)
	}
	out.WriteByte('\n')
	return out.String()
}

// wrapWords splits text into lines of at most width bytes, breaking at spaces
// and cutting words that are longer than a line.
func wrapWords(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		for len(word) > width {
			if cur.Len() > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 || len(lines) == 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func runToken(n int, tag byte) string {
	if n == 1 {
		return string(tag)
	}
	return strconv.Itoa(n) + string(tag)
}
