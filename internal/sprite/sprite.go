// Package sprite holds the character art used to draw entities and to build
// their collision masks. An Art is stretched over whatever box it is given,
// so the same rows serve the pixel world and the terminal grid.
package sprite

import "github.com/vovakirdan/mysterious-jump/internal/core"

// Art is a block of character rows. Spaces are transparent.
type Art struct {
	Rows []string
}

// NewArt creates art from rows.
func NewArt(rows ...string) Art {
	return Art{Rows: rows}
}

// Width returns the widest row, in runes.
func (a Art) Width() int {
	w := 0
	for _, row := range a.Rows {
		w = max(w, len([]rune(row)))
	}
	return w
}

// Height returns the number of rows.
func (a Art) Height() int {
	return len(a.Rows)
}

// At returns the rune at column x, row y, or space when out of range.
func (a Art) At(x, y int) rune {
	if y < 0 || y >= len(a.Rows) {
		return ' '
	}
	row := []rune(a.Rows[y])
	if x < 0 || x >= len(row) {
		return ' '
	}
	return row[x]
}

var mirrored = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
}

// Mirror returns the art flipped horizontally.
func (a Art) Mirror() Art {
	w := a.Width()
	rows := make([]string, len(a.Rows))
	for y := range a.Rows {
		out := make([]rune, w)
		for x := 0; x < w; x++ {
			r := a.At(w-1-x, y)
			if m, ok := mirrored[r]; ok {
				r = m
			}
			out[x] = r
		}
		rows[y] = string(out)
	}
	return Art{Rows: rows}
}

// sample maps a position inside a w×h box to an art cell (nearest neighbour).
func (a Art) sample(x, y, w, h int) rune {
	if w <= 0 || h <= 0 {
		return ' '
	}
	return a.At(x*a.Width()/w, y*a.Height()/h)
}

// Mask builds a w×h collision mask: a pixel is solid where the art is not blank.
func (a Art) Mask(w, h int) *core.Mask {
	m := core.NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if a.sample(x, y, w, h) != ' ' {
				m.Set(x, y)
			}
		}
	}
	return m
}

// Draw stretches the art over the cell rectangle. Blank cells are skipped so
// whatever was drawn underneath shows through.
func (a Art) Draw(dst *core.Screen, cells core.Rect, c core.Color) {
	for y := 0; y < cells.H; y++ {
		for x := 0; x < cells.W; x++ {
			r := a.sample(x, y, cells.W, cells.H)
			if r == ' ' {
				continue
			}
			dst.SetColored(cells.X+x, cells.Y+y, r, c)
		}
	}
}

// Frame is an art sized for the world, with its mask precomputed.
type Frame struct {
	Art  Art
	W, H int
	mask *core.Mask
}

// NewFrame sizes art to a w×h pixel box.
func NewFrame(art Art, w, h int) *Frame {
	return &Frame{Art: art, W: w, H: h, mask: art.Mask(w, h)}
}

// Mask returns the frame's collision mask.
func (f *Frame) Mask() *core.Mask {
	return f.mask
}
