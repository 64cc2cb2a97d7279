package core

// Mask is a per-pixel opacity map used for pixel-accurate collision.
// A set bit means the pixel is solid.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates an empty mask of the given size.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Set marks the pixel at (x, y) as solid. Out-of-bounds writes are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = true
}

// At reports whether the pixel at (x, y) is solid.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Overlap reports whether any solid pixel of m coincides with a solid pixel
// of other when other's top-left corner sits at (dx, dy) in m's space.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	x0 := Max(0, dx)
	y0 := Max(0, dy)
	x1 := min(m.w, dx+other.w)
	y1 := min(m.h, dy+other.h)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.bits[y*m.w+x] && other.bits[(y-dy)*other.w+(x-dx)] {
				return true
			}
		}
	}
	return false
}

// MasksCollide tests two masks placed at their bounding rectangles.
func MasksCollide(a *Mask, ar Rect, b *Mask, br Rect) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Overlap(b, br.X-ar.X, br.Y-ar.Y)
}
