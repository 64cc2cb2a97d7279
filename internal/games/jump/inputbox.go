package jump

import (
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/mysterious-jump/internal/core"
)

// InputBox is a single-line text field for entering a highscore name.
// Coordinates are world pixels.
type InputBox struct {
	Rect   core.Rect
	Text   string
	Active bool

	minW   int
	glyphW int
}

// NewInputBox creates a box at r. The box is never narrower than 200px and
// grows by glyphW per rune.
func NewInputBox(r core.Rect, glyphW int) *InputBox {
	return &InputBox{Rect: r, minW: 200, glyphW: glyphW}
}

// HandleEvent applies one input event. It returns the submitted name and
// true when Enter is pressed with non-empty text; the text is cleared on
// every Enter.
func (b *InputBox) HandleEvent(e core.Event) (string, bool) {
	switch e.Type {
	case core.EventMouseDown:
		if b.Rect.Contains(e.X, e.Y) {
			b.Active = !b.Active
		} else {
			b.Active = false
		}
		return "", false

	case core.EventKeyDown:
		if !b.Active {
			return "", false
		}
		switch {
		case e.Action == core.ActionConfirm:
			name := b.Text
			b.Text = ""
			if name != "" {
				return name, true
			}
		case e.Action == core.ActionErase:
			if _, size := utf8.DecodeLastRuneInString(b.Text); size > 0 {
				b.Text = b.Text[:len(b.Text)-size]
			}
		case e.Rune != 0 && unicode.IsPrint(e.Rune):
			b.Text += string(e.Rune)
		}
	}
	return "", false
}

// Update resizes the box to fit its text.
func (b *InputBox) Update() {
	b.Rect.W = max(b.minW, utf8.RuneCountInString(b.Text)*b.glyphW+10)
}
