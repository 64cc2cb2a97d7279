package jump

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/vovakirdan/mysterious-jump/internal/core"
	"github.com/vovakirdan/mysterious-jump/internal/sprite"
)

// Title is the game's display name.
const Title = "Mysterious Jump"

func drawMenu(g *Game, dst *core.Screen, vp core.Viewport) {
	h := g.cfg.Screen.Height

	dst.DrawTextCentered(vp.CellY(h/4), Title, core.ColorBrightWhite)
	dst.DrawTextCentered(vp.CellY(h/2), "[A] and [D] to move, [SPACE] to jump", core.ColorWhite)
	dst.DrawTextCentered(vp.CellY(h/2)+1, "[P] pause, [ESC] quit", core.ColorGray)
	dst.DrawTextCentered(vp.CellY(h*3/4), "Press any key to play", core.ColorWhite)

	if g.bestName != "" && g.best > 0 {
		dst.DrawTextCentered(0, fmt.Sprintf("Highscore (%s:%d)", g.bestName, g.best), core.ColorBrightYellow)
	}
}

// drawItem is one sprite queued for the playing screen.
type drawItem struct {
	layer Layer
	box   core.Rect
	art   sprite.Art
	color core.Color
}

func queue(items []drawItem, e entity, art sprite.Art, c core.Color) []drawItem {
	return append(items, drawItem{layer: e.Layer(), box: e.Rect(), art: art, color: c})
}

func drawPlaying(g *Game, dst *core.Screen, vp core.Viewport) {
	w := g.world

	items := make([]drawItem, 0, 1+len(w.Mobs)+len(w.Platforms)+len(w.Pickups)+len(w.Clouds))
	items = queue(items, w.Player, w.Player.Frame().Art, core.ColorBrightWhite)
	for _, m := range w.Mobs {
		items = queue(items, m, m.Frame().Art, core.ColorRed)
	}
	for _, p := range w.Platforms {
		art, color := sprite.Grass, core.ColorGreen
		if p.Tile == TileStone {
			art, color = sprite.Stone, core.ColorGray
		}
		items = queue(items, p, art, color)
	}
	for _, p := range w.Pickups {
		art, color := sprite.Coin, core.ColorBrightYellow
		if p.Kind == PickupBoost {
			art, color = sprite.Boost, core.ColorBrightCyan
		}
		items = queue(items, p, art, color)
	}
	for _, c := range w.Clouds {
		items = queue(items, c, sprite.Clouds[c.Shape].Art, core.ColorDarkGray)
	}

	// Stable, so the player stays under mobs within the entity layer.
	slices.SortStableFunc(items, func(a, b drawItem) int { return cmp.Compare(a.layer, b.layer) })
	for _, it := range items {
		it.art.Draw(dst, vp.Project(it.box), it.color)
	}

	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", g.score), core.ColorYellow)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawGameOver(g *Game, dst *core.Screen, vp core.Viewport) {
	h := g.cfg.Screen.Height

	dst.DrawTextCentered(vp.CellY(h/4), "GAME OVER", core.ColorBrightWhite)
	dst.DrawTextCentered(vp.CellY(h/2), fmt.Sprintf("Score: %d", g.score), core.ColorWhite)

	if !g.newHighscore() {
		dst.DrawTextCentered(vp.CellY(h*3/4), "Press any key to return to menu", core.ColorWhite)
		return
	}

	dst.DrawTextCentered(vp.CellY(h*10/16), "NEW HIGHSCORE!", core.ColorBrightYellow)
	drawInputBox(dst, vp, g.nameBox)
	if g.saveFailed {
		dst.DrawTextCentered(dst.Height()-1, "Could not save highscore, press Enter to retry", core.ColorRed)
	}
}

// drawInputBox draws the name box; the border brightens while focused.
func drawInputBox(dst *core.Screen, vp core.Viewport, b *InputBox) {
	cells := vp.Project(b.Rect)
	cells.W = max(cells.W, 4)
	cells.H = max(cells.H, 3)

	border := core.ColorGray
	if b.Active {
		border = core.ColorBrightWhite
	}
	dst.DrawRect(cells, ' ', core.ColorDefault)
	dst.DrawBox(cells, border)

	text := b.Text
	if b.Active {
		text += "_"
	}
	// Show the tail when the name outgrows the box.
	room := cells.W - 2
	if runes := []rune(text); len(runes) > room {
		text = string(runes[len(runes)-room:])
	}
	dst.DrawTextColored(cells.X+1, cells.Y+cells.H/2, text, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
