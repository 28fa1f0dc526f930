package state

import (
	"github.com/anthill-game/anthill/pkg/geom"
)

// View is a drawable snapshot of the current level: one string per map
// row, fog of war already applied. Unexplored cells are blank, explored
// but unseen cells show remembered terrain, and entities appear only
// where the player can currently see.
type View struct {
	Rows     []string `json:"rows"`
	Round    int      `json:"round"`
	Depth    int      `json:"depth"`
	HP       int      `json:"hp"`
	HPMax    int      `json:"hp_max"`
	Level    int      `json:"level"`
	XP       int      `json:"xp"`
	GameOver bool     `json:"game_over,omitempty"`
	Cursor   *Cursor  `json:"cursor,omitempty"`
}

// Render builds the fogged map snapshot of the current level.
func (gs *GameState) Render() View {
	w := gs.CurrentWorld()
	lv := gs.CurrentLevel()

	grid := make([][]rune, w.Height)
	for y := 0; y < w.Height; y++ {
		row := make([]rune, w.Width)
		for x := 0; x < w.Width; x++ {
			t := w.At(geom.Pt(x, y))
			if t.Visible || t.Explored {
				row[x] = t.Kind.Glyph()
			} else {
				row[x] = ' '
			}
		}
		grid[y] = row
	}

	place := func(p geom.Point, glyph string) {
		if !w.Contains(p) || !w.At(p).Visible {
			return
		}
		grid[p.Y][p.X] = glyphRune(glyph)
	}
	// sprites first so creatures draw over loot
	for _, s := range lv.Sprites {
		place(s.Pos, s.Glyph)
	}
	for _, n := range lv.NPCs {
		place(n.Pos, n.Glyph)
	}
	// the player is always visible to themselves
	if w.Contains(gs.Player.Pos) {
		grid[gs.Player.Pos.Y][gs.Player.Pos.X] = glyphRune(gs.Player.Glyph)
	}

	rows := make([]string, len(grid))
	for i, r := range grid {
		rows[i] = string(r)
	}

	return View{
		Rows:     rows,
		Round:    gs.Round,
		Depth:    gs.Depth,
		HP:       gs.Player.Stats.HP,
		HPMax:    gs.Player.Stats.HPMax,
		Level:    gs.Player.Stats.Level,
		XP:       gs.Player.Stats.XP,
		GameOver: gs.GameOver,
		Cursor:   gs.Cursor,
	}
}

func glyphRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}
