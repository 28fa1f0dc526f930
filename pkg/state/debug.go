package state

import (
	"github.com/anthill-game/anthill/pkg/dice"
	"github.com/anthill-game/anthill/pkg/geom"
)

// Debug primitives back the console's slash commands. They mutate the
// session directly and never consume a round.

// GiveItem mints an instance of a definition straight into the
// inventory.
func (gs *GameState) GiveItem(defID string) (Outcome, error) {
	if gs.Player.InventoryFull() {
		return Failure(FailInventoryFull), nil
	}
	id, err := gs.RegisterItem(defID)
	if err != nil {
		return Outcome{}, err
	}
	gs.Player.AddItem(id)
	gs.debugf("Gave player %s (ID: %d)", defID, id)
	return Success(), nil
}

// MaxStats pushes every ability to 99 and hit points to 990, fully
// healed.
func (gs *GameState) MaxStats() {
	gs.Player.Stats.Strength = 99
	gs.Player.Stats.Dexterity = 99
	gs.Player.Stats.Vitality = 99
	gs.Player.Stats.Perception = 99
	gs.Player.Stats.HPMax = 990
	gs.Player.Stats.HP = gs.Player.Stats.HPMax
	gs.debugf("Maxed out player stats")
}

// ToggleNoClip flips wall clipping for the player and returns the new
// setting.
func (gs *GameState) ToggleNoClip() bool {
	gs.NoClip = !gs.NoClip
	gs.debugf("No-clip set to %t", gs.NoClip)
	return gs.NoClip
}

// ToggleGod flips invulnerability and returns the new setting.
func (gs *GameState) ToggleGod() bool {
	gs.God = !gs.God
	gs.debugf("God mode set to %t", gs.God)
	return gs.God
}

// Teleport drops the player on any walkable cell of the current level.
func (gs *GameState) Teleport(p geom.Point) (Outcome, error) {
	w := gs.CurrentWorld()
	if !w.Contains(p) {
		return Failure(FailOutOfBounds), nil
	}
	if !w.Walkable(p) {
		return Failure(FailNotWalkable), nil
	}
	gs.Player.MoveTo(p)
	gs.computeFOV()
	gs.debugf("Teleported player to (%d, %d)", p.X, p.Y)
	return Success(), nil
}

// RevealMap marks the whole current level seen. Visibility snaps back
// to the real field of view at the end of the next round, but the
// explored memory sticks.
func (gs *GameState) RevealMap() {
	w := gs.CurrentWorld()
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			t := w.At(geom.Pt(x, y))
			t.Visible = true
			t.Explored = true
		}
	}
	gs.debugf("Revealed level %d", gs.Depth)
}

// Roll draws from the gameplay stream, for inspecting or burning rolls.
func (gs *GameState) Roll(r dice.Roll) int {
	n := r.Do(gs.Rng.Rand)
	gs.debugf("Rolled %s: %d", r, n)
	return n
}

// ResolveCheck runs a dice check against the gameplay stream.
func (gs *GameState) ResolveCheck(c dice.Check) bool {
	ok := c.Resolve(gs.Rng.Rand)
	gs.debugf("Check %s: %t", c.Roll, ok)
	return ok
}
