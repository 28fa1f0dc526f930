package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthill-game/anthill/pkg/dice"
	"github.com/anthill-game/anthill/pkg/geom"
)

func goblinDef() NPCDef {
	return NPCDef{
		Name:   "Goblin",
		Glyph:  "g",
		Color:  "green",
		HP:     10,
		Damage: dice.NewRoll(1, 2),
		Dodge:  10,
	}
}

func TestNewNPCStartsWandering(t *testing.T) {
	npc := NewNPC(7, geom.Pt(50, 7), goblinDef())

	assert.Equal(t, EntityID(7), npc.ID)
	assert.Equal(t, "Goblin", npc.Name)
	assert.Equal(t, geom.Pt(50, 7), npc.Pos)
	assert.Equal(t, "g", npc.Glyph)
	assert.Equal(t, 10, npc.Stats.HP)
	assert.Equal(t, 10, npc.Stats.HPMax)
	assert.Equal(t, AIWandering, npc.AI)
}

func TestNPCDodgeChanceCapsAtFifty(t *testing.T) {
	stats := NPCStats{Dodge: 80}
	assert.Equal(t, 50, stats.DodgeChance())

	stats.Dodge = 20
	assert.Equal(t, 20, stats.DodgeChance())
}

func TestStats(t *testing.T) {
	s := Stats{HP: 10, HPMax: 10}

	s.TakeDamage(4)
	assert.Equal(t, 6, s.HP)
	assert.True(t, s.Alive())

	s.TakeDamage(100)
	assert.Equal(t, 0, s.HP, "damage never drives hit points negative")
	assert.False(t, s.Alive())

	s.Heal(3)
	assert.Equal(t, 3, s.HP)
	s.Heal(100)
	assert.Equal(t, 10, s.HP, "healing caps at the maximum")
}

func TestNPCDefValidate(t *testing.T) {
	tests := []struct {
		name    string
		def     NPCDef
		wantErr bool
	}{
		{name: "valid", def: goblinDef()},
		{name: "missing name", def: NPCDef{Glyph: "g", HP: 10}, wantErr: true},
		{name: "multi rune glyph", def: NPCDef{Name: "Goblin", Glyph: "gg", HP: 10}, wantErr: true},
		{name: "zero hp", def: NPCDef{Name: "Goblin", Glyph: "g"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNPCDefSetGet(t *testing.T) {
	set := NPCDefSet{"goblin": goblinDef()}

	def, err := set.Get("goblin")
	require.NoError(t, err)
	assert.Equal(t, "Goblin", def.Name)

	_, err = set.Get("dragon")
	assert.ErrorContains(t, err, "dragon")
}

func TestMoveTo(t *testing.T) {
	npc := NewNPC(1, geom.Pt(5, 5), goblinDef())
	npc.MoveTo(geom.Pt(6, 5))
	assert.Equal(t, geom.Pt(6, 5), npc.Pos)
}
