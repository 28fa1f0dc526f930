package actor

// Stats is the hit point block every combatant carries.
type Stats struct {
	HP    int `json:"hp"`
	HPMax int `json:"hp_max"`
}

// TakeDamage reduces hit points, stopping at zero.
func (s *Stats) TakeDamage(amount int) {
	if amount >= s.HP {
		s.HP = 0
		return
	}
	s.HP -= amount
}

// Heal restores hit points, capped at the maximum.
func (s *Stats) Heal(amount int) {
	s.HP = min(s.HP+amount, s.HPMax)
}

// Alive reports whether the combatant is still standing.
func (s *Stats) Alive() bool {
	return s.HP > 0
}
