package dice

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// DieSize is the number of sides on a die.
type DieSize int

const (
	D4   DieSize = 4
	D6   DieSize = 6
	D8   DieSize = 8
	D10  DieSize = 10
	D20  DieSize = 20
	D100 DieSize = 100
)

// Roll describes a dice roll: a number of dice of one size plus a flat
// modifier. The zero-dice form expresses fixed values (fist damage, flat
// weapon damage from the data files). Rolls serialize as dice notation
// ("2d6+1", or a bare integer for flat values).
type Roll struct {
	Dice     int
	Size     DieSize
	Modifier int
}

// NewRoll returns a roll of the given number of dice with no modifier.
func NewRoll(dice int, size DieSize) Roll {
	return Roll{Dice: dice, Size: size}
}

// Flat returns a roll that always resolves to n.
func Flat(n int) Roll {
	return Roll{Modifier: n}
}

// WithModifier returns a copy of the roll with the modifier added on.
// Modifiers stack.
func (r Roll) WithModifier(m int) Roll {
	r.Modifier += m
	return r
}

// Do resolves the roll against the given stream: each die contributes a
// uniform value in [1, size], then the modifier is added.
func (r Roll) Do(rng *rand.Rand) int {
	total := r.Modifier
	for i := 0; i < r.Dice; i++ {
		total += 1 + rng.IntN(int(r.Size))
	}
	return total
}

func (r Roll) String() string {
	if r.Dice == 0 {
		return strconv.Itoa(r.Modifier)
	}
	s := fmt.Sprintf("%dd%d", r.Dice, int(r.Size))
	switch {
	case r.Modifier > 0:
		s += fmt.Sprintf("+%d", r.Modifier)
	case r.Modifier < 0:
		s += strconv.Itoa(r.Modifier)
	}
	return s
}

func (r Roll) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Roll) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("roll must be a dice notation string: %w", err)
	}
	parsed, err := ParseRoll(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRoll reads dice notation: "2d6", "1d8+2", "1d4-1", or a bare
// integer for a flat value.
func ParseRoll(s string) (Roll, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Roll{}, fmt.Errorf("empty roll expression")
	}

	if n, err := strconv.Atoi(s); err == nil {
		return Flat(n), nil
	}

	dIdx := strings.Index(s, "d")
	if dIdx <= 0 {
		return Roll{}, fmt.Errorf("invalid roll expression: %q", s)
	}

	dice, err := strconv.Atoi(s[:dIdx])
	if err != nil || dice < 1 {
		return Roll{}, fmt.Errorf("invalid dice count in %q", s)
	}

	rest := s[dIdx+1:]
	modifier := 0
	if i := strings.IndexAny(rest, "+-"); i > 0 {
		modifier, err = strconv.Atoi(rest[i:])
		if err != nil {
			return Roll{}, fmt.Errorf("invalid modifier in %q", s)
		}
		rest = rest[:i]
	}

	size, err := strconv.Atoi(rest)
	if err != nil || size < 2 {
		return Roll{}, fmt.Errorf("invalid die size in %q", s)
	}

	return Roll{Dice: dice, Size: DieSize(size), Modifier: modifier}, nil
}

// Check is a difficulty test resolved with a roll: it succeeds when the
// rolled result meets or beats the difficulty.
type Check struct {
	Roll       Roll `json:"roll"`
	Difficulty int  `json:"difficulty"`
}

// NewCheck wraps a roll into a check with difficulty zero.
func NewCheck(roll Roll) Check {
	return Check{Roll: roll}
}

// WithDifficulty returns a copy with the difficulty replaced.
func (c Check) WithDifficulty(d int) Check {
	c.Difficulty = d
	return c
}

// Resolve rolls and compares against the difficulty.
func (c Check) Resolve(rng *rand.Rand) bool {
	return c.Roll.Do(rng) >= c.Difficulty
}
