package geom

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
)

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all cardinal directions in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Delta returns the unit offset for one step in the direction.
// Up decreases y; the grid origin is the top-left corner.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// MarshalJSON encodes the direction as its name.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a direction from its name.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	}
	return 0, fmt.Errorf("not a cardinal direction: %q", s)
}

// RandomDirection draws a uniformly random cardinal direction.
func RandomDirection(rng *rand.Rand) Direction {
	return Directions[rng.IntN(4)]
}

// DirectionBetween returns the direction from one point to an orthogonally
// adjacent other point. The second return value is false when the points are
// not exactly one cardinal step apart.
func DirectionBetween(from, to Point) (Direction, bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	switch {
	case dx == 0 && dy == -1:
		return Up, true
	case dx == 1 && dy == 0:
		return Right, true
	case dx == 0 && dy == 1:
		return Down, true
	case dx == -1 && dy == 0:
		return Left, true
	}
	return 0, false
}
