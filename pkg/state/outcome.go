package state

// Outcome is the rule-level result of an action. It is distinct from an
// error: an error means the engine or its data is broken, an Outcome
// records whether the rules of the game permitted the attempt. The two
// never collapse into each other.
type Outcome struct {
	Reason FailReason `json:"reason,omitempty"` // empty on success
}

// Success is the outcome of a permitted action.
func Success() Outcome {
	return Outcome{}
}

// Failure wraps the reason an action was not permitted.
func Failure(r FailReason) Outcome {
	return Outcome{Reason: r}
}

// OK reports whether the action was permitted.
func (o Outcome) OK() bool {
	return o.Reason == ""
}

// FailReason says why the rules rejected an action. Only some reasons
// carry a player-facing message; mechanical ones like bumping a wall stay
// silent.
type FailReason string

const (
	FailOutOfBounds        FailReason = "out_of_bounds"
	FailNotWalkable        FailReason = "not_walkable"
	FailOccupied           FailReason = "occupied"
	FailInventoryFull      FailReason = "inventory_full"
	FailEmptySlot          FailReason = "empty_slot"
	FailInvalidTarget      FailReason = "invalid_target"
	FailOutOfRange         FailReason = "out_of_range"
	FailTileNotVisible     FailReason = "tile_not_visible"
	FailDropBlocked        FailReason = "drop_blocked"
	FailMissingIngredients FailReason = "missing_ingredients"
	FailGameOver           FailReason = "game_over"
)

// UserMessage returns the log line for reasons the player should read.
// The second return is false for silent reasons.
func (r FailReason) UserMessage() (string, bool) {
	switch r {
	case FailInventoryFull:
		return "Your inventory is full. Cannot add another item.", true
	case FailEmptySlot:
		return "The equipment slot is already empty. Cannot unequip.", true
	case FailOutOfRange:
		return "The target is out of range.", true
	case FailTileNotVisible:
		return "You cannot see that from here.", true
	case FailDropBlocked:
		return "There is no room to drop that here.", true
	case FailMissingIngredients:
		return "You do not have the ingredients for that.", true
	default:
		return "", false
	}
}
