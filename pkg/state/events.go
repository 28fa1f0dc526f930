package state

import "fmt"

// LogLimit bounds how many events the game log retains. Older events fall
// off the front; persistence and display only ever need the recent tail.
const LogLimit = 200

// EventKind classifies a log event so clients can style or filter it
// without parsing the text.
type EventKind string

const (
	EventPlain    EventKind = "plain"
	EventLore     EventKind = "lore"
	EventDebug    EventKind = "debug"
	EventCombat   EventKind = "combat"
	EventDeath    EventKind = "death"
	EventHeal     EventKind = "heal"
	EventItem     EventKind = "item"
	EventBuff     EventKind = "buff"
	EventOverdose EventKind = "overdose"
	EventStairs   EventKind = "stairs"
	EventLook     EventKind = "look"
	EventLevelUp  EventKind = "level_up"
	EventWarning  EventKind = "warning"
)

// Event is one entry in the game log: something the engine wants the
// player (or a debugging developer) to read.
type Event struct {
	Kind  EventKind `json:"kind"`
	Text  string    `json:"text"`
	Round int       `json:"round"`
}

// Log is the bounded event log of a session. Engine correctness never
// depends on it; it exists for display and diagnostics.
type Log struct {
	ShowDebug bool    `json:"show_debug,omitempty"` // include debug events in Visible
	Events    []Event `json:"events"`

	// Total counts every event ever pushed, including ones the ring
	// has dropped. Callers use it as a mark for Since.
	Total int `json:"total"`
}

func NewLog(showDebug bool) *Log {
	return &Log{ShowDebug: showDebug, Events: make([]Event, 0, LogLimit)}
}

func (l *Log) push(e Event) {
	l.Events = append(l.Events, e)
	if len(l.Events) > LogLimit {
		l.Events = l.Events[len(l.Events)-LogLimit:]
	}
	l.Total++
}

// Visible returns the events meant for display, dropping debug entries
// unless the log was opened with them enabled.
func (l *Log) Visible() []Event {
	return l.filterDebug(l.Events)
}

// Since returns the displayable events pushed after the log's Total
// stood at the given mark.
func (l *Log) Since(mark int) []Event {
	added := max(0, min(l.Total-mark, len(l.Events)))
	return l.filterDebug(l.Events[len(l.Events)-added:])
}

func (l *Log) filterDebug(events []Event) []Event {
	if l.ShowDebug {
		return events
	}
	visible := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Kind != EventDebug {
			visible = append(visible, e)
		}
	}
	return visible
}

// Tail returns up to n of the most recent displayable events.
func (l *Log) Tail(n int) []Event {
	visible := l.Visible()
	if len(visible) > n {
		visible = visible[len(visible)-n:]
	}
	return visible
}

// event appends a formatted entry stamped with the current round.
func (gs *GameState) event(kind EventKind, format string, args ...any) {
	gs.Log.push(Event{Kind: kind, Text: fmt.Sprintf(format, args...), Round: gs.Round})
}

// debugf appends a debug entry. These are filtered from normal display.
func (gs *GameState) debugf(format string, args ...any) {
	gs.event(EventDebug, format, args...)
}

// printLore writes the opening lore block to the log.
func (gs *GameState) printLore() {
	gs.event(EventPlain, "It is written in the books of old:")
	gs.event(EventLore, "..The depths are like an anthill.")
	gs.event(EventLore, "..Dangerous. Ever-twisting. Dark.")
	gs.event(EventLore, "..Those who venture into this forsaken place")
	gs.event(EventLore, "..place must truly be mad.")
	gs.event(EventLore, "..And if they aren't, the anthill will make them.")
	gs.event(EventLore, "..May you find what you are looking for.")
}
