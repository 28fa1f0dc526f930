package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anthill-game/anthill/pkg/dice"
	"github.com/anthill-game/anthill/pkg/geom"
)

// runCommand executes a slash command typed at the prompt. These are the
// debug surface; most of them also push debug events that only show in
// the log when the game was started with -debug.
func (m ConsoleUI) runCommand(input string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(strings.TrimPrefix(input, "/"))
	if len(fields) == 0 {
		return m, nil
	}

	switch fields[0] {
	case "help":
		m.showHelp = true

	case "give":
		if len(fields) != 2 {
			m.statusMsg = "usage: /give <item_def>"
			break
		}
		out, err := m.gs.GiveItem(fields[1])
		if err != nil {
			m.statusMsg = err.Error()
			break
		}
		if !out.OK() {
			m.statusMsg = fmt.Sprintf("Cannot give: %s.", out.Reason)
			break
		}
		m.statusMsg = fmt.Sprintf("Granted %s.", m.itemDefs.DisplayName(fields[1]))

	case "maxstats":
		m.gs.MaxStats()
		m.statusMsg = "Stats maxed."

	case "reveal":
		m.gs.RevealMap()
		m.statusMsg = "Level revealed."

	case "teleport":
		if len(fields) != 3 {
			m.statusMsg = "usage: /teleport <x> <y>"
			break
		}
		x, errX := strconv.Atoi(fields[1])
		y, errY := strconv.Atoi(fields[2])
		if errX != nil || errY != nil {
			m.statusMsg = "usage: /teleport <x> <y>"
			break
		}
		out, err := m.gs.Teleport(geom.Pt(x, y))
		if err != nil {
			m.statusMsg = err.Error()
			break
		}
		if !out.OK() {
			m.statusMsg = fmt.Sprintf("Cannot teleport there: %s.", out.Reason)
			break
		}
		m.statusMsg = fmt.Sprintf("Teleported to %d,%d.", x, y)

	case "roll":
		if len(fields) != 2 {
			m.statusMsg = "usage: /roll <dice> (2d6, 1d20+3, ...)"
			break
		}
		r, err := dice.ParseRoll(fields[1])
		if err != nil {
			m.statusMsg = err.Error()
			break
		}
		m.statusMsg = fmt.Sprintf("%s rolled %d.", r, m.gs.Roll(r))

	case "check":
		if len(fields) != 3 {
			m.statusMsg = "usage: /check <dice> <difficulty>"
			break
		}
		r, err := dice.ParseRoll(fields[1])
		if err != nil {
			m.statusMsg = err.Error()
			break
		}
		d, err := strconv.Atoi(fields[2])
		if err != nil {
			m.statusMsg = "usage: /check <dice> <difficulty>"
			break
		}
		if m.gs.ResolveCheck(dice.NewCheck(r).WithDifficulty(d)) {
			m.statusMsg = fmt.Sprintf("%s vs %d: passed.", r, d)
		} else {
			m.statusMsg = fmt.Sprintf("%s vs %d: failed.", r, d)
		}

	case "stats":
		m.showStats = true

	case "noclip":
		if m.gs.ToggleNoClip() {
			m.statusMsg = "No-clip on."
		} else {
			m.statusMsg = "No-clip off."
		}

	case "god":
		if m.gs.ToggleGod() {
			m.statusMsg = "God mode on."
		} else {
			m.statusMsg = "God mode off."
		}

	case "seed":
		seed := strconv.FormatUint(m.gs.Seed, 10)
		if err := clipboard.WriteAll(seed); err != nil {
			m.statusMsg = "Seed " + seed
		} else {
			m.statusMsg = "Seed " + seed + " copied to clipboard."
		}

	case "quit":
		m.showQuitModal = true

	default:
		m.statusMsg = fmt.Sprintf("Unknown command %q. Try /help.", fields[0])
	}

	m.writeLogContent()
	return m, nil
}
