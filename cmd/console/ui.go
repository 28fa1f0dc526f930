package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/item"
	"github.com/anthill-game/anthill/pkg/state"
	"github.com/anthill-game/anthill/pkg/world"
)

// ConsoleUI is the BubbleTea model that runs the terminal client. The
// engine lives in-process: every keypress resolves an action directly
// and the next frame is drawn from the updated state.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	gs       *state.GameState
	itemDefs item.DefSet

	logViewport viewport.Model
	command     textinput.Model
	ready       bool
	width       int
	height      int

	// One-line feedback under the log, cleared by the next action.
	statusMsg string

	// Modal state
	showInventory  bool
	selectedItem   int
	showCrafting   bool
	selectedRecipe int
	showHelp       bool
	showStats      bool
	showQuitModal  bool
	showGameOver   bool

	// Command input state
	commandMode bool
}

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // dim gray

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	terrainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	exploredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	hpHealthyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true)
	hpHurtStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	hpCriticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")). // bright yellow
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)
)

// glyphPalette maps the color names carried by defs and actors to
// terminal colors. Unknown names fall back to the plain terrain style.
var glyphPalette = map[string]lipgloss.Style{
	"yellow":      lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	"gray":        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	"green":       lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	"light_green": lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
	"red":         lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	"blue":        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	"purple":      lipgloss.NewStyle().Foreground(lipgloss.Color("177")),
	"brown":       lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	"white":       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
}

// eventStyles colors log lines by event kind.
var eventStyles = map[state.EventKind]lipgloss.Style{
	state.EventPlain:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	state.EventLore:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Italic(true),
	state.EventDebug:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	state.EventCombat:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	state.EventDeath:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	state.EventHeal:     lipgloss.NewStyle().Foreground(lipgloss.Color("84")),
	state.EventItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	state.EventBuff:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	state.EventOverdose: lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	state.EventStairs:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	state.EventLook:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	state.EventLevelUp:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	state.EventWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
}

func glyphStyle(color string) lipgloss.Style {
	if s, ok := glyphPalette[color]; ok {
		return s
	}
	return terrainStyle
}

// NewConsoleUI creates the model around a running game.
func NewConsoleUI(gs *state.GameState, itemDefs item.DefSet) ConsoleUI {
	vp := viewport.New(80, 8)

	cmd := textinput.New()
	cmd.Prompt = "/"
	cmd.Placeholder = "help"
	cmd.CharLimit = 120

	return ConsoleUI{
		gs:          gs,
		itemDefs:    itemDefs,
		logViewport: vp,
		command:     cmd,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return nil
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height

		// Map and status bar have fixed heights; the log gets the rest.
		logHeight := m.height - world.Height - 2
		if logHeight < 3 {
			logHeight = 3
		}
		m.logViewport.Width = m.width
		m.logViewport.Height = logHeight
		m.command.Width = m.width - 4
		m.writeLogContent()
		m.ready = true
		return m, nil
	}

	switch {
	case m.showGameOver:
		return m.updateGameOverModal(msg)
	case m.showQuitModal:
		return m.updateQuitModal(msg)
	case m.showHelp:
		return m.updateHelpModal(msg)
	case m.showStats:
		return m.updateStatsModal(msg)
	case m.showInventory:
		return m.updateInventoryModal(msg)
	case m.showCrafting:
		return m.updateCraftingModal(msg)
	case m.commandMode:
		return m.updateCommandMode(msg)
	}

	var vpCmd tea.Cmd

	switch msg := msg.(type) {
	case tea.MouseMsg:
		// Wheel scrolling over the message log.
		m.logViewport, vpCmd = m.logViewport.Update(msg)
		return m, vpCmd

	case tea.KeyMsg:
		if m.gs.Cursor != nil {
			return m.updateCursorKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.showQuitModal = true
		case "up", "k":
			m.step(geom.Up)
		case "down", "j":
			m.step(geom.Down)
		case "left", "h":
			m.step(geom.Left)
		case "right", "l":
			m.step(geom.Right)
		case " ", "space", ".":
			m.do(state.Action{Kind: state.ActionWait})
		case "i":
			m.showInventory = true
			m.selectedItem = 0
		case "c":
			m.showCrafting = true
			m.selectedRecipe = 0
		case "x":
			m.do(state.Action{Kind: state.ActionLook})
		case "f":
			m.do(state.Action{Kind: state.ActionRangedAttack})
		case "?":
			m.showHelp = true
		case "/":
			m.commandMode = true
			m.statusMsg = ""
			m.command.SetValue("")
			return m, m.command.Focus()
		case "pgup", "pgdown":
			m.logViewport, vpCmd = m.logViewport.Update(msg)
			return m, vpCmd
		}
		return m, nil
	}

	m.logViewport, vpCmd = m.logViewport.Update(msg)
	return m, vpCmd
}

// step resolves a move in the given direction.
func (m *ConsoleUI) step(dir geom.Direction) {
	d := dir
	m.do(state.Action{Kind: state.ActionMove, Direction: &d})
}

// do resolves one action and refreshes everything derived from the
// state. Rule-level failures already speak through the log; only hard
// engine errors reach the status line.
func (m *ConsoleUI) do(a state.Action) {
	m.statusMsg = ""
	if _, err := m.gs.Resolve(a); err != nil {
		m.statusMsg = err.Error()
	}
	m.writeLogContent()
	if m.gs.GameOver {
		m.showGameOver = true
	}
}

func (m ConsoleUI) updateCursorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.cursorStep(geom.Up)
	case "down", "j":
		m.cursorStep(geom.Down)
	case "left", "h":
		m.cursorStep(geom.Left)
	case "right", "l":
		m.cursorStep(geom.Right)
	case "enter":
		m.do(state.Action{Kind: state.ActionCursorConfirm})
	case "esc":
		m.do(state.Action{Kind: state.ActionCursorCancel})
	}
	return m, nil
}

func (m *ConsoleUI) cursorStep(dir geom.Direction) {
	d := dir
	m.do(state.Action{Kind: state.ActionCursorMove, Direction: &d})
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y", "enter", "ctrl+c":
			return m, tea.Quit
		case "n", "N", "esc":
			m.showQuitModal = false
		}
	}
	return m, nil
}

func (m ConsoleUI) updateGameOverModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc", "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ConsoleUI) updateHelpModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.showHelp = false
	}
	return m, nil
}

func (m ConsoleUI) updateStatsModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.showStats = false
	}
	return m, nil
}

func (m ConsoleUI) updateInventoryModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	inv := m.gs.Player.Inventory
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "i":
		m.showInventory = false
	case "up", "k":
		if m.selectedItem > 0 {
			m.selectedItem--
		}
	case "down", "j":
		if m.selectedItem < len(inv)-1 {
			m.selectedItem++
		}
	case "enter":
		if m.selectedItem < len(inv) {
			id := inv[m.selectedItem]
			m.showInventory = false
			m.do(state.Action{Kind: state.ActionUseItem, ItemID: &id})
		}
	case "d":
		if m.selectedItem < len(inv) {
			id := inv[m.selectedItem]
			m.showInventory = false
			m.do(state.Action{Kind: state.ActionDropItem, ItemID: &id})
		}
	case "w":
		m.showInventory = false
		m.do(state.Action{Kind: state.ActionUnequipWeapon})
	case "a":
		m.showInventory = false
		m.do(state.Action{Kind: state.ActionUnequipArmor})
	}
	return m, nil
}

func (m ConsoleUI) updateCraftingModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "c":
		m.showCrafting = false
	case "up", "k":
		if m.selectedRecipe > 0 {
			m.selectedRecipe--
		}
	case "down", "j":
		if m.selectedRecipe < len(item.Recipes)-1 {
			m.selectedRecipe++
		}
	case "enter":
		if m.selectedRecipe < len(item.Recipes) {
			name := item.Recipes[m.selectedRecipe].Name
			m.showCrafting = false
			m.do(state.Action{Kind: state.ActionCraft, Recipe: name})
		}
	}
	return m, nil
}

func (m ConsoleUI) updateCommandMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.commandMode = false
			m.command.Blur()
			return m, nil
		case "enter":
			input := strings.TrimSpace(m.command.Value())
			m.commandMode = false
			m.command.Blur()
			return m.runCommand(input)
		}
	}

	var cmd tea.Cmd
	m.command, cmd = m.command.Update(msg)
	return m, cmd
}

// writeLogContent rebuilds the log pane from the event ring, wrapped to
// the current viewport width.
func (m *ConsoleUI) writeLogContent() {
	width := m.logViewport.Width - 2
	if width < 20 {
		width = 20
	}

	var content strings.Builder
	for _, e := range m.gs.Log.Visible() {
		line := wordwrap.String(e.Text, width)
		if style, ok := eventStyles[e.Kind]; ok {
			line = style.Render(line)
		}
		content.WriteString(line)
		content.WriteByte('\n')
	}
	m.logViewport.SetContent(content.String())
	m.logViewport.GotoBottom()
}

// itemName resolves an instance id to its display name.
func (m ConsoleUI) itemName(id item.ID) string {
	defID, err := m.gs.Items.DefID(id)
	if err != nil {
		return fmt.Sprintf("item #%d", id)
	}
	return m.itemDefs.DisplayName(defID)
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	if m.showGameOver {
		return m.renderGameOverModal()
	}
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if m.showHelp {
		return m.renderHelpModal()
	}
	if m.showStats {
		return m.renderStatsModal()
	}
	if m.showInventory {
		return m.renderInventoryModal()
	}
	if m.showCrafting {
		return m.renderCraftingModal()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderMap(),
		m.renderStatusBar(),
		m.logViewport.View(),
		m.renderInputLine(),
	)
}

// renderMap draws the current level one styled rune at a time. Tiles the
// player has seen but cannot see now are dimmed; actors and loose items
// only show inside the field of view.
func (m ConsoleUI) renderMap() string {
	lv := m.gs.CurrentLevel()
	w := m.gs.CurrentWorld()

	type cell struct {
		glyph string
		style lipgloss.Style
	}
	overlay := make(map[geom.Point]cell)
	for _, s := range lv.Sprites {
		if w.At(s.Pos).Visible {
			overlay[s.Pos] = cell{s.Glyph, glyphStyle(s.Color)}
		}
	}
	for _, n := range lv.NPCs {
		if w.At(n.Pos).Visible {
			overlay[n.Pos] = cell{n.Glyph, glyphStyle(n.Color)}
		}
	}
	pc := m.gs.Player
	overlay[pc.Pos] = cell{pc.Glyph, glyphStyle(pc.Color)}

	var b strings.Builder
	for y := 0; y < w.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var row strings.Builder
		for x := 0; x < w.Width; x++ {
			p := geom.Pt(x, y)
			t := w.At(p)

			glyph, style := " ", exploredStyle
			switch {
			case t.Visible:
				if c, ok := overlay[p]; ok {
					glyph, style = c.glyph, c.style
				} else {
					glyph, style = string(t.Kind.Glyph()), terrainStyle
				}
			case t.Explored:
				glyph, style = string(t.Kind.Glyph()), exploredStyle
			}
			if m.gs.Cursor != nil && m.gs.Cursor.Pos == p {
				style = style.Reverse(true)
			}
			row.WriteString(style.Render(glyph))
		}
		line := row.String()
		if m.width > 0 && m.width < w.Width {
			line = truncate.String(line, uint(m.width))
		}
		b.WriteString(line)
	}
	return b.String()
}

func (m ConsoleUI) renderStatusBar() string {
	pc := m.gs.Player

	hpStyle := hpHealthyStyle
	switch {
	case pc.Stats.HP*4 <= pc.Stats.HPMax:
		hpStyle = hpCriticalStyle
	case pc.Stats.HP*2 <= pc.Stats.HPMax:
		hpStyle = hpHurtStyle
	}

	parts := []string{
		hpStyle.Render(fmt.Sprintf("HP %d/%d", pc.Stats.HP, pc.Stats.HPMax)),
		fmt.Sprintf("Lvl %d", pc.Stats.Level),
		fmt.Sprintf("XP %d", pc.Stats.XP),
		fmt.Sprintf("Depth %d", m.gs.Depth),
		fmt.Sprintf("Round %d", m.gs.Round),
	}
	if m.gs.God {
		parts = append(parts, badgeStyle.Render("GOD"))
	}
	if m.gs.NoClip {
		parts = append(parts, badgeStyle.Render("NOCLIP"))
	}
	if m.gs.Cursor != nil {
		mode := "Look"
		if m.gs.Cursor.Mode == state.CursorRanged {
			mode = "Fire"
		}
		parts = append(parts, promptStyle.Render(
			fmt.Sprintf("%s %d,%d", mode, m.gs.Cursor.Pos.X, m.gs.Cursor.Pos.Y)))
	}

	return " " + strings.Join(parts, hintStyle.Render(" | "))
}

func (m ConsoleUI) renderInputLine() string {
	if m.commandMode {
		return " " + m.command.View()
	}
	if m.statusMsg != "" {
		return " " + errorStyle.Render(m.statusMsg)
	}
	if m.gs.Cursor != nil {
		return " " + hintStyle.Render("arrows move cursor | enter confirm | esc cancel")
	}
	return " " + hintStyle.Render("arrows move | space wait | i inventory | c craft | x look | f fire | ? help | / command | esc quit")
}

func (m ConsoleUI) placeModal(content string) string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	modal := modalStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderQuitModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Abandon this run? The dungeon keeps the score.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to keep playing"))
	return m.placeModal(content.String())
}

func (m ConsoleUI) renderGameOverModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("You Have Died"))
	content.WriteString("\n\n")
	fmt.Fprintf(&content, "Slain after %d rounds at depth %d.\n", m.gs.Round, m.gs.Depth)
	fmt.Fprintf(&content, "Seed %d", m.gs.Seed)
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Enter to exit"))
	return m.placeModal(content.String())
}

func (m ConsoleUI) renderInventoryModal() string {
	pc := m.gs.Player

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Inventory"))
	content.WriteString("\n\n")

	wielding := "nothing"
	if pc.Weapon != nil {
		wielding = m.itemName(*pc.Weapon)
	}
	wearing := "nothing"
	if pc.Armor != nil {
		wearing = m.itemName(*pc.Armor)
	}
	fmt.Fprintf(&content, "Wielding: %s\n", wielding)
	fmt.Fprintf(&content, "Wearing:  %s\n\n", wearing)

	if len(pc.Inventory) == 0 {
		content.WriteString(hintStyle.Render("Nothing carried.") + "\n")
	}
	for i, id := range pc.Inventory {
		line := fmt.Sprintf("%c) %s", 'a'+i, m.itemName(id))
		if i == m.selectedItem {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		content.WriteString(line + "\n")
	}

	content.WriteString("\n")
	content.WriteString(hintStyle.Render("enter use | d drop | w unequip weapon | a unequip armor | esc close"))
	return m.placeModal(content.String())
}

func (m ConsoleUI) renderCraftingModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Crafting"))
	content.WriteString("\n\n")

	for i, r := range item.Recipes {
		counts := make(map[string]int)
		order := make([]string, 0, len(r.Inputs))
		for _, in := range r.Inputs {
			if counts[in] == 0 {
				order = append(order, in)
			}
			counts[in]++
		}
		ingredients := make([]string, 0, len(order))
		for _, in := range order {
			ingredients = append(ingredients, fmt.Sprintf("%dx %s", counts[in], m.itemDefs.DisplayName(in)))
		}

		line := fmt.Sprintf("%s: %s -> %s", r.Name, strings.Join(ingredients, " + "), m.itemDefs.DisplayName(r.Output))
		if i == m.selectedRecipe {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		content.WriteString(line + "\n")
	}

	content.WriteString("\n")
	content.WriteString(hintStyle.Render("enter craft | esc close"))
	return m.placeModal(content.String())
}

func (m ConsoleUI) renderStatsModal() string {
	pc := m.gs.Player

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render(pc.Name))
	content.WriteString("\n\n")
	fmt.Fprintf(&content, "Level %d, %d XP (next at %d)\n", pc.Stats.Level, pc.Stats.XP, pc.Stats.Level*100)
	fmt.Fprintf(&content, "HP %d/%d\n\n", pc.Stats.HP, pc.Stats.HPMax)
	fmt.Fprintf(&content, "Strength   %d (attack bonus %+d)\n", pc.Stats.Strength, pc.AttackBonus())
	fmt.Fprintf(&content, "Dexterity  %d (dodge %d%%)\n", pc.EffectiveDexterity(), pc.DodgeChance())
	fmt.Fprintf(&content, "Vitality   %d\n", pc.Stats.Vitality)
	fmt.Fprintf(&content, "Perception %d\n\n", pc.Stats.Perception)

	if pc.Weapon != nil {
		name := m.itemName(*pc.Weapon)
		if defID, err := m.gs.Items.DefID(*pc.Weapon); err == nil {
			if def, derr := m.itemDefs.Get(defID); derr == nil && def.Weapon != nil {
				name = fmt.Sprintf("%s (%s)", name, def.Weapon.Damage)
			}
		}
		fmt.Fprintf(&content, "Wielding: %s\n", name)
	}
	if pc.Armor != nil {
		name := m.itemName(*pc.Armor)
		if defID, err := m.gs.Items.DefID(*pc.Armor); err == nil {
			if def, derr := m.itemDefs.Get(defID); derr == nil && def.Armor != nil {
				name = fmt.Sprintf("%s (mitigation %d)", name, def.Armor.EffectiveMitigation())
			}
		}
		fmt.Fprintf(&content, "Wearing: %s\n", name)
	}

	if len(pc.Buffs) > 0 {
		content.WriteString("\nEffects:\n")
		for _, b := range pc.Buffs {
			fmt.Fprintf(&content, "  %s %+d, %d rounds left\n", b.Kind, b.Amount, b.Remaining)
		}
	}

	content.WriteString("\n")
	content.WriteString(promptStyle.Render("Press any key to close"))
	return m.placeModal(content.String())
}

func (m ConsoleUI) renderHelpModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("ANTHILL"))
	content.WriteString("\n\n")
	content.WriteString("Movement\n")
	content.WriteString("  arrows / hjkl   move or attack\n")
	content.WriteString("  space or .      wait one round\n\n")
	content.WriteString("Actions\n")
	content.WriteString("  i               inventory\n")
	content.WriteString("  c               crafting\n")
	content.WriteString("  x               look around\n")
	content.WriteString("  f               fire ranged weapon\n")
	content.WriteString("  enter / esc     confirm / cancel targeting\n\n")
	content.WriteString("Commands\n")
	content.WriteString("  /give <def>     grant an item\n")
	content.WriteString("  /maxstats       max out the stat sheet\n")
	content.WriteString("  /reveal         reveal the level map\n")
	content.WriteString("  /teleport x y   jump to a tile\n")
	content.WriteString("  /roll 2d6+1     roll dice\n")
	content.WriteString("  /check 1d20 12  roll against a difficulty\n")
	content.WriteString("  /stats          character sheet\n")
	content.WriteString("  /noclip /god    toggle cheats\n")
	content.WriteString("  /seed           copy the world seed\n")
	content.WriteString("  /quit           leave the game\n")
	content.WriteString("\n")
	content.WriteString(promptStyle.Render("Press any key to close"))
	return m.placeModal(content.String())
}
