package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anthill-game/anthill/internal/storage"
	"github.com/anthill-game/anthill/pkg/state"
)

func main() {
	dataDir := flag.String("data", getEnv("DATA_DIR", "./data"), "directory holding item, NPC and level files")
	seed := flag.Uint64("seed", 0, "world seed; 0 picks one at random")
	debug := flag.Bool("debug", false, "show debug events in the message log")
	flag.Parse()

	itemDefs, err := storage.LoadItemDefs(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load item definitions: %v\n", err)
		os.Exit(1)
	}
	if err := itemDefs.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid item definitions: %v\n", err)
		os.Exit(1)
	}

	npcDefs, err := storage.LoadNPCDefs(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load NPC definitions: %v\n", err)
		os.Exit(1)
	}
	if err := npcDefs.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid NPC definitions: %v\n", err)
		os.Exit(1)
	}

	town, err := storage.LoadLevelData(*dataDir, "town")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load town level: %v\n", err)
		os.Exit(1)
	}
	if err := town.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid town level: %v\n", err)
		os.Exit(1)
	}

	gs, err := state.NewGameState(state.Config{
		Seed:      *seed,
		ItemDefs:  itemDefs,
		NPCDefs:   npcDefs,
		Town:      town,
		ShowDebug: *debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewConsoleUI(gs, itemDefs),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
