package main

import (
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tableside/internal/config"
	"github.com/jask/tableside/internal/pos"
	"github.com/jask/tableside/internal/seed"
	"github.com/jask/tableside/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	tz, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Fatalf("timezone %q: %v", cfg.UI.Timezone, err)
	}

	data, err := loadSeed(cfg.Seed)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	// The store is built here and handed down by reference; nothing
	// else may construct one.
	store := pos.NewStore(data.Tables, data.Chefs, tz)
	app := tui.New(store, data.Menu, cfg)

	if os.Getenv("TABLESIDE_DEBUG") != "" {
		f, err := tea.LogToFile("tableside-debug.log", "debug")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
	}

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func loadSeed(sc config.SeedConfig) (seed.Data, error) {
	switch {
	case sc.Path != "":
		return seed.LoadFile(sc.Path)
	case sc.Demo:
		return seed.Demo(sc.Tables, sc.Chefs, sc.MenuItems), nil
	default:
		return seed.Defaults(), nil
	}
}
