package main

import (
	"fmt"
	"os"

	"github.com/handiism/music-organizer/internal/config"
	"github.com/handiism/music-organizer/internal/tui"
)

func main() {
	settingsPath, _ := config.DefaultPath()
	settings, err := config.Load(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
