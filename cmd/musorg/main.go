package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/music-organizer/internal/config"
	"github.com/handiism/music-organizer/internal/model"
	"github.com/handiism/music-organizer/internal/organize"
	"github.com/handiism/music-organizer/internal/scan"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Command line flags
	var (
		sourceFlag      = flag.String("source", "", "Music folder to organize (overrides config)")
		destFlag        = flag.String("dest", "", "Destination library root (overrides config)")
		configFlag      = flag.String("config", "", "Path to settings file")
		keepIllegalFlag = flag.Bool("keep-illegal-chars", false, "Do not strip illegal characters from artist/album folder names")
		verboseFlag     = flag.Bool("verbose", false, "Show debug logging")
		dryRunFlag      = flag.Bool("dry-run", false, "List matching files without organizing")
	)

	flag.Parse()

	level := slog.LevelWarn
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Load config
	settingsPath := *configFlag
	if settingsPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			settingsPath = p
		}
	}
	settings, err := config.Load(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *sourceFlag != "" {
		settings.MusicFolderPath = *sourceFlag
	}
	if *destFlag != "" {
		settings.DestinationFolderPath = *destFlag
	}
	if *keepIllegalFlag {
		settings.RemoveIllegalChars = false
	}

	if settings.MusicFolderPath == "" || settings.DestinationFolderPath == "" {
		fmt.Println("Music Organizer - Organize music into Artist/Album folders from embedded tags")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  musorg -source <folder> -dest <folder> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: musorg-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *dryRunFlag {
		files, err := scan.Find(settings.MusicFolderPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error scanning: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Found %d songs under %s:\n", len(files), settings.MusicFolderPath)
		for _, f := range files {
			fmt.Println("  " + f.Path)
		}
		return
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	fmt.Println("🎵 Music Organizer")
	fmt.Println()

	events := make(chan organize.Event)
	org := organize.New(settings, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return org.Run(ctx, events) })

	var bar *progressbar.ProgressBar
	for ev := range events {
		switch ev := ev.(type) {
		case organize.CountEvent:
			fmt.Printf("Found %d songs\n\n", ev.Total)
			if ev.Total > 0 {
				bar = progressbar.Default(100, "organizing")
			}
		case organize.ProgressEvent:
			if bar != nil {
				_ = bar.Set(ev.Percent)
			}
		case organize.NoticeEvent:
			fmt.Println(ev.Message)
		case organize.DoneEvent:
			if bar != nil {
				_ = bar.Finish()
			}
			fmt.Println()
			printResult(ev.Result)
		}
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nOrganization cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printResult(result *model.RunResult) {
	if !result.HasIssues() {
		fmt.Println("✨ Complete! All songs organized.")
		return
	}

	fmt.Printf("✨ Complete with %d error(s) and %d skipped file(s)\n",
		len(result.ErrorFiles), len(result.ReplaceSkipFiles))

	if len(result.ErrorFiles) > 0 {
		fmt.Println()
		fmt.Println("Files with errors:")
		for _, f := range result.ErrorFiles {
			fmt.Printf("  ❌ %s — %s\n", f.FileName, f.Err)
		}
	}

	if len(result.ReplaceSkipFiles) > 0 {
		fmt.Println()
		fmt.Println("Files already in the destination:")
		for _, f := range result.ReplaceSkipFiles {
			fmt.Printf("  ⚠️  %s → %s\n", f.FileName, f.NewLocation)
		}
	}
}
