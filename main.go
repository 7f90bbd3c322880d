package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/olivierh59500/particle-playground/internal/config"
)

func main() {
	cfg := config.Default()
	var opts config.Options
	flags := config.BindFlags(flag.CommandLine, &cfg, &opts)
	flag.Parse()
	if err := flags.Finish(); err != nil {
		fatal(opts, err)
	}

	logger := log.New(io.Discard, "", 0)
	if opts.Verbose {
		logger = log.New(os.Stderr, "playground: ", log.LstdFlags)
	}

	sim := NewSimulation(cfg, logger)
	defer sim.Close()

	// Set up Ebitengine game
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetVsyncEnabled(true)

	// Run the game loop
	if err := ebiten.RunGame(sim); err != nil && !errors.Is(err, ebiten.Termination) {
		sim.Close()
		fatal(opts, err)
	}
}

func fatal(opts config.Options, err error) {
	if opts.Dialogs {
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
	}
	log.Fatal(err)
}
