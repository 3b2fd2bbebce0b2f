package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vector-duel/config"
	"github.com/lixenwraith/vector-duel/session"
	"github.com/lixenwraith/vector-duel/window"
)

var (
	configFlag = flag.String("config", "vector-duel.yaml", "YAML configuration file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 for time based")
	recordFlag = flag.String("record", "", `Record the beam to a WAV file ("auto" names it after the session)`)
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+session.LogDir)
	cpuFlag    = flag.Int("cpu", 0, "Seat flown by the autopilot (1 or 2), 0 for none")
)

func main() {
	flag.Parse()

	if logFile := session.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *recordFlag != "" {
		cfg.Record.Path = *recordFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	var seats []int
	switch *cpuFlag {
	case 0:
	case 1, 2:
		seats = []int{*cpuFlag - 1}
	default:
		return fmt.Errorf("invalid -cpu seat %d", *cpuFlag)
	}

	keys, err := window.NewKeyboard(cfg.Keys)
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	s, err := session.New(cfg, session.Options{Human: keys, Autopilot: seats, Muted: !cfg.Audio.Enabled})
	if err != nil {
		return err
	}
	defer s.Close()

	scope := window.NewScope(s.Match, s.Tracer, keys, cfg.Scope.Width, cfg.Scope.Decay)

	ebiten.SetWindowTitle("Vector Duel")
	ebiten.SetWindowSize(cfg.Scope.Width, cfg.Scope.Height)
	ebiten.SetTPS(int(time.Second / cfg.FrameInterval))

	if err := ebiten.RunGame(scope); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
