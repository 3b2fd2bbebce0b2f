package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vector-duel/config"
	"github.com/lixenwraith/vector-duel/engine"
	"github.com/lixenwraith/vector-duel/parameter"
	"github.com/lixenwraith/vector-duel/session"
	"github.com/lixenwraith/vector-duel/terminal"
)

var (
	configFlag = flag.String("config", "vector-duel.yaml", "YAML configuration file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 for time based")
	recordFlag = flag.String("record", "", `Record the beam to a WAV file ("auto" names it after the session)`)
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+session.LogDir)
	cpuFlag    = flag.String("cpu", "", "Seats flown by the autopilot: 1, 2 or 12")
	framesFlag = flag.Int("frames", 0, "Run headless for this many frames and exit")
	dumpFlag   = flag.String("write-config", "", "Write the effective configuration to this file and exit")
)

func main() {
	flag.Parse()

	if logFile := session.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	if *dumpFlag != "" {
		if err := cfg.Save(*dumpFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	seats, err := parseSeats(*cpuFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *framesFlag > 0 {
		err = runHeadless(cfg, seats, *framesFlag)
	} else {
		err = run(cfg, seats)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config) {
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *recordFlag != "" {
		cfg.Record.Path = *recordFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
}

// parseSeats reads the -cpu flag as 1-based seat digits
func parseSeats(s string) ([]int, error) {
	var seats []int
	for _, r := range s {
		switch r {
		case '1', '2':
			seats = append(seats, int(r-'1'))
		default:
			return nil, fmt.Errorf("invalid -cpu seat %q", r)
		}
	}
	return seats, nil
}

// runHeadless steps the match without a display, for recordings and soak runs
func runHeadless(cfg *config.Config, seats []int, frames int) error {
	s, err := session.New(cfg, session.Options{Autopilot: seats, Muted: true, Headless: true})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	runErr := s.RunFrames(ctx, frames)
	if err := s.Close(); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	fmt.Printf("%d frames, %d rounds, score %02d-%02d\n", s.Match.Frames(), s.Match.Rounds(),
		s.Match.Score(engine.Player0).Value(), s.Match.Score(engine.Player1).Value())
	return nil
}

func run(cfg *config.Config, seats []int) error {
	keys, err := terminal.NewKeyboard(cfg.Keys, parameter.KeyHoldWindow)
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVECTOR-DUEL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	screen.Clear()

	s, err := session.New(cfg, session.Options{Human: keys, Autopilot: seats, Muted: !cfg.Audio.Enabled})
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("[%s] close: %v", s.ID, err)
		}
	}()

	scope := terminal.NewScope(screen, cfg.Scope.Decay)

	eventChan := make(chan tcell.Event, parameter.EventQueueSize)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(cfg.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				keys.HandleEvent(ev)
			case *tcell.EventResize:
				screen.Sync()
				scope.Resize()
			}

		case <-ticker.C:
			s.Match.Step()
			scope.Draw(s.Tracer.Strokes())
		}
	}
}
