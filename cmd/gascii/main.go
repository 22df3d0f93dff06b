package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/gascii/audio"
	"github.com/lixenwraith/gascii/core"
	"github.com/lixenwraith/gascii/engine"
	"github.com/lixenwraith/gascii/render"
	"github.com/lixenwraith/gascii/terminal"
)

var (
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/gascii.log")
	soundFlag = flag.Bool("sound", false, "Tick when the cursor hits the grid edge")
)

func main() {
	os.Exit(gascii())
}

// gascii returns the process exit code; the log file is closed on every path
func gascii() int {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	exit := func(code int) {
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(code)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(exit); err != nil {
		fmt.Fprintf(os.Stderr, "gascii: %v\n", err)
		return 1
	}
	return 0
}

// run owns the terminal: every return path, panics and termination signals restore it
func run(exit func(int)) (err error) {
	term, err := terminal.New()
	if err != nil {
		if errors.Is(err, terminal.ErrNotTerminal) {
			return fmt.Errorf("%w (run gascii from an interactive terminal)", err)
		}
		return err
	}
	core.SetCrashTerminal(term)
	defer term.Fini()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)
	watchSignals(term, sigCh, exit)

	// Panic Recovery: Ensure terminal is reset even if the session crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	var opts []engine.SessionOption
	if *soundFlag {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without sound)", err)
		} else {
			defer sm.Cleanup()
			opts = append(opts, engine.WithFeedback(sm))
		}
	}

	width, height := term.Size()
	layout := render.NewLayout(width, height)
	logLayout(layout)

	return engine.NewSession(term, layout, opts...).Run()
}

// logLayout records the geometry computed at startup
func logLayout(l render.Layout) {
	log.Printf("terminal %dx%d, grid at (%d,%d), panel at (%d,%d)",
		l.Width, l.Height, l.GridX, l.GridY, l.PanelX, l.PanelY)
}
