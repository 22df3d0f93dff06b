package main

import (
	"log"
	"os"

	"github.com/lixenwraith/gascii/core"
)

// signalExitCode is returned when a termination signal ends the session
const signalExitCode = 1

// watchSignals restores the terminal and exits on the first signal from sigCh
// A closed channel stops the watcher without exiting
func watchSignals(term core.Finalizer, sigCh <-chan os.Signal, exit func(int)) {
	core.Go(func() {
		sig, ok := <-sigCh
		if !ok {
			return
		}
		log.Printf("received %v, restoring terminal", sig)
		term.Fini()
		exit(signalExitCode)
	})
}
