package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/SlashZ6/Pseudocode-Interpreter/internal/host"
)

// cancelOnInterrupt arms a SIGINT handler that calls stdioHost.Cancel so a
// running program stops at its next step/Input poll instead of leaving the
// terminal attached to a runaway script.
func cancelOnInterrupt(stdioHost *host.Stdio) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		stdioHost.Cancel()
	}()
}
