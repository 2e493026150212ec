package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// command is a player input for an interactive game
type command int

const (
	cmdStep command = iota
	cmdTogglePause
)

// parseCommand maps an input line to a command: an empty line or "s" steps, "p" toggles play/pause
func parseCommand(line string) (command, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "s", "step":
		return cmdStep, true
	case "p", "play", "pause":
		return cmdTogglePause, true
	}
	return 0, false
}

/*
readCommands forwards commands typed on r until r is exhausted or ctx is done.

Scanning happens on its own goroutine since a read from a terminal cannot be interrupted;
that goroutine is abandoned if ctx ends first.
*/
func readCommands(ctx context.Context, r io.Reader, commands chan<- command) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return errors.Wrap(err, "[readCommands] failed to read input")
				default:
					return nil
				}
			}
			cmd, ok := parseCommand(line)
			if !ok {
				continue
			}
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
