package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

// frame is one rendered step of the game loop
type frame struct {
	model.Frame
	Total    uint32
	Status   string
	Restarts int
	Paused   bool
}

// newGame creates a grid per the configured seed policy
func newGame(config utils.Config, src model.RandomSource) (*model.Grid, error) {
	policy, err := config.SeedPolicy()
	if err != nil {
		return nil, errors.Wrap(err, "[newGame]")
	}

	grid, err := model.NewGrid(config.Width, config.Height, policy, src)
	if err != nil {
		return nil, errors.Wrap(err, "[newGame]")
	}
	if config.AddPatterns {
		grid.AddInterestingPatterns()
	}
	return grid, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Seed: %s | Auto restart: %v | Patterns: %v\n",
		config.Seed, config.AutoRestart, config.AddPatterns)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.Width(), grid.Height(), grid.CountLivingCells())
	if config.Interactive {
		fmt.Println("Enter: step | p + Enter: play/pause")
	}
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// gameStatus labels the grid's state for the status line
func gameStatus(livingCells, stagnantCount int) string {
	switch {
	case livingCells == 0:
		return "Extinct"
	case stagnantCount > 0:
		return fmt.Sprintf("Stagnant (%d)", stagnantCount)
	}
	return "Active"
}

// displayGameStatus shows the current game status
func displayGameStatus(f frame, stats *utils.Stats) {
	density := float64(f.Living) / float64(uint64(f.Width)*uint64(f.Height)) * 100

	status := f.Status
	if f.Paused {
		status += " | Paused"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		f.Generation, f.Living, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs | Restarts: %d\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds(), f.Restarts)
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

/*
runSimulation owns the grid: it publishes a snapshot, waits for the next tick (or a step command
while paused), advances, and repeats until max_generations is reached or ctx is done. Interactive
games start paused, like the play toggle of a browser host. frames is closed on return; commands
may be nil.
*/
func runSimulation(
	ctx context.Context,
	config utils.Config,
	src model.RandomSource,
	commands <-chan command,
	frames chan<- frame,
) error {
	defer close(frames)

	grid, err := newGame(config, src)
	if err != nil {
		return err
	}
	displayGameInfo(config, grid)

	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	var (
		history       = model.NewHistory(0)
		stagnantCount = 0
		restarts      = 0
		paused        = config.Interactive
		total         uint32
	)
	history.Observe(grid.Hash())

loop:
	for {
		living := grid.CountLivingCells()
		f := frame{
			Frame:    grid.Snapshot(),
			Total:    total,
			Status:   gameStatus(living, stagnantCount),
			Restarts: restarts,
			Paused:   paused,
		}

		select {
		case <-ctx.Done():
			return nil
		case frames <- f:
		}

		if config.MaxGenerations > 0 && total >= config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

	wait:
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if !paused {
					break wait
				}
			case cmd := <-commands:
				switch cmd {
				case cmdStep:
					break wait
				case cmdTogglePause:
					paused = !paused
					continue loop
				}
			}
		}

		if restart, reason := checkRestartConditions(living, stagnantCount, config); restart && config.AutoRestart {
			fmt.Printf("Restarting due to %s...\n", reason)
			if grid, err = newGame(config, src); err != nil {
				return err
			}
			history.Reset()
			history.Observe(grid.Hash())
			stagnantCount = 0
			restarts++
			continue
		}

		grid.Advance()
		total++
		if history.Observe(grid.Hash()) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
	}
}

// runRenderer draws every published frame until frames is closed or ctx is done
func runRenderer(ctx context.Context, renderer *model.TerminalRenderer, stats *utils.Stats, frames <-chan frame) error {
	lastFrameTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case f, ok := <-frames:
			if !ok {
				return nil
			}

			frameStart := time.Now()
			stats.Update(f.Total, f.Living, frameStart.Sub(lastFrameTime))
			lastFrameTime = frameStart

			if err := renderer.Clear(); err != nil {
				fmt.Println("Error clearing terminal:", err)
			}
			displayGameStatus(f, stats)
			if err := renderer.Display(f.Frame); err != nil {
				return errors.Wrap(err, "[runRenderer]")
			}
		}
	}
}

// finalReport summarizes the run; the shutdown notice only applies when a signal ended it
func finalReport(interrupted bool, stats *utils.Stats) []string {
	var lines []string
	if interrupted {
		lines = append(lines, "\nShutting down gracefully...")
	}
	return append(lines,
		fmt.Sprintf("Final stats: %d generations in %.1f seconds",
			stats.TotalGenerations, stats.Runtime().Seconds()),
		fmt.Sprintf("Average: %.1f gen/sec, %.1f avg population",
			stats.GenerationsPerSecond, stats.AveragePopulation),
	)
}
