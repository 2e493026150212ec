package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Println("Error loading configuration:", err)
			os.Exit(1)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	// Handle Ctrl+C gracefully
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The game ending on its own also stops the input reader
	gameCtx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	var (
		stats    = utils.NewStats()
		renderer = model.NewTerminalRenderer()
		frames   = make(chan frame)
		rng      = utils.NewRNG(config.RandomSeed)
		commands chan command
	)

	eg, ctx := errgroup.WithContext(gameCtx)
	if config.Interactive {
		commands = make(chan command)
		eg.Go(func() error {
			return readCommands(ctx, os.Stdin, commands)
		})
	}
	eg.Go(func() error {
		defer cancel()
		return runSimulation(ctx, config, rng, commands, frames)
	})
	eg.Go(func() error {
		return runRenderer(ctx, renderer, stats, frames)
	})

	if err = eg.Wait(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	for _, line := range finalReport(sigCtx.Err() != nil, stats) {
		fmt.Println(line)
	}
}
