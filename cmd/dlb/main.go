package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dl100-bridge/pkg/auth"
	"dl100-bridge/pkg/bridge"
	"dl100-bridge/pkg/config"
	"dl100-bridge/pkg/poll"
	"dl100-bridge/pkg/pubsub"
	"dl100-bridge/pkg/telemetry"
	"dl100-bridge/pkg/version"
)

// newDevice is the seam where the industrial protocol client plugs in. The
// bridge itself does not speak EtherNet/IP; deployments link their client
// here, typically from a build-tagged file.
var newDevice func(cfg *config.Config, logger *log.Logger) (poll.Device, error)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		info := version.Info()
		fmt.Printf("dlb version %s, commit %s, built %s\n", info.Version, info.Commit, info.Built)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg == nil {
		return // help was shown
	}

	creds, err := auth.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	agg := telemetry.NewAggregator(nil, telemetry.DefaultConfig())
	agg.Start(ctx)
	defer agg.Stop()

	var dev poll.Device
	if !cfg.Synthetic {
		if newDevice == nil {
			fmt.Fprintf(os.Stderr, "No device client is linked into this build; run with --%s or wire one in\n", config.FlagSynthetic)
			os.Exit(1)
		}
		dev, err = newDevice(cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to device %s:%d: %v\n", cfg.Device.Host, cfg.Device.Port, err)
			os.Exit(1)
		}
	}

	// Conflation sits between the bridge and the wire: the poll worker
	// never blocks on a slow transport, and a replaced frame is counted
	// as discarded.
	sock := pubsub.NewConflating(pubsub.NewPub(ctx, creds), func() {
		agg.Publish(telemetry.NewRecordDiscarded("conflated"))
	})

	b := bridge.New(cfg, logger, sock, dev, agg)
	defer b.Stop()

	// SIGUSR1 toggles the activation gate; polling continues either way.
	toggleCh := make(chan os.Signal, 1)
	signal.Notify(toggleCh, syscall.SIGUSR1)
	go func() {
		for range toggleCh {
			b.ToggleGate()
		}
	}()

	cli := NewCLI(agg, cfg, logger)
	go func() {
		if err := cli.Run(ctx); err != nil {
			logger.Printf("status reporter stopped: %v", err)
		}
	}()

	if err := b.Start(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Bridge failed: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("bridge stopped")
}
