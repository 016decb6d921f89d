package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"

	"github.com/lukaszgryglicki/ndraytrace/internal/ndraytrace"
	"github.com/lukaszgryglicki/ndraytrace/internal/window"
)

func main() {
	ndraytrace.Debug = os.Getenv("DEBUG") != ""
	ndraytrace.Headless = os.Getenv("HEADLESS") != ""
	ndraytrace.Export = os.Getenv("EXPORT") != ""
	ndraytrace.PNG = os.Getenv("PNG") != ""
	ndraytrace.HUD = os.Getenv("HUD") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfgPath := "scenes/config.json"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	} else if _, err := os.Stat(cfgPath); err != nil {
		cfgPath = "" // compiled-in defaults
	}
	cfg, err := ndraytrace.LoadConfig(cfgPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if s := os.Getenv("FRAMES"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			fmt.Printf("Error: FRAMES: %v\n", err)
			os.Exit(1)
		}
		cfg.Frames = n
	}

	if ndraytrace.Export || ndraytrace.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = ndraytrace.Run(ctx, cfg)
		stop()
	} else {
		err = window.Run(cfg)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
