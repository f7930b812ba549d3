package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/waterfall/audio"
	"github.com/lixenwraith/waterfall/config"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/core"
	"github.com/lixenwraith/waterfall/physics"
	"github.com/lixenwraith/waterfall/store"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/waterfall.log")
	soundFlag  = flag.Bool("sound", false, "Enable collision chimes and drop sounds")
	urlFlag    = flag.String("url", "", "Fetch text from this URL as the custom source")
	storeFlag  = flag.String("store", "", "Directory for persisted rocks and preferences")
	speedFlag  = flag.Int("speed", 0, "Initial flow speed 1-5 (0 keeps the saved level)")
	statsFlag  = flag.Bool("stats", false, "Print a session summary on exit")
	howtoFlag  = flag.Bool("howto", false, "Print the controls and exit")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 uses the clock)")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256")
)

func main() {
	flag.Parse()

	if *howtoFlag {
		fmt.Print(renderHowto())
		return
	}

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		// Defaults are still usable; report and continue
		fmt.Fprintf(os.Stderr, "waterfall: %v (using defaults)\n", err)
	}
	applyFlags(&cfg)

	applyColorMode(cfg.Display.ColorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashTerminal(screen)

	// Panic Recovery: the crash handler restores the terminal before printing
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()
	screen.Clear()

	sound := audio.NewSoundManager()
	if cfg.Display.Sound {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio: initialization failed, continuing without sound: %v", err)
		} else {
			defer sound.Cleanup()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := uint64(*seedFlag)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	kv := store.NewFileKV(storeDir(cfg.Store.Dir))
	a := newApp(ctx, cfg, screen, kv, sound, seed)

	events := make(chan tcell.Event, constants.EventBufferSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	started := time.Now()
	a.start()
	a.run(events)

	screen.Fini()
	core.SetCrashTerminal(nil)

	if *statsFlag {
		fmt.Print(renderSummary(a.sched.Stats(), time.Since(started)))
	}
}

// applyFlags overrides file values with flags set on the command line
// A valid -speed is written to the preferences store so the app picks it up
func applyFlags(cfg *config.Config) {
	speedSet := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sound":
			cfg.Display.Sound = *soundFlag
		case "url":
			cfg.Text.CustomURL = *urlFlag
		case "store":
			cfg.Store.Dir = *storeFlag
		case "color":
			cfg.Display.ColorMode = *colorFlag
		case "speed":
			speedSet = true
		}
	})

	if speedSet && *speedFlag >= physics.MinSpeedLevel && *speedFlag <= physics.MaxSpeedLevel {
		store.NewPrefs(store.NewFileKV(storeDir(cfg.Store.Dir))).SetSpeedLevel(*speedFlag)
	}
}

// applyColorMode steers tcell's color detection through its environment variables
func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	}
}

// storeDir resolves a relative store directory against the home directory
func storeDir(dir string) string {
	if dir == "" {
		dir = constants.DefaultStoreDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dir
	}
	return filepath.Join(home, dir)
}
