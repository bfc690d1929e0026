package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/loc-idle/audio"
	"github.com/lixenwraith/loc-idle/clock"
	"github.com/lixenwraith/loc-idle/config"
	"github.com/lixenwraith/loc-idle/engine"
	"github.com/lixenwraith/loc-idle/game"
	"github.com/lixenwraith/loc-idle/status"
)

var (
	debugFlag   = flag.Bool("debug", false, "Write diagnostics to logs/loc-idle.log")
	balanceFlag = flag.String("balance", "", "YAML file overriding economy constants")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
	colorFlag   = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	bal, err := config.Load(*balanceFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load balance: %v\n", err)
		return 1
	}
	log.Printf("balance: coder=%s x%s hype=%s x%s price=%s rate=%s",
		bal.InitialCoderCost, bal.CoderCostGrowth, bal.InitialAIHypeCost, bal.AIHypeCostGrowth, bal.BaseLOCPrice, bal.AIHypeRate)

	if err := applyColorMode(*colorFlag); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	crash := crashHandler(screen)
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, game runs silently
		log.Printf("Audio initialization failed: %v", err)
	} else {
		defer sounds.Cleanup()
	}

	g := game.NewGame(bal, clock.RealClock{})
	reg := status.NewRegistry()

	loop := engine.NewLoop(screen, g, sounds, reg)
	loop.SetCrashHandler(crash)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil {
		log.Printf("loop: %v", err)
		code = 1
	}

	st := g.State()
	log.Printf("exit: locs=%s funds=%s coders=%s elapsed=%s metrics=%v",
		st.LOCs.Round(0), st.AvailableFunds.StringFixed(2), st.Coders, st.TotalTime, reg.Values())
	return code
}

// applyColorMode steers tcell's color detection through its environment variables
func applyColorMode(mode string) error {
	switch mode {
	case "auto", "":
		return nil
	case "256":
		return os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		return os.Setenv("COLORTERM", "truecolor")
	default:
		return fmt.Errorf("unknown color mode %q (want auto, truecolor or 256)", mode)
	}
}

// crashHandler restores the terminal, prints the panic with its stack, and exits
func crashHandler(screen tcell.Screen) func(any) {
	return func(r any) {
		screen.Fini()
		log.Printf("crash: %v\n%s", r, debug.Stack())
		fmt.Fprintf(os.Stderr, "\n\x1b[31mLOC IDLE CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}
