package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/prize-wheel/audio"
	"github.com/lixenwraith/prize-wheel/config"
	"github.com/lixenwraith/prize-wheel/constants"
	"github.com/lixenwraith/prize-wheel/engine"
	"github.com/lixenwraith/prize-wheel/experience"
	"github.com/lixenwraith/prize-wheel/input"
	"github.com/lixenwraith/prize-wheel/render"
	"github.com/lixenwraith/prize-wheel/session"
	"github.com/lixenwraith/prize-wheel/wheel"
)

var (
	variantFlag = flag.String("variant", "surface", "Deployment variant: surface, fixed or desktop")
	rewardFlag  = flag.String("reward", "", "Predefined reward index 0-7 (the rewardId input); invalid values fall back to random")
	configFlag  = flag.String("config", "", "Optional YAML override file for reward copy and spin tuning")
	seedFlag    = flag.Int64("seed", 0, "Random seed for reproducible runs, 0 seeds from the clock")
	muteFlag    = flag.Bool("mute", false, "Disable audio cues")
	logFlag     = flag.String("log", "", "Append degradation logs to this file; empty discards them")
)

func main() {
	flag.Parse()

	mode, err := session.ParseMode(*variantFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	cfg := experience.DefaultConfig(mode)
	if *configFlag != "" {
		overrides, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		applyOverrides(&cfg, overrides)
	}

	// An out-of-range or non-numeric reward id is silently discarded;
	// random selection applies
	if idx, ok := wheel.ParseRewardID(*rewardFlag); ok {
		cfg.Requested = idx
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var cues experience.Cues
	var audioEngine *audio.Engine
	if !*muteFlag {
		var err error
		if audioEngine, err = audio.NewEngine(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		} else {
			cues = audioEngine
			defer audioEngine.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack trace hits
	// stderr, so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nPRIZE-WHEEL CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// The screen owns the terminal, so degradation logs go to the -log
	// file when given and are dropped otherwise
	log.SetOutput(io.Discard)
	if *logFlag != "" {
		logFile, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			log.SetOutput(logFile)
			defer logFile.Close()
		}
	}

	clock := engine.NewMonotonicClock()
	exp := experience.New(cfg, clock, rng, cues)
	if err := exp.Start(); err != nil {
		panic(err)
	}
	defer exp.Teardown()

	width, height := screen.Size()
	orchestrator := render.NewOrchestrator(screen, width, height)

	type rendererDef struct {
		renderer render.Renderer
		priority render.Priority
	}
	for _, def := range []rendererDef{
		{render.NewWheelRenderer(), render.PriorityScene},
		{render.NewReticleRenderer(), render.PriorityReticle},
		{render.NewStatusBarRenderer(), render.PriorityUI},
		{render.NewOverlayRenderer(), render.PriorityOverlay},
	} {
		orchestrator.Register(def.renderer, def.priority)
	}

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if resize, ok := ev.(*tcell.EventResize); ok {
				w, h := resize.Size()
				orchestrator.Resize(w, h)
				continue
			}
			switch input.Map(ev) {
			case input.ActionEnter:
				exp.EnterSession()
			case input.ActionSpin:
				exp.TriggerSpin()
			case input.ActionDismiss:
				exp.Dismiss()
			case input.ActionQuit:
				return
			}

		case <-frameTicker.C:
			exp.Update()
			orchestrator.RenderFrame(exp.Snapshot())
		}
	}
}

// applyOverrides folds the optional YAML config into the variant defaults
func applyOverrides(cfg *experience.Config, overrides *config.Config) {
	if len(overrides.Rewards) > 0 {
		table, err := wheel.NewRewardTable(overrides.Rewards)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg.Rewards = table
	}
	if overrides.Spin.Revolutions > 0 {
		cfg.Spin.Revolutions = overrides.Spin.Revolutions
	}
	if overrides.Spin.RevealDelayMS > 0 {
		cfg.RevealDelay = time.Duration(overrides.Spin.RevealDelayMS) * time.Millisecond
	}
}
