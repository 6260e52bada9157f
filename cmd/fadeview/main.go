// Package main is a terminal viewer for world generation and edge erosion.
//
// It loads the same YAML data as the game, generates a season and runs the fade
// in a tcell screen, one cell per tile (two columns wide).
//
// Usage:
//
//	go run ./cmd/fadeview [flags]
//
// Flags:
//
//	--data <dir>     Directory that contains data/ (default ".")
//	--seed <n>       Random seed (default: current time)
//	--season <n>     Start season index
//	--speed <x>      Simulation speed multiplier (default 4)
//	--sound          Play a crumble tick for every removed tile
//
// Controls:
//
//	Space    Start/stop the fade
//	N        Generate the next season
//	R        Regenerate the current season with a new seed
//	Q/Esc    Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/resourcerun/pkg/config"
	"github.com/gdamore/tcell/v2"
)

var (
	dataFlag    = flag.String("data", ".", "directory that contains data/")
	seedFlag    = flag.Int64("seed", 0, "random seed (0 = current time)")
	seasonFlag  = flag.Int("season", 0, "start season index")
	speedFlag   = flag.Float64("speed", 4, "simulation speed multiplier")
	soundFlag   = flag.Bool("sound", false, "play a crumble tick for every removed tile")
	verboseFlag = flag.Bool("verbose", false, "log to fadeview.log")
)

const frameInterval = 16 * time.Millisecond

func main() {
	flag.Parse()

	// 终端被 tcell 占用，日志只能写文件
	log.SetOutput(io.Discard)
	if *verboseFlag {
		f, err := os.Create("fadeview.log")
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fadeview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	data, err := config.LoadGameData(os.DirFS(*dataFlag), "data")
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	viewer, err := newViewer(screen, data, seed, *seasonFlag)
	if err != nil {
		return err
	}

	if *soundFlag {
		sound, err := newCrumbleSound()
		if err != nil {
			// 没有声音也能运行
			log.Printf("[FadeView] Audio initialization failed: %v", err)
		} else {
			defer sound.Close()
			viewer.setSound(sound)
		}
	}

	viewer.fade.StartFade()
	loop(screen, viewer, *speedFlag)
	return nil
}

func loop(screen tcell.Screen, viewer *viewer, speed float64) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !viewer.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			viewer.update(dt * speed)
			viewer.draw()
		}
	}
}
