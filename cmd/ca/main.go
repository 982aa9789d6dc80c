//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/geostanley/advent-for-code/internal/app"
	"github.com/geostanley/advent-for-code/internal/core"
	_ "github.com/geostanley/advent-for-code/internal/sims/seating"
	_ "github.com/geostanley/advent-for-code/internal/sims/tiles"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	run, ok := core.Runners()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	in, err := cfg.OpenInput()
	if err != nil {
		log.Fatal(err)
	}
	recs := app.NewRecordings()
	_, err = run(in, cfg.Params, recs.Open)
	in.Close()
	if err != nil {
		log.Fatal(err)
	}

	replay, err := recs.Replay(cfg.Sim, cfg.Run)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(replay, cfg.Scale, cfg.FPS, cfg.Changes)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lattice: " + replay.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
