// Command solve runs a lattice simulation over puzzle input and prints its
// answers, optionally exporting every generation as images, video or a chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/geostanley/advent-for-code/internal/app"
	"github.com/geostanley/advent-for-code/internal/core"
	"github.com/geostanley/advent-for-code/internal/render"
	_ "github.com/geostanley/advent-for-code/internal/sims/seating"
	_ "github.com/geostanley/advent-for-code/internal/sims/tiles"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("solve: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	run, ok := core.Runners()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.RunnerNames())
	}

	in, err := cfg.OpenInput()
	if err != nil {
		log.Fatal(err)
	}
	out, err := run(in, cfg.Params, cfg.Exports())
	in.Close()
	if err != nil {
		log.Fatalf("%s: %v", cfg.Sim, err)
	}

	for _, a := range out.Answers {
		fmt.Fprintf(os.Stdout, "%s %s: %d\n", cfg.Sim, a.Label, a.Value)
	}

	if cfg.Chart != "" {
		if err := render.WriteChart(cfg.Chart, cfg.Sim, out.Series); err != nil {
			log.Fatalf("chart: %v", err)
		}
		log.Printf("wrote %s", cfg.Chart)
	}
}
