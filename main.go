// Command asciidiagrams renders a diagram description (TOML or JSON)
// into an ASCII box-and-line drawing.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"asciidiagrams/importer"
	"asciidiagrams/render"
)

var (
	input  = kingpin.Arg("input", "Diagram description file (.toml or .json).").Required().String()
	output = kingpin.Arg("output", "Output file; stdout if omitted.").String()

	seedGiven bool
	seed      = kingpin.Flag("seed", "Seed for the routing PRNG, for reproducible output.").
			Action(func(*kingpin.ParseContext) error { seedGiven = true; return nil }).
			Uint64()
	maxTweaks = kingpin.Flag("max-tweaks", "Maximum number of randomized re-routing attempts.").
			Default("100").Int()
)

func main() {
	kingpin.Parse()

	log := logrus.New()
	log.Out = os.Stdout
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}

	res, err := importer.Load(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, w := range res.Warnings {
		log.Warn(w)
	}

	opts := res.Options
	opts.MaxTweaks = *maxTweaks
	if seedGiven {
		opts.Seed = *seed
		opts.HasSeed = true
	}

	rows := render.Render(res.Blocks, res.Edges, opts)

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	for _, row := range rows {
		w.Write(row)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
