// Command ptratplot draws the ratio distributions written by ptrat as a
// grid of plots.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decibelcooper/diphoton"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <ptrat-output-file>

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("ptratplot: ")
	log.SetFlags(0)

	cfg := diphoton.DefaultConfig()
	var (
		ptEdges = diphoton.EdgesFlag{Edges: cfg.PtEdges}
		mEdges  = diphoton.EdgesFlag{Edges: cfg.MassEdges}

		output  = flag.String("o", "ptrat.png", "output image file")
		cfgFile = flag.String("config", "", "YAML configuration file used to fill the input")
	)
	flag.Var(&ptEdges, "pt-edges", "diphoton pT bin edges used to fill the input")
	flag.Var(&mEdges, "m-edges", "diphoton mass bin edges used to fill the input")
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	if *cfgFile != "" {
		var err error
		cfg, err = diphoton.LoadConfig(*cfgFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	if ptEdges.IsSet() {
		cfg.PtEdges = ptEdges.Edges
	}
	if mEdges.IsSet() {
		cfg.MassEdges = mEdges.Edges
	}
	grid, err := cfg.Grid()
	if err != nil {
		log.Fatal(err)
	}

	hists, err := diphoton.ReadROOT(flag.Arg(0), grid)
	if err != nil {
		log.Fatal(err)
	}

	if err := diphoton.PlotGrid(*output, grid, hists); err != nil {
		log.Fatalf("could not plot: %+v", err)
	}
	log.Printf("Wrote %s", *output)
}
