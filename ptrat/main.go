// Command ptrat fills the ratio of the two leading photon transverse
// momenta in bins of diphoton transverse momentum and invariant mass.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/decibelcooper/diphoton"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] [root-input-files]...

Without input files, data1516.root and data17.root are read.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("ptrat: ")
	log.SetFlags(0)

	cfg := diphoton.DefaultConfig()
	var (
		ptEdges = diphoton.EdgesFlag{Edges: cfg.PtEdges}
		mEdges  = diphoton.EdgesFlag{Edges: cfg.MassEdges}

		output   = flag.String("o", "ptrat.root", "output ROOT file")
		cfgFile  = flag.String("config", "", "YAML configuration file")
		njobs    = flag.Int("j", 1, "number of input files processed concurrently")
		cpuProf  = flag.Bool("cpuprofile", false, "write a CPU profile to the current directory")
		progress = flag.Int64("progress", cfg.ProgressEvery, "events between progress reports (0 disables)")
	)
	flag.Var(&ptEdges, "pt-edges", "diphoton pT bin edges, comma-separated (inf for an open last bin)")
	flag.Var(&mEdges, "m-edges", "diphoton mass bin edges, comma-separated")
	flag.Usage = printUsage
	flag.Parse()

	if *cpuProf {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
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
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "progress" {
			cfg.ProgressEvery = *progress
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %+v", err)
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"data1516.root", "data17.root"}
	}
	srcs := make([]diphoton.Source, len(inputs))
	for i, fname := range inputs {
		srcs[i] = diphoton.TreeSource{File: fname, Tree: cfg.Tree}
	}

	ana, err := diphoton.RunAll(context.Background(), cfg, srcs, *njobs, log.Default())
	if err != nil {
		log.Fatalf("could not process events: %+v", err)
	}
	log.Printf("%v", ana.Stats)

	if err := diphoton.WriteROOT(*output, ana.Hists); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s", *output)
}
