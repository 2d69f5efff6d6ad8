// Command sawmc runs the 2D lattice polymer Monte Carlo workflow:
// seed a straight chain, advance it with the SAW move engine, sample
// observables on a fixed cadence, and write traj.xyz plus a CSV series.
//
// Parameters come from flags, optionally overlaid on a YAML config file
// (-config); explicit flags win over file values.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ndehigampala97/sawmc/chain"
	"github.com/ndehigampala97/sawmc/export"
	"github.com/ndehigampala97/sawmc/hp"
	"github.com/ndehigampala97/sawmc/observe"
	"github.com/ndehigampala97/sawmc/saw"
)

func main() {
	cfg, err := resolveConfig(os.Args[1:])
	if err != nil {
		fatal(err)
	}
	if err := run(cfg); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "sawmc: %v\n", err)
	os.Exit(1)
}

// resolveConfig merges defaults, an optional YAML file, and explicit
// flags, in that order of increasing precedence.
func resolveConfig(args []string) (runConfig, error) {
	def := defaultConfig()

	fs := flag.NewFlagSet("sawmc", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional YAML config file; explicit flags override it")
	n := fs.Int("n", def.ChainLength, "chain length (beads, >= 4)")
	steps := fs.Int("steps", def.Steps, "total Monte Carlo steps")
	sampleEvery := fs.Int("sample-every", def.SampleEvery, "steps between observable samples and trajectory frames")
	seed := fs.Int64("seed", def.Seed, "random seed (0 uses a fixed default stream)")
	endW := fs.Float64("end-weight", def.EndWeight, "relative weight of end moves")
	cornerW := fs.Float64("corner-weight", def.CornerW, "relative weight of corner flips")
	crankW := fs.Float64("crank-weight", def.CrankW, "relative weight of crankshaft moves")
	hpSeq := fs.String("hp", def.HPSequence, "HP sequence (e.g. HPPHHP); empty runs the athermal SAW")
	kt := fs.Float64("kt", def.KT, "temperature kT for Metropolis acceptance (HP runs only)")
	traj := fs.String("traj", def.TrajPath, "trajectory output path; empty disables XYZ output")
	csvPath := fs.String("csv", def.CSVPath, "observables CSV path; empty disables CSV output")
	printEvery := fs.Int("print-every", def.PrintEvery, "steps between progress lines; 0 disables")

	if err := fs.Parse(args); err != nil {
		return runConfig{}, err
	}

	cfg := def
	if *configPath != "" {
		if err := loadConfigFile(*configPath, &cfg); err != nil {
			return runConfig{}, err
		}
	}

	// Explicit flags win over file values.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.ChainLength = *n
		case "steps":
			cfg.Steps = *steps
		case "sample-every":
			cfg.SampleEvery = *sampleEvery
		case "seed":
			cfg.Seed = *seed
		case "end-weight":
			cfg.EndWeight = *endW
		case "corner-weight":
			cfg.CornerW = *cornerW
		case "crank-weight":
			cfg.CrankW = *crankW
		case "hp":
			cfg.HPSequence = *hpSeq
		case "kt":
			cfg.KT = *kt
		case "traj":
			cfg.TrajPath = *traj
		case "csv":
			cfg.CSVPath = *csvPath
		case "print-every":
			cfg.PrintEvery = *printEvery
		}
	})

	return cfg, nil
}

func run(cfg runConfig) error {
	ch, err := chain.NewStraight(cfg.ChainLength)
	if err != nil {
		return err
	}

	opts := saw.DefaultOptions()
	opts.Seed = cfg.Seed
	opts.EndWeight = cfg.EndWeight
	opts.CornerWeight = cfg.CornerW
	opts.CrankWeight = cfg.CrankW

	if cfg.HPSequence != "" {
		seq, err := hp.ParseSequence(cfg.HPSequence)
		if err != nil {
			return err
		}
		energy, err := seq.Bind(cfg.ChainLength)
		if err != nil {
			return err
		}
		opts.Policy = saw.Metropolis(energy, cfg.KT)
	}

	eng, err := saw.NewEngine(ch, opts)
	if err != nil {
		return err
	}

	ro := saw.RunOptions{
		Steps:       cfg.Steps,
		SampleEvery: cfg.SampleEvery,
	}

	// First write failure is kept and surfaced after the run; later
	// frames are still attempted so the trajectory stays as long as the
	// filesystem allowed.
	var trajErr error
	if cfg.TrajPath != "" {
		f, ferr := os.Create(cfg.TrajPath)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		xyz := export.NewXYZWriter(f, true)
		ro.OnFrame = func(step int, ch *chain.Chain) {
			if werr := xyz.WriteFrame(step, ch); werr != nil && trajErr == nil {
				trajErr = werr
			}
		}
	}

	var csvw *export.CSVWriter
	if cfg.CSVPath != "" {
		f, ferr := os.Create(cfg.CSVPath)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		csvw = export.NewCSVWriter(f)
		ro.OnSample = func(rec observe.Record) {
			_ = csvw.WriteRecord(rec)
		}
	}

	if cfg.PrintEvery > 0 {
		ro.OnStep = func(out saw.Outcome) {
			if out.Step%cfg.PrintEvery != 0 {
				return
			}
			st := eng.Stats()
			cur := eng.Chain()
			fmt.Printf("step %6d | acc %6.3f | R %.3f | Rg %.3f\n",
				out.Step, st.AcceptanceRatio(), observe.EndToEnd(cur), observe.RadiusOfGyration(cur))
		}
	}

	stats, err := saw.Run(eng, ro)
	if err != nil {
		return err
	}
	if trajErr != nil {
		return trajErr
	}
	if csvw != nil {
		if err := csvw.Flush(); err != nil {
			return err
		}
	}

	final := eng.Chain()
	fmt.Println("\nDONE")
	fmt.Printf("connectivity: %v | self-avoiding: %v\n", final.IsConnected(), final.IsSelfAvoiding())
	fmt.Printf("steps %d | accepted %d | rejected %d (no-target %d, invalid %d, policy %d) | acceptance %.3f\n",
		stats.Steps, stats.Accepted, stats.Rejected(), stats.NoTarget, stats.Invalid, stats.PolicyRejected,
		stats.AcceptanceRatio())
	if cfg.TrajPath != "" {
		fmt.Printf("trajectory written to %s (vmd %s)\n", cfg.TrajPath, cfg.TrajPath)
	}
	if cfg.CSVPath != "" {
		fmt.Printf("observables written to %s\n", cfg.CSVPath)
	}

	return nil
}
