package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxedgeorient/meo/config"
	"github.com/maxedgeorient/meo/core"
	"github.com/maxedgeorient/meo/engine"
	"github.com/maxedgeorient/meo/ioformat"
	"github.com/maxedgeorient/meo/wcsp"
)

var rootCmd = &cobra.Command{
	Use:   "meo <properties-file>",
	Short: "Orient a mixed directed/undirected graph to maximize satisfied source-target path weight",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(propsPath string) error {
	cfg, err := config.LoadFile(propsPath)
	if err != nil {
		return err
	}

	g, err := loadGraph(cfg)
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	e := engine.New(g, engine.WithMaxPathLength(cfg.MaxPathLength), engine.WithLogger(log))

	if _, err := e.FindPaths(); err != nil {
		return err
	}
	if _, err := e.FindConflicts(); err != nil {
		return err
	}

	if err := orient(e, cfg); err != nil {
		return err
	}

	return writeOutputs(e, g, cfg)
}

func loadGraph(cfg *config.Config) (*core.Graph, error) {
	g := core.NewGraph()

	edgesFile, err := os.Open(cfg.EdgesFile)
	if err != nil {
		return nil, fmt.Errorf("meo: %w", err)
	}
	defer edgesFile.Close()
	if err := ioformat.ParseEdges(edgesFile, g); err != nil {
		return nil, err
	}

	sourcesFile, err := os.Open(cfg.SourcesFile)
	if err != nil {
		return nil, fmt.Errorf("meo: %w", err)
	}
	defer sourcesFile.Close()
	if err := ioformat.ParseSources(sourcesFile, g); err != nil {
		return nil, err
	}

	targetsFile, err := os.Open(cfg.TargetsFile)
	if err != nil {
		return nil, fmt.Errorf("meo: %w", err)
	}
	defer targetsFile.Close()
	if err := ioformat.ParseTargets(targetsFile, g); err != nil {
		return nil, err
	}

	return g, nil
}

// orient runs the algorithm cfg.Alg selects, mirroring EOMain's dispatch:
// Random runs randPlusSearchSln or randSln depending on cfg.LocalSearch;
// MAXCSP either emits a WCSP instance (Gen) or ingests and scores a
// solution (Score), running local search afterward if requested.
func orient(e *engine.Engine, cfg *config.Config) error {
	switch cfg.Alg {
	case config.AlgRandom:
		var err error
		if cfg.LocalSearch {
			_, err = e.RandPlusSearchSlnN(cfg.RandRestarts)
		} else {
			_, err = e.RandSlnN(cfg.RandRestarts)
		}
		return err

	case config.AlgMAXCSP:
		switch cfg.CSPPhase {
		case config.PhaseGen:
			out, err := os.Create(cfg.CSPGenFile)
			if err != nil {
				return fmt.Errorf("meo: %w", err)
			}
			defer out.Close()
			return wcsp.Generate(e, out)

		case config.PhaseScore:
			in, err := os.Open(cfg.CSPSolFile)
			if err != nil {
				return fmt.Errorf("meo: %w", err)
			}
			defer in.Close()
			if _, err := wcsp.Score(e, in); err != nil {
				return err
			}
			if cfg.LocalSearch {
				_, err = e.LocalSearchSln()
			}
			return err
		}
	}
	return fmt.Errorf("meo: unhandled algorithm %q", cfg.Alg)
}

func writeOutputs(e *engine.Engine, g *core.Graph, cfg *config.Config) error {
	paths, err := e.Paths()
	if err != nil {
		return err
	}
	pathOut, err := os.Create(cfg.PathOutputFile)
	if err != nil {
		return fmt.Errorf("meo: %w", err)
	}
	defer pathOut.Close()
	if err := ioformat.WritePathOutput(pathOut, paths); err != nil {
		return err
	}

	used, err := e.PathEdges()
	if err != nil {
		return err
	}
	edgeOut, err := os.Create(cfg.EdgeOutputFile)
	if err != nil {
		return fmt.Errorf("meo: %w", err)
	}
	defer edgeOut.Close()
	return ioformat.WriteEdgeOutput(edgeOut, g, used)
}
