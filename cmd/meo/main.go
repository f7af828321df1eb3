// Command meo runs the maximum-edge-orientation engine described by
// spec.md §6.1: one positional argument naming a properties file,
// exit 0 on success, non-zero with a one-line diagnostic to stderr on
// any configuration, input, I/O, or invariant error.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agitter/meo/config"
	"github.com/agitter/meo/graph"
	"github.com/agitter/meo/ioformat"
	"github.com/agitter/meo/orient"
	"github.com/agitter/meo/wcsp"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "meo PROPERTIES_FILE",
		Short:        "Orient a mixed directed/undirected graph to maximize satisfied source-target paths",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}

	return cmd
}

func run(propsPath string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("meo: building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := execute(propsPath, logger); err != nil {
		logger.Error("run failed", zap.Error(err))

		return err
	}

	return nil
}

// execute drives the full pipeline: load configuration, parse inputs,
// enumerate paths, orient, and write outputs.
func execute(propsPath string, logger *zap.Logger) error {
	cfg, err := config.Load(propsPath)
	if err != nil {
		return err
	}

	g := graph.NewGraph()
	if err := loadInputs(cfg, g); err != nil {
		return err
	}

	paths := g.FindPaths(cfg.MaxPathLength, 0)
	logger.Info("enumerated paths", zap.Int("count", len(paths)))

	engine := orient.NewEngine(g)
	engine.FindConflicts()
	logger.Info("found conflict edges", zap.Int("count", len(engine.ConflictEdges())))

	if err := orientGraph(cfg, engine, logger); err != nil {
		return err
	}

	if cfg.Algorithm == config.AlgMAXCSP && cfg.CSPPhase == config.CSPGen {
		return writeWCSPInstance(cfg, engine)
	}

	if cfg.LocalSearch && cfg.Algorithm == config.AlgMAXCSP {
		gained, err := engine.RunLocalSearch()
		if err != nil {
			return err
		}
		logger.Info("local search converged", zap.Float64("gained", gained))
	}

	return writeOutputs(cfg, g, paths)
}

func loadInputs(cfg *config.Config, g *graph.Graph) error {
	edgesFile, err := os.Open(cfg.EdgesFile)
	if err != nil {
		return fmt.Errorf("meo: %w", err)
	}
	defer edgesFile.Close()
	if err := ioformat.LoadEdges(edgesFile, g); err != nil {
		return err
	}

	sourcesFile, err := os.Open(cfg.SourcesFile)
	if err != nil {
		return fmt.Errorf("meo: %w", err)
	}
	defer sourcesFile.Close()
	if err := ioformat.LoadSources(sourcesFile, g); err != nil {
		return err
	}

	targetsFile, err := os.Open(cfg.TargetsFile)
	if err != nil {
		return fmt.Errorf("meo: %w", err)
	}
	defer targetsFile.Close()

	return ioformat.LoadTargets(targetsFile, g)
}

// orientGraph performs the initial orientation pass: Random for
// alg=Random (followed by local.search-gated refinement restarted
// rand.restarts times when local search is enabled, a single draw
// otherwise), or ingest a prior solver solution for alg=MAXCSP with
// csp.phase=Score. A Gen-phase MAXCSP run leaves the graph unoriented
// until writeWCSPInstance emits the instance for an external solver.
func orientGraph(cfg *config.Config, engine *orient.Engine, logger *zap.Logger) error {
	switch cfg.Algorithm {
	case config.AlgRandom:
		if cfg.LocalSearch {
			return engine.RunRandomSearch(cfg.RandRestarts)
		}

		return engine.RunRandom()
	case config.AlgMAXCSP:
		if cfg.CSPPhase != config.CSPScore {
			return nil // Gen phase: nothing to orient yet
		}

		solFile, err := os.Open(cfg.CSPSolFile)
		if err != nil {
			return fmt.Errorf("meo: %w", err)
		}
		defer solFile.Close()

		sol, err := wcsp.ReadSolution(solFile)
		if err != nil {
			return err
		}
		if err := engine.ScoreFromSolution(sol); err != nil {
			return err
		}
		logger.Info("applied WCSP solution", zap.Int("tokens", len(sol)))

		return nil
	default:
		return orient.ErrUnknownAlgorithm
	}
}

func writeWCSPInstance(cfg *config.Config, engine *orient.Engine) error {
	var buf bytes.Buffer
	if err := engine.EncodeWCSP(&buf); err != nil {
		return err
	}

	return os.WriteFile(cfg.CSPGenFile, buf.Bytes(), 0o644)
}

func writeOutputs(cfg *config.Config, g *graph.Graph, paths []*graph.Path) error {
	pathOut, err := os.Create(cfg.PathOutputFile)
	if err != nil {
		return fmt.Errorf("meo: %w", err)
	}
	defer pathOut.Close()
	if err := ioformat.WritePathOutput(pathOut, g, paths); err != nil {
		return err
	}

	edgeOut, err := os.Create(cfg.EdgeOutputFile)
	if err != nil {
		return fmt.Errorf("meo: %w", err)
	}
	defer edgeOut.Close()

	return ioformat.WriteEdgeOutput(edgeOut, g, paths)
}
