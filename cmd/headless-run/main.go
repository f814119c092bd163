// headless-run drives one simulation to completion or to its tick budget
// without any rendering surface, printing one progress line per tick and a
// final summary line.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Garsondee/swarm-slam/internal/mapfile"
	"github.com/Garsondee/swarm-slam/internal/sim"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

var errExit = errors.New("exit")

func run(args []string, stdout *os.File) int {
	root := newRootCmd(stdout)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(stdout *os.File) *cobra.Command {
	var (
		mapPath    string
		configPath string
		schemaPath string
		numAgents  int
		seed       int64
		maxTicks   int
		logLevel   string
		genWidth   int
		genHeight  int
		genEntries int
		useRandom  bool
	)

	root := &cobra.Command{
		Use:           "headless-run",
		Short:         "Run a cooperative frontier-exploration swarm without rendering",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			rng := rand.New(rand.NewSource(seed))

			var rows [][]int
			if useRandom {
				rows = mapfile.GenerateRandom(rng, genWidth, genHeight, genEntries)
				logger.Info("generated random map", zap.Int("width", genWidth), zap.Int("height", genHeight))
			} else {
				rows, err = mapfile.Load(mapPath)
				if err != nil {
					return fmt.Errorf("load map: %w", err)
				}
			}

			grid, err := sim.NewGrid(rows)
			if err != nil {
				return fmt.Errorf("build grid: %w", err)
			}

			cfg := sim.DefaultConfig()
			if configPath != "" {
				cfg, err = sim.LoadConfig(configPath, schemaPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}

			entries := grid.EntryPoints()
			if len(entries) == 0 {
				return fmt.Errorf("map has no entry points")
			}
			specs := make([]sim.AgentSpec, numAgents)
			for i := 0; i < numAgents; i++ {
				entry := entries[i%len(entries)]
				entryTime := 0
				if i < len(cfg.EntryTimeSchedule) {
					entryTime = cfg.EntryTimeSchedule[i]
				}
				specs[i] = sim.AgentSpec{ID: i, Start: entry, FOVRadius: cfg.FOVRadius, EntryTime: entryTime}
			}

			s, err := sim.NewSimulation(grid, specs, *cfg, rng)
			if err != nil {
				return fmt.Errorf("construct simulation: %w", err)
			}

			logger.Info("starting run", zap.Int("agents", numAgents), zap.Int64("seed", seed), zap.Int("max_ticks", maxTicks))

			reporter := sim.NewReporter()
			start := time.Now()
			var result sim.RunResult
			for {
				if s.Done() {
					result = sim.RunResult{Ticks: s.CurrentTick(), Progress: s.Progress(), Solved: true}
					break
				}
				if s.CurrentTick() >= maxTicks {
					result = sim.RunResult{Ticks: s.CurrentTick(), Progress: s.Progress(), Solved: false}
					break
				}
				s.Step()
				reporter.Collect(s)
			}
			elapsed := time.Since(start)

			fmt.Fprint(stdout, reporter.FormatRun())
			fmt.Fprintln(stdout, reporter.FormatLatest())

			logger.Info("run finished",
				zap.Int("ticks", result.Ticks),
				zap.Float64("progress", result.Progress),
				zap.Bool("solved", result.Solved),
				zap.Duration("elapsed", elapsed))

			if !result.Solved {
				return errExit
			}
			return nil
		},
	}

	root.Flags().StringVar(&mapPath, "map", "", "path to a whitespace-separated integer tile matrix")
	root.Flags().StringVar(&configPath, "config", "", "path to a JSON config file (validated against --schema or the built-in schema)")
	root.Flags().StringVar(&schemaPath, "schema", "", "path to a JSON Schema file overriding the built-in config schema")
	root.Flags().IntVar(&numAgents, "agents", 2, "number of agents to spawn, distributed across entry points")
	root.Flags().Int64Var(&seed, "seed", 1, "RNG seed")
	root.Flags().IntVar(&maxTicks, "max-ticks", 2000, "tick budget before giving up")
	root.Flags().StringVar(&logLevel, "log-level", "info", "zap log level: debug, info, warn, error")
	root.Flags().BoolVar(&useRandom, "random-map", false, "generate a random map instead of loading --map")
	root.Flags().IntVar(&genWidth, "gen-width", 32, "random map width, with --random-map")
	root.Flags().IntVar(&genHeight, "gen-height", 32, "random map height, with --random-map")
	root.Flags().IntVar(&genEntries, "gen-entries", 2, "random map entry point count, with --random-map")

	return root
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}
