package main

import (
	"os"
	"time"

	"github.com/LdDl/zoiflow"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zoiflow",
	Short: "Summarize trajectories crossing a zone of interest into weighted average paths",
	Long: `zoiflow clips trajectories regarding a zone of interest, splits the zone into quadrants
recursively and extracts weighted average paths (entrance -> exit) for every leaf of the resulting tree.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := newViper(cmd.Flags())
		if err != nil {
			return err
		}
		cfg, err := loadConfig(v)
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Log, os.Stderr)
		logger.Debug().Msg(cfg.String())
		return run(cfg, logger)
	},
}

func init() {
	addFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg *Config, logger zerolog.Logger) error {
	logger.Info().Str("file", cfg.Input).Msg("Loading dataset...")
	st := time.Now()
	dataset, err := zoiflow.ImportFromGeoJSONFile(cfg.Input)
	if err != nil {
		return errors.Wrap(err, "Can't load dataset")
	}
	logger.Info().Int("trajectories", len(dataset.Trajectories)).Dur("elapsed", time.Since(st)).Msg("Dataset has been loaded")
	logger.Debug().Str("zone", zoiflow.PrepareWKTPolygon(dataset.Zone)).Float64("area", dataset.Zone.Area()).Msg("Zone of interest")

	st = time.Now()
	root, err := zoiflow.Clip(dataset.Zone, dataset.Trajectories)
	if err != nil {
		return errors.Wrap(err, "Can't clip trajectories")
	}
	logger.Info().Int("fragments", len(root.Fragments())).Dur("elapsed", time.Since(st)).Msg("Trajectories have been clipped")

	if !cfg.Series {
		return buildAndExport(root, cfg.Depth, cfg.Out, cfg, logger)
	}
	for depth := 0; depth <= cfg.Depth; depth++ {
		err = buildAndExport(root, depth, seriesFilename(cfg.Out, depth), cfg, logger)
		if err != nil {
			return err
		}
	}
	return nil
}

func buildAndExport(root *zoiflow.Node, depth int, fname string, cfg *Config, logger zerolog.Logger) error {
	st := time.Now()
	tree, err := zoiflow.NewTree(root, depth, zoiflow.WithLogger(logger), zoiflow.WithParallelSplit(cfg.Parallel))
	if err != nil {
		return errors.Wrap(err, "Can't build tree")
	}
	logger.Info().Int("depth", depth).Int("leaves", len(tree.Leaves())).Dur("elapsed", time.Since(st)).Msg("Tree has been built")

	st = time.Now()
	switch cfg.Format {
	case "csv":
		err = exportCSV(tree, fname, cfg.GeomF, cfg.Export)
	default:
		err = exportGeoJSON(tree, fname, cfg.Export)
	}
	if err != nil {
		return errors.Wrapf(err, "Can't export tree of depth %d", depth)
	}
	logger.Info().Str("file", fname).Dur("elapsed", time.Since(st)).Msg("Results have been exported")
	return nil
}
