package main

import (
	"fmt"

	"github.com/rhyrak/timetable-wizard/internal/catalog"
	"github.com/rhyrak/timetable-wizard/internal/config"
	"github.com/rhyrak/timetable-wizard/internal/csvio"
	"github.com/rhyrak/timetable-wizard/internal/pkg/logger"
	"github.com/rhyrak/timetable-wizard/internal/preference"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type globals struct {
	configPath   string
	catalogFiles []string
	weights      string

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "wizard",
		Short:         "wizard ranks timetable options from a course catalog and your preferences.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(g.configPath)
			if err != nil {
				return err
			}
			g.cfg = cfg
			g.log = logger.Configure(logger.Config{
				Level:  cfg.Logging.Level,
				Pretty: cfg.Logging.Pretty,
				Output: cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&g.configPath, "config", "config.yaml", "path to the YAML config file")
	root.PersistentFlags().StringSliceVarP(&g.catalogFiles, "catalog", "c", nil, "catalog file(s), .csv or .tsv (repeatable)")
	root.PersistentFlags().StringVarP(&g.weights, "weights", "w", "", "preference weights, e.g. hw=1,team=0.5,grade=2")

	root.AddCommand(newBuildCmd(g), newRecommendCmd(g), newSearchCmd(g))
	return root
}

// loadCatalog reads every catalog file and scores it with the effective weights.
func (g *globals) loadCatalog() (*catalog.Catalog, preference.Weights, error) {
	w, err := parseWeights(g.weights, g.cfg.PreferenceWeights())
	if err != nil {
		return nil, w, err
	}

	files := g.catalogFiles
	if len(files) == 0 {
		files = g.cfg.SchedulerConfiguration().CatalogFiles
	}
	parts := make([]*catalog.Catalog, 0, len(files))
	for _, path := range files {
		courses, err := csvio.LoadCatalogFile(path)
		if err != nil {
			return nil, w, err
		}
		g.log.Debug().Str("file", path).Int("rows", len(courses)).Msg("catalog loaded")
		parts = append(parts, catalog.New(courses))
	}

	cat := catalog.Merge(parts...)
	if err := preference.Apply(cat.Courses(), w); err != nil {
		return nil, w, err
	}
	if cat.Len() == 0 {
		return nil, w, fmt.Errorf("no courses in %v", files)
	}
	return cat, w, nil
}
