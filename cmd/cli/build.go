package main

import (
	"fmt"
	"time"

	"github.com/rhyrak/timetable-wizard/internal/csvio"
	"github.com/rhyrak/timetable-wizard/internal/scheduler"
	"github.com/rhyrak/timetable-wizard/pkg/model"
	"github.com/spf13/cobra"
)

func newBuildCmd(g *globals) *cobra.Command {
	var (
		required        []string
		groups          []string
		top             int
		exportPath      string
		maxCombinations int64
		report          bool
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generates the best schedules from required courses and choice groups.",
		Example: `  wizard build -c spring.csv --required GEN1010-21 \
    --group "data structures:CSE2010-11,CSE2010-12" --group CSE3030-11,CSE3030-12 --top 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, w, err := g.loadCatalog()
			if err != nil {
				return err
			}

			cfg := g.cfg.SchedulerConfiguration()
			if cmd.Flags().Changed("max-combinations") {
				cfg.MaxCombinations = maxCombinations
			}
			req := scheduler.Request{Required: parseIDs(required), Weights: &w}
			for i, raw := range groups {
				req.Groups = append(req.Groups, parseGroup(raw, i))
			}
			if cmd.Flags().Changed("top") {
				req.TopK = &top
			}

			for _, id := range append(append([]model.CourseID{}, req.Required...), flatten(req.Groups)...) {
				if _, ok := cat.Lookup(id); !ok {
					g.log.Warn().Str("course", string(id)).Msg("course not in catalog, it will score 0")
				}
			}

			start := time.Now()
			res, err := scheduler.Run(cmd.Context(), cat.Courses(), req, cfg)
			if err != nil {
				return err
			}
			g.log.Debug().
				Int64("combinations", scheduler.Combinations(model.IDs(req.Groups))).
				Dur("took", time.Since(start)).
				Msg("schedules built")

			out := cmd.OutOrStdout()
			csvio.PrintSchedules(out, res.Candidates, cat)
			if report || !res.Valid {
				fmt.Fprint(out, res.Report)
			}

			if exportPath != "" {
				if err := csvio.ExportSchedules(res.Candidates, cat, exportPath); err != nil {
					return err
				}
				fmt.Fprintln(out, "Exported output to: "+exportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&required, "required", "r", nil, "course ids that must be in every schedule")
	cmd.Flags().StringArrayVarP(&groups, "group", "g", nil, `choice group "name:A,B" or "A,B" (repeatable)`)
	cmd.Flags().IntVarP(&top, "top", "k", 3, "number of schedules to show")
	cmd.Flags().StringVarP(&exportPath, "export", "o", "", "write ranked schedules to this CSV file")
	cmd.Flags().Int64Var(&maxCombinations, "max-combinations", 0, "refuse to enumerate more combinations than this (0 = no limit)")
	cmd.Flags().BoolVar(&report, "report", false, "print the validation report")
	return cmd
}

func flatten(groups []model.ChoiceGroup) []model.CourseID {
	var out []model.CourseID
	for _, g := range groups {
		out = append(out, g.Courses...)
	}
	return out
}
