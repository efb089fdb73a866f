package main

import (
	"github.com/rhyrak/timetable-wizard/internal/csvio"
	"github.com/spf13/cobra"
)

func newRecommendCmd(g *globals) *cobra.Command {
	var (
		chosen []string
		k      int
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Lists the best-rated courses you have not picked yet.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := g.loadCatalog()
			if err != nil {
				return err
			}
			csvio.PrintCourses(cmd.OutOrStdout(), cat.Recommend(parseIDs(chosen), k))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&chosen, "chosen", nil, "course ids already picked")
	cmd.Flags().IntVarP(&k, "top", "k", 5, "number of courses to list")
	return cmd
}

func newSearchCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Finds courses by id or name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := g.loadCatalog()
			if err != nil {
				return err
			}
			csvio.PrintCourses(cmd.OutOrStdout(), cat.Search(args[0]))
			return nil
		},
	}
}
