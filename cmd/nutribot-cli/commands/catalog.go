package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aishuu11/hackathon-2025/internal/catalog"
)

func newCatalogCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the food and myth catalogs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "list [foods|myths]",
		Short:     "List catalog entries",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"foods", "myths"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, set, _, err := opts.engine()
			if err != nil {
				return err
			}
			u := opts.ui(cmd)

			if args[0] == "foods" {
				foods := set.Foods.All()
				if u.JSON() {
					return writeJSON(cmd.OutOrStdout(), foods)
				}
				rows := make([][]string, 0, len(foods))
				for _, f := range foods {
					rows = append(rows, []string{f.Key, f.DisplayName, fmt.Sprintf("%.0f", f.CaloriesPerServing), string(f.Verdict)})
				}
				u.Table([]string{"key", "name", "kcal", "verdict"}, rows)
				return nil
			}

			myths := set.Myths.All()
			if u.JSON() {
				return writeJSON(cmd.OutOrStdout(), myths)
			}
			rows := make([][]string, 0, len(myths))
			for _, m := range myths {
				rows = append(rows, []string{m.ID, m.Label, string(m.Verdict), fmt.Sprintf("%d", m.HarmLevel)})
			}
			u.Table([]string{"id", "label", "verdict", "harm"}, rows)
			return nil
		},
	})

	var limit int
	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy search food names and myth labels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, set, _, err := opts.engine()
			if err != nil {
				return err
			}
			u := opts.ui(cmd)

			results := set.Suggest(strings.Join(args, " "), limit)
			if results == nil {
				results = []catalog.Suggestion{}
			}
			if u.JSON() {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			if len(results) == 0 {
				u.Warning("nothing matched %q", strings.Join(args, " "))
				return nil
			}
			rows := make([][]string, 0, len(results))
			for _, s := range results {
				rows = append(rows, []string{s.Kind, s.Key, s.Text, fmt.Sprintf("%d", s.Score)})
			}
			u.Table([]string{"kind", "key", "text", "score"}, rows)
			return nil
		},
	}
	search.Flags().IntVarP(&limit, "limit", "n", 5, "maximum results")
	cmd.AddCommand(search)

	return cmd
}
