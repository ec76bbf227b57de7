package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aishuu11/hackathon-2025/internal/bootstrap"
	"github.com/aishuu11/hackathon-2025/internal/dialogue"
)

type matchResult struct {
	Kind   string  `json:"kind"`
	Found  bool    `json:"found"`
	Key    string  `json:"key,omitempty"`
	Name   string  `json:"name,omitempty"`
	Term   string  `json:"term,omitempty"`
	Claim  string  `json:"claim,omitempty"`
	Path   string  `json:"path,omitempty"`
	Score  float64 `json:"score"`
	Cutoff float64 `json:"cutoff"`
}

func newMatchCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Run the food or myth matcher on a message",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "food <message>",
		Short: "Find the food a message is about",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, set, cfg, err := opts.engine()
			if err != nil {
				return err
			}
			threshold := bootstrap.EngineConfig(cfg, set).Match.FoodThreshold
			m := dialogue.MatchFood(set.Foods, strings.Join(args, " "), threshold)

			res := matchResult{Kind: "food", Found: m.Found, Score: m.Score, Cutoff: threshold}
			if m.Found {
				res.Key, res.Name, res.Term = m.Food.Key, m.Food.DisplayName, m.Term
			}
			return printMatch(opts, cmd, res)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "myth <message>",
		Short: "Find the myth a message is about",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, set, cfg, err := opts.engine()
			if err != nil {
				return err
			}
			mc := bootstrap.EngineConfig(cfg, set).Match
			m := dialogue.MatchMyth(set.Myths, strings.Join(args, " "), mc)

			res := matchResult{Kind: "myth", Found: m.Found, Claim: m.Claim, Score: m.Score, Cutoff: mc.MythThreshold}
			if m.Found {
				res.Key, res.Name, res.Term, res.Path = m.Myth.ID, m.Myth.Label, m.Phrase, m.Path
			}
			return printMatch(opts, cmd, res)
		},
	})

	return cmd
}

func printMatch(opts *options, cmd *cobra.Command, res matchResult) error {
	u := opts.ui(cmd)
	if u.JSON() {
		return writeJSON(cmd.OutOrStdout(), res)
	}

	if !res.Found {
		u.Warning("no %s matched (best score %.3f, cutoff %.2f)", res.Kind, res.Score, res.Cutoff)
		return nil
	}
	u.Success("matched %s %q", res.Kind, res.Name)
	rows := [][]string{
		{"key", res.Key},
		{"term", res.Term},
		{"score", fmt.Sprintf("%.3f", res.Score)},
	}
	if res.Claim != "" {
		rows = append(rows, []string{"claim", res.Claim})
	}
	if res.Path != "" {
		rows = append(rows, []string{"path", res.Path})
	}
	u.Table([]string{"field", "value"}, rows)
	return nil
}
