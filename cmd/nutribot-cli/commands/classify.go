package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aishuu11/hackathon-2025/internal/dialogue"
	"github.com/aishuu11/hackathon-2025/internal/intent"
)

// classification is a decision plus the advice topic for general_advice.
type classification struct {
	intent.Decision
	Topic string `json:"topic,omitempty"`
}

func newClassifyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <message>",
		Short: "Show the intent a message is classified as",
		Long: "Show the intent a message is classified as, with the rule and pattern that fired.\n\n" +
			"General advice is answered from one of these topics, in match order:\n  " +
			strings.Join(dialogue.AdviceTopicNames(), ", ") + "\n" +
			"Messages matching none of them get the default advice.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, _, err := opts.engine()
			if err != nil {
				return err
			}
			u := opts.ui(cmd)

			message := strings.Join(args, " ")
			c := classification{Decision: engine.Classifier().Explain(message)}
			if c.Intent == intent.IntentGeneralAdvice {
				c.Topic = dialogue.AdviceTopic(message)
			}
			if u.JSON() {
				return writeJSON(cmd.OutOrStdout(), c)
			}

			u.Table([]string{"intent", "rule", "pattern", "confidence", "topic"}, [][]string{
				{string(c.Intent), c.Rule, c.Pattern, fmt.Sprintf("%.2f", c.Confidence), c.Topic},
			})
			return nil
		},
	}
}
