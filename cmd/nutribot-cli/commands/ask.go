package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aishuu11/hackathon-2025/internal/dialogue"
)

func newAskCommand(opts *options) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, _, err := opts.engine()
			if err != nil {
				return err
			}
			u := opts.ui(cmd)

			turn := engine.Respond(dialogue.NewUserProfile(), strings.Join(args, " "))

			if u.JSON() {
				if explain {
					return writeJSON(cmd.OutOrStdout(), struct {
						dialogue.Envelope
						Trace dialogue.Trace `json:"trace"`
					}{turn.Envelope, turn.Trace})
				}
				return writeJSON(cmd.OutOrStdout(), turn.Envelope)
			}

			if err := renderReply(u, turn.Envelope); err != nil {
				return err
			}
			if explain {
				renderTrace(u, turn.Trace)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "show how the message was routed")
	return cmd
}
