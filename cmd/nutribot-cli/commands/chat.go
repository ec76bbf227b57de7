package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aishuu11/hackathon-2025/cmd/nutribot-cli/ui"
	"github.com/aishuu11/hackathon-2025/internal/dialogue"
)

var farewells = map[string]bool{"quit": true, "exit": true, "bye": true}

const farewellText = "Goodbye! Stay healthy! 👋"

func newChatCommand(opts *options) *cobra.Command {
	var remote, sessionID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat",
		Long: `Start an interactive chat. Messages are answered in-process unless
--remote points at a running API server. Type quit, exit or bye to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := opts.ui(cmd)

			var send func(context.Context, string) (dialogue.Envelope, error)
			if remote != "" {
				client := newAPIClient(remote, sessionID)
				send = func(ctx context.Context, msg string) (dialogue.Envelope, error) {
					var s *ui.Spinner
					if !opts.jsonOut {
						s = ui.NewSpinner(cmd.ErrOrStderr(), "Thinking...")
						s.Start()
						defer s.Stop()
					}
					return client.Chat(ctx, msg)
				}
			} else {
				engine, _, _, err := opts.engine()
				if err != nil {
					return err
				}
				conv := dialogue.NewConversation(engine)
				send = func(_ context.Context, msg string) (dialogue.Envelope, error) {
					return conv.ProcessMessage(msg), nil
				}
			}

			u.Section("NutriBot")
			u.Info("Ask about foods, myths or your goals. Type 'quit' to leave.")

			return chatLoop(cmd, u, send)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "API base URL, e.g. http://localhost:5000")
	cmd.Flags().StringVar(&sessionID, "session", "", "resume a remote session id")
	return cmd
}

func chatLoop(cmd *cobra.Command, u *ui.UI, send func(context.Context, string) (dialogue.Envelope, error)) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if !u.JSON() {
			fmt.Fprint(cmd.OutOrStdout(), "You: ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		msg := strings.TrimSpace(scanner.Text())
		if farewells[strings.ToLower(msg)] {
			if !u.JSON() {
				fmt.Fprintln(cmd.OutOrStdout(), farewellText)
			}
			return nil
		}
		if msg == "" {
			continue
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		env, err := send(ctx, msg)
		cancel()
		if err != nil {
			u.Error("%v", err)
			continue
		}
		if err := renderReply(u, env); err != nil {
			return err
		}
	}
}
