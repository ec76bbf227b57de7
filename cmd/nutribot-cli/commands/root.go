// Package commands implements the nutribot command line.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aishuu11/hackathon-2025/cmd/nutribot-cli/ui"
	"github.com/aishuu11/hackathon-2025/internal/bootstrap"
	"github.com/aishuu11/hackathon-2025/internal/catalog"
	"github.com/aishuu11/hackathon-2025/internal/config"
	"github.com/aishuu11/hackathon-2025/internal/dialogue"
)

type options struct {
	cfgFile string
	jsonOut bool
	verbose bool
	noColor bool
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "nutribot",
		Short: "Nutrition coach chatbot",
		Long: `nutribot answers questions about local foods, busts nutrition myths and
gives goal-aware advice. Run it as an interactive chat, ask one-off questions,
or inspect how messages are classified and matched against the catalogs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file path")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print machine-readable JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newChatCommand(opts),
		newAskCommand(opts),
		newClassifyCommand(opts),
		newMatchCommand(opts),
		newCatalogCommand(opts),
		newEvalCommand(opts),
		newAuditCommand(opts),
		newSessionsCommand(opts),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func (o *options) ui(cmd *cobra.Command) *ui.UI {
	return ui.New(cmd.OutOrStdout(), o.jsonOut, o.noColor)
}

func (o *options) config() (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	// The CLI logs to the console and stays quiet unless asked.
	cfg.Observability.LogFormat = "console"
	cfg.Observability.LogLevel = "warn"
	if o.verbose {
		cfg.Observability.LogLevel = "debug"
	}
	return cfg, nil
}

func (o *options) engine() (*dialogue.Engine, *catalog.Set, *config.Config, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, nil, nil, err
	}
	engine, set := bootstrap.NewEngine(cfg, bootstrap.NewLogger(cfg))
	return engine, set, cfg, nil
}
