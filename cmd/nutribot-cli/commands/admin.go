package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aishuu11/hackathon-2025/cmd/nutribot-cli/ui"
	"github.com/aishuu11/hackathon-2025/internal/cache"
	"github.com/aishuu11/hackathon-2025/internal/config"
	"github.com/aishuu11/hackathon-2025/internal/monitoring"
	"github.com/aishuu11/hackathon-2025/internal/session"
)

func newAuditCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Follow the turn audit stream of a running API",
	}

	var count int
	tail := &cobra.Command{
		Use:   "tail",
		Short: "Print turn events as the API publishes them to Redis",
		Long: `Subscribes to the audit channel on the Redis instance configured under
session.redis (or REDIS_URL) and prints one line per processed turn. The API
only publishes when it runs with the redis session driver.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			u := opts.ui(cmd)

			client, err := cache.NewRedisClient(redisConfig(cfg.Session.Redis))
			if err != nil {
				return fmt.Errorf("connect to redis at %s: %w", cfg.Session.Redis.Addr, err)
			}
			defer client.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !u.JSON() {
				u.Info("Listening on %s (Ctrl+C to stop)", monitoring.AuditChannel)
			}
			return tailAudit(ctx, u, cmd.OutOrStdout(), client, count)
		},
	}
	tail.Flags().IntVarP(&count, "count", "n", 0, "stop after n events (0 follows until interrupted)")
	cmd.AddCommand(tail)

	return cmd
}

// tailAudit prints events from sub until count events or ctx ends. JSON mode
// writes one object per line.
func tailAudit(ctx context.Context, u *ui.UI, w io.Writer, sub monitoring.Subscriber, count int) error {
	enc := json.NewEncoder(w)
	var encErr error

	err := monitoring.Tail(ctx, sub, count, func(e monitoring.TurnEvent) {
		if u.JSON() {
			if err := enc.Encode(e); err != nil && encErr == nil {
				encErr = err
			}
			return
		}
		match := e.MatchKey
		if match == "" {
			match = "-"
		}
		fmt.Fprintf(w, "%s  %-8.8s  %-16s %-14s %-18s %.2f  %.1fms\n",
			e.OccurredAt.Local().Format("15:04:05"), e.SessionID, e.Intent, e.Rule, match, e.Score, e.LatencyMs)
	})
	if err != nil {
		return err
	}
	return encErr
}

func newSessionsCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage stored chat sessions",
	}

	var yes bool
	purge := &cobra.Command{
		Use:   "purge",
		Short: "Delete every stored session from the configured store",
		Long: `Deletes all sessions from the redis, sqlite or postgres store named in the
config. The memory driver keeps sessions inside the API process, so there is
nothing for the CLI to purge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to purge sessions without --yes")
			}
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			return purgeSessions(cmd.Context(), opts.ui(cmd), cfg.Session)
		},
	}
	purge.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deleting every session")
	cmd.AddCommand(purge)

	return cmd
}

func purgeSessions(ctx context.Context, u *ui.UI, cfg config.SessionConfig) error {
	if cfg.Driver == "" || cfg.Driver == "memory" {
		return errors.New("the memory session store lives inside the API process; set a redis, sqlite or postgres driver")
	}

	store, err := session.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s session store: %w", cfg.Driver, err)
	}
	defer store.Close()

	purger, ok := store.(session.Purger)
	if !ok {
		return fmt.Errorf("%s session store cannot be purged", cfg.Driver)
	}
	if err := purger.Purge(ctx); err != nil {
		return err
	}

	if u.JSON() {
		return writeJSON(u.Writer(), map[string]interface{}{"driver": cfg.Driver, "purged": true})
	}
	u.Success("Purged all sessions from the %s store", cfg.Driver)
	return nil
}

func redisConfig(c config.RedisConfig) cache.RedisConfig {
	return cache.RedisConfig{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
		Prefix:   c.Prefix,
	}
}
