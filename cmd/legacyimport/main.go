package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jose-valero/miku-logger/internal/infra/allowlist"
	"github.com/jose-valero/miku-logger/internal/infra/config"
	"github.com/jose-valero/miku-logger/internal/infra/legacy"
	"github.com/jose-valero/miku-logger/internal/infra/logging"
	"github.com/jose-valero/miku-logger/internal/infra/storage"
)

var (
	dbPath  string
	dryRun  bool
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "legacyimport",
	Short: "Copy the old sqlite database into Postgres",
	Long: `Reads guild_settings, member_last_join and member_last_out from the
sqlite file of the previous bot and upserts them into DATABASE_URL.
Only guilds present in the allowlist are copied.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().StringVar(&dbPath, "db", envOr("MIKU_DB", "miku.db"), "path to the legacy sqlite file")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "count rows without writing")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "abort the import after this long")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	src, err := legacy.Open(dbPath)
	if err != nil {
		return err
	}
	defer src.Close()

	pool, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()
	if err := storage.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	allow := allowlist.New(cfg.AllowlistPath, allowlist.WithLogger(log))
	if n := allow.Refresh(); n == 0 {
		log.Warn("allowlist is empty, nothing will be copied", "path", cfg.AllowlistPath)
	}

	im := legacy.NewImporter(storage.NewSettingsRepo(pool), storage.NewMemberTimesRepo(pool), allow, log)
	im.DryRun = dryRun
	rep, err := im.Run(ctx, src)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "settings=%d joins=%d outs=%d skipped=%d\n",
		rep.Settings, rep.Joins, rep.Outs, rep.Skipped)
	return nil
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
