package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/caoccao/swc4j/internal/config"
	"github.com/caoccao/swc4j/internal/engine"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize version strings across the project files",
	Long: `Rewrites every version string embedded in the known project files so it
matches the configured release version (or the pre-release version for
snapshot references). Only the version text changes; files that are already
up to date are not written.

Missing files are reported and skipped. The command exits non-zero if any
file could not be processed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(root)
		if err != nil {
			return err
		}

		result, err := newSyncEngine(root).Sync(cmd.Context(), engine.SyncOptions{
			Release:    cfg.Release,
			Prerelease: cfg.Prerelease,
		})
		if err != nil {
			return err
		}

		for _, f := range result.Written {
			info("  %s  %s", f.Action, f.Path)
		}
		for _, f := range result.Unchanged {
			detail("%s  %s", f.Action, f.Path)
		}
		for _, e := range result.Errors {
			errorf("%s: %s", e.Path, e.Err)
		}

		info("")
		info("Sync complete (%s): %d written, %d unchanged, %d errors.",
			versions(cfg), len(result.Written), len(result.Unchanged), len(result.Errors))

		if len(result.Errors) > 0 {
			return fmt.Errorf("%d file(s) failed", len(result.Errors))
		}
		return nil
	},
}

func newSyncEngine(root string) *engine.SyncEngine {
	return &engine.SyncEngine{
		Root: root,
		Fs:   afero.NewOsFs(),
		Log:  log.StandardLogger(),
	}
}

// versions is the release/prerelease pair shown in summaries.
func versions(cfg *config.Config) string {
	return fmt.Sprintf("release %s, prerelease %s", cfg.Release, cfg.Prerelease)
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
