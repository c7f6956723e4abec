package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caoccao/swc4j/internal/engine"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every project file carries the configured version",
	Long: `Reads the known project files and reports every version string that differs
from the configured release or pre-release version, and every missing file.
No file is modified. Exit 0 if everything matches; exit non-zero otherwise.
Suitable for CI pipelines.`,
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

		eng := &engine.CheckEngine{Sync: newSyncEngine(root)}
		result, err := eng.Check(cmd.Context(), cfg.Release, cfg.Prerelease)
		if err != nil {
			return err
		}

		if result.Clean {
			info("All files match (%s).", versions(cfg))
			return nil
		}

		for _, d := range result.Drifted {
			info("  drifted   %s  %s -> %s", d.Path, d.Found, d.Want)
			detail("offset %d", d.Start)
		}
		for _, m := range result.Missing {
			info("  missing   %s", m)
		}
		for _, e := range result.Errors {
			errorf("%s: %s", e.Path, e.Err)
		}

		total := len(result.Stale) + len(result.Missing) + len(result.Errors)
		return fmt.Errorf("check failed: %d file(s) out of sync", total)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
