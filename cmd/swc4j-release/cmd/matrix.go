package cmd

import (
	"github.com/spf13/cobra"

	"github.com/caoccao/swc4j/internal/engine"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "List supported targets and their artifact names",
	Long: `Displays every supported operating system and architecture, the cargo
build triple, the library file cargo produces and the versioned artifact name
publish writes for the configured release version.`,
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

		infos, err := engine.MatrixInfo(newResolver(root, cfg), cfg.Release)
		if err != nil {
			return err
		}

		info("swc4j %s targets:", cfg.Release)
		for _, a := range infos {
			info("  %-16s %-28s %-16s → %s", a.Platform, a.Platform.Triple, a.SourceFileName, a.Artifact)
			detail("%s", a.Destination)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}
