package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// envPrefix scopes the environment variables that may stand in for global flags.
const envPrefix = "SWC4J_RELEASE"

// Global flags.
var (
	rootDir    string
	configPath string
	logLevel   string
	noColor    bool
)

// settings resolves global flags against the environment.
var settings = newSettings()

var rootCmd = &cobra.Command{
	Use:   "swc4j-release",
	Short: "Release tooling for the swc4j native library",
	Long: `swc4j-release publishes the native library built by cargo into the Java
resource tree under its versioned artifact name, and keeps the release and
pre-release version strings in sync across the project files that embed them.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(settings.GetString("log-level"), noColor)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info("swc4j-release %s", version)
		info("  commit:  %s", commit)
		info("  built:   %s", date)
	},
}

func newSettings() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootDir, "root", "", "project root (default: discovered from the working directory)")
	flags.StringVar(&configPath, "config", "", "path to release.yaml, relative to the project root")
	flags.StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")

	for _, name := range []string{"root", "config", "log-level"} {
		if err := settings.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
