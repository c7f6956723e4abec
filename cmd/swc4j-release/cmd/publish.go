package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/caoccao/swc4j/internal/engine"
	"github.com/caoccao/swc4j/internal/target"
)

var (
	publishOS       string
	publishArch     string
	publishDebug    bool
	publishPlatform string
	publishHost     bool
	publishDryRun   bool
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Copy the built native library into the resource tree",
	Long: `Looks for the native library cargo produced for the requested target,
first under rust/target/<triple>/<mode>, then under rust/target/<mode>, and
copies it to src/main/resources as
<name>-<os>-<arch>.v.<version><extension>, replacing any existing file.

The target is given with --os/--arch, with an OCI-style --platform such as
linux/aarch64 or darwin/amd64, or with --host for the running machine.`,
	Example: `  swc4j-release publish -o linux -a arm64
  swc4j-release publish --platform darwin/arm64 --debug
  swc4j-release publish --host --dry-run`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		osName, archName, err := publishTarget()
		if err != nil {
			return err
		}

		root, err := projectRoot()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(root)
		if err != nil {
			return err
		}

		eng := &engine.PublishEngine{
			Resolver: newResolver(root, cfg),
			Fs:       afero.NewOsFs(),
			Log:      log.StandardLogger(),
		}
		result, err := eng.Publish(cmd.Context(), engine.PublishOptions{
			OS:      osName,
			Arch:    archName,
			Debug:   publishDebug,
			Version: cfg.Release,
			DryRun:  publishDryRun,
		})
		if err != nil {
			return err
		}

		verb := "Published"
		if result.DryRun {
			verb = "Would publish"
		}
		info("%s %s", verb, result.Platform)
		info("  from  %s", relPath(root, result.Source))
		info("  to    %s", relPath(root, result.Destination))
		if !result.DryRun {
			detail("%d bytes", result.Bytes)
		}
		return nil
	},
}

// publishTarget returns the (os, arch) names selected by the flags.
func publishTarget() (string, string, error) {
	switch {
	case publishHost:
		osName, archName := target.Host()
		return osName, archName, nil
	case publishPlatform != "":
		return target.ParseSpecifier(publishPlatform)
	default:
		return publishOS, publishArch, nil
	}
}

func init() {
	f := publishCmd.Flags()
	f.StringVarP(&publishOS, "os", "o", string(target.Windows), "target operating system (windows, linux, macos, android)")
	f.StringVarP(&publishArch, "arch", "a", string(target.X8664), "target architecture (x86, x86_64, arm, arm64)")
	f.BoolVarP(&publishDebug, "debug", "d", false, "publish the debug build instead of the release build")
	f.StringVar(&publishPlatform, "platform", "", "target as an os/arch specifier, e.g. linux/aarch64")
	f.BoolVar(&publishHost, "host", false, "target the running machine")
	f.BoolVar(&publishDryRun, "dry-run", false, "resolve and locate the library without copying it")

	publishCmd.MarkFlagsMutuallyExclusive("platform", "host")
	publishCmd.MarkFlagsMutuallyExclusive("platform", "os")
	publishCmd.MarkFlagsMutuallyExclusive("platform", "arch")
	publishCmd.MarkFlagsMutuallyExclusive("host", "os")
	publishCmd.MarkFlagsMutuallyExclusive("host", "arch")

	rootCmd.AddCommand(publishCmd)
}
