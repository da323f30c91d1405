package cmd

import (
	"context"
	"fmt"

	"github.com/glowapp/sparklectl/internal/config"
	"github.com/glowapp/sparklectl/internal/pbxproj"
	"github.com/glowapp/sparklectl/internal/sparkle"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	configErr error

	rootCmd = &cobra.Command{
		Use:   "sparklectl",
		Short: "sparklectl - Sparkle integration for Xcode projects",
		Long: `sparklectl wires the Sparkle update framework into (and out of) an Xcode
project.pbxproj without opening Xcode. Edits are idempotent: running add
twice, or add after an interrupted run, converges on the same project file.`,
		Version:       fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetContext attaches the process context so commands observe cancellation.
func SetContext(ctx context.Context) {
	rootCmd.SetContext(ctx)
}

// RootCmd exposes the root command for documentation generation.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default is $HOME/.config/sparklectl/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false,
		"Show per-section edit detail")
}

func initConfig() {
	configErr = config.InitConfig(cfgFile)
}

// buildEditor resolves the effective configuration into an editor and the
// dependency it manages.
func buildEditor(dryRun bool) (*pbxproj.Editor, sparkle.Dependency, error) {
	if configErr != nil {
		return nil, sparkle.Dependency{}, fmt.Errorf("configuration error: %w", configErr)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, sparkle.Dependency{}, err
	}
	dep := cfg.Dependency()
	return pbxproj.NewEditor(dep, pbxproj.Options{DryRun: dryRun}), dep, nil
}
