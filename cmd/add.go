package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/glowapp/sparklectl/internal/pbxproj"
	"github.com/glowapp/sparklectl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	addDryRun bool

	addCmd = &cobra.Command{
		Use:   "add <path/to/project.pbxproj>",
		Short: "Add Sparkle package references to a project descriptor",
		Long: `Insert Sparkle entries at the six locations an Xcode project needs:
the PBXBuildFile section, the Frameworks build phase, the target's
packageProductDependencies, the project's packageReferences, and the
XCRemoteSwiftPackageReference and XCSwiftPackageProductDependency sections.

The operation is idempotent: a fully configured project is left untouched,
and leftovers from an interrupted run are cleaned up before re-adding.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAdd(args[0])
		},
	}
)

func init() {
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Report edits without writing the file")
	rootCmd.AddCommand(addCmd)
}

func runAdd(path string) error {
	editor, dep, err := buildEditor(addDryRun)
	if err != nil {
		return err
	}
	printer := ui.NewPrinter(outWriter())

	sp := ui.NewSpinner("Updating package references...")
	sp.Start()
	res, err := editor.Add(path)
	sp.Stop()
	if err != nil {
		return fmt.Errorf("adding %s: %w", dep.Name, err)
	}

	if res.State == pbxproj.StateConfigured {
		printer.Notice("%s already in project", dep.Name)
		return nil
	}
	if res.Cleaned {
		printer.Notice("Cleaned up partial %s state from an earlier run", dep.Name)
	}
	for _, w := range res.Warnings {
		printer.Warn("%s", w)
	}
	if verbose {
		for _, section := range res.Applied {
			printer.Plain("  edited %s", section)
		}
	}

	switch {
	case addDryRun:
		printer.Notice("Dry run, %s not modified", filepath.Base(path))
	case len(res.Applied) == 0:
		printer.Warn("No insertion points found in %s", filepath.Base(path))
	default:
		printer.Success("Added %s %s references to %s", dep.Name, dep.Version, filepath.Base(path))
	}
	return nil
}
