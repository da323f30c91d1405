package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/glowapp/sparklectl/internal/pbxproj"
	"github.com/glowapp/sparklectl/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <path/to/project.pbxproj>",
	Short: "Report whether Sparkle is wired into a project descriptor",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runStatus(args[0])
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(path string) error {
	editor, dep, err := buildEditor(false)
	if err != nil {
		return err
	}
	printer := ui.NewPrinter(outWriter())

	report, err := editor.Inspect(path)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", filepath.Base(path), err)
	}

	switch report.State {
	case pbxproj.StateConfigured:
		printer.Success("%s is configured", dep.Name)
	case pbxproj.StatePartial:
		printer.Warn("%s is partially configured, run `sparklectl add` to repair", dep.Name)
	default:
		printer.Notice("%s is absent", dep.Name)
	}

	if report.AnchorPresent {
		printer.Plain("Anchor dependency: present")
	} else {
		printer.Warn("Anchor dependency missing, anchored insertion will be skipped")
	}
	return nil
}
