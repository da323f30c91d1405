package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glowapp/sparklectl/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	removeDryRun bool
	removeYes    bool

	// isStdinTerminal can be overridden in tests.
	isStdinTerminal = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	removeCmd = &cobra.Command{
		Use:   "remove <path/to/project.pbxproj>",
		Short: "Remove all Sparkle package references from a project descriptor",
		Long: `Delete every Sparkle entry carrying a reserved sparklectl identifier,
including stale entries left by interrupted or older runs. Locations without
a matching entry are skipped silently.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRemove(args[0])
		},
	}
)

func init() {
	removeCmd.Flags().BoolVar(&removeDryRun, "dry-run", false, "Report edits without writing the file")
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the interactive confirmation")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(path string) error {
	editor, dep, err := buildEditor(removeDryRun)
	if err != nil {
		return err
	}
	printer := ui.NewPrinter(outWriter())

	// Only prompt on a terminal; scripted invocations proceed directly.
	if !removeYes && !removeDryRun && isStdinTerminal() {
		confirmed, err := confirmRemoval(dep.Name, path)
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if !confirmed {
			printer.Plain("Removal cancelled.")
			return nil
		}
	}

	res, err := editor.Remove(path)
	if err != nil {
		return fmt.Errorf("removing %s: %w", dep.Name, err)
	}

	switch {
	case !res.Changed:
		printer.Notice("No %s references found in %s", dep.Name, filepath.Base(path))
	case removeDryRun:
		printer.Notice("Dry run, %s not modified", filepath.Base(path))
	default:
		printer.Success("Removed %s references from %s", dep.Name, filepath.Base(path))
	}
	return nil
}

func confirmRemoval(name, path string) (bool, error) {
	fmt.Fprintf(errWriter(), "Remove all %s references from %s? [y/N]: ", name, path)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
