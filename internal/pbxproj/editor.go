// Package pbxproj edits Sparkle package references in an Xcode
// project.pbxproj file. The file is treated as text: every edit is a
// targeted substitution keyed to known anchor entries, never a full parse of
// the descriptor grammar.
package pbxproj

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/glowapp/sparklectl/internal/sparkle"
)

// State classifies how much of the managed dependency a descriptor contains.
type State int

const (
	// StateAbsent means no trace of the managed dependency.
	StateAbsent State = iota
	// StatePartial means some entries exist but not a complete set,
	// typically after an interrupted run.
	StatePartial
	// StateConfigured means the dependency is fully wired in.
	StateConfigured
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StatePartial:
		return "partial"
	case StateConfigured:
		return "configured"
	default:
		return "unknown"
	}
}

// Detect classifies content with respect to the managed dependency. Each of
// the six locations is probed with the same pattern remove uses, so
// "configured" means every location holds a recognizable entry and anything
// less with a reserved identifier still present is partial state.
func Detect(content string, dep sparkle.Dependency) State {
	matched := 0
	probes := removals(dep)
	for _, re := range probes {
		if re.MatchString(content) {
			matched++
		}
	}
	switch {
	case matched == len(probes):
		return StateConfigured
	case matched > 0:
		return StatePartial
	case strings.Contains(content, dep.IDPrefix):
		// Mangled leftovers no probe recognizes anymore.
		return StatePartial
	default:
		return StateAbsent
	}
}

// Options configure an Editor.
type Options struct {
	// DryRun computes every edit but never writes the descriptor.
	DryRun bool
}

// Editor applies add and remove edits for one managed dependency.
type Editor struct {
	dep    sparkle.Dependency
	dryRun bool
}

// NewEditor returns an editor for the given dependency.
func NewEditor(dep sparkle.Dependency, opts Options) *Editor {
	return &Editor{dep: dep, dryRun: opts.DryRun}
}

// Result reports what an operation did.
type Result struct {
	// State of the descriptor before the operation.
	State State
	// Changed is true when the descriptor was (or, in dry-run mode, would
	// have been) rewritten.
	Changed bool
	// Cleaned is true when partial state was stripped before re-adding.
	Cleaned bool
	// Applied lists the sections an add actually edited.
	Applied []string
	// Warnings lists insertions skipped because no anchor matched.
	Warnings []string
}

// Report describes a descriptor for the status command.
type Report struct {
	State State
	// AnchorPresent is true when the anchor dependency's package
	// reference exists, i.e. anchored insertion will work.
	AnchorPresent bool
}

// Add inserts the managed dependency's entries at the six known locations.
// Already-configured descriptors are left untouched; partial state is
// stripped and written back before a fresh insertion. A missing anchor skips
// that single insertion with a warning instead of failing the run.
func (e *Editor) Add(path string) (Result, error) {
	content, err := readDescriptor(path)
	if err != nil {
		return Result{}, err
	}

	res := Result{State: Detect(content, e.dep)}
	switch res.State {
	case StateConfigured:
		return res, nil
	case StatePartial:
		cleaned := stripAll(content, e.dep)
		if e.dryRun {
			content = cleaned
		} else {
			if err := writeDescriptor(path, cleaned); err != nil {
				return res, err
			}
			if content, err = readDescriptor(path); err != nil {
				return res, err
			}
		}
		res.Cleaned = true
	}

	updated := content
	for _, ins := range insertions(e.dep) {
		next, ok := ins.apply(updated)
		if !ok {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("anchor for %s not found, section left unmodified", ins.section))
			continue
		}
		updated = next
		res.Applied = append(res.Applied, ins.section)
	}

	if updated == content {
		res.Changed = res.Cleaned
		return res, nil
	}
	if !e.dryRun {
		if err := writeDescriptor(path, updated); err != nil {
			return res, err
		}
	}
	res.Changed = true
	return res, nil
}

// Remove deletes every entry carrying the reserved identifier prefix,
// whether it was inserted at the anchored position or the fallback one.
// Locations with nothing to remove are silently skipped.
func (e *Editor) Remove(path string) (Result, error) {
	content, err := readDescriptor(path)
	if err != nil {
		return Result{}, err
	}

	res := Result{State: Detect(content, e.dep)}
	cleaned := stripAll(content, e.dep)
	if cleaned == content {
		return res, nil
	}
	if !e.dryRun {
		if err := writeDescriptor(path, cleaned); err != nil {
			return res, err
		}
	}
	res.Changed = true
	return res, nil
}

// Inspect reports the descriptor's state without modifying it.
func (e *Editor) Inspect(path string) (Report, error) {
	content, err := readDescriptor(path)
	if err != nil {
		return Report{}, err
	}
	return Report{
		State:         Detect(content, e.dep),
		AnchorPresent: strings.Contains(content, anchorPackageRefID),
	}, nil
}

func readDescriptor(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading descriptor: %w", err)
	}
	return string(data), nil
}

// writeDescriptor rewrites the descriptor atomically: the new content lands
// in a temp file in the same directory and is renamed over the original.
func writeDescriptor(path string, content string) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".sparklectl-*")
	if err != nil {
		return fmt.Errorf("creating temp descriptor: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing descriptor: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("setting descriptor mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp descriptor: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing descriptor: %w", err)
	}
	return nil
}
