// Package sparkle describes the Sparkle package entries that sparklectl
// manages inside a project descriptor.
package sparkle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Default requirement used when no configuration overrides it.
const (
	DefaultRepositoryURL = "https://github.com/sparkle-project/Sparkle"
	DefaultVersion       = "2.8.1"
)

// Reserved object identifiers. They never change between runs so that a
// later remove (or a partial-state cleanup) can find entries written by any
// earlier run.
const (
	packageRefID = "27SPARKLE00000000001"
	productRefID = "27SPARKLE00000000002"
	buildFileID  = "27SPARKLE00000000003"
	idPrefix     = "27SPARKLE"
)

// Dependency is the immutable description of the managed package: the
// repository requirement plus the reserved identifiers used to locate its
// entries in the descriptor file. Construct it once per run via New.
type Dependency struct {
	Name          string
	RepositoryURL string
	Version       string

	PackageRefID string
	ProductRefID string
	BuildFileID  string

	// IDPrefix matches any identifier minted by this tool, including
	// stale ones left behind by interrupted or older runs.
	IDPrefix string
}

// New builds the managed dependency from the effective repository URL and
// version requirement.
func New(repositoryURL, version string) Dependency {
	return Dependency{
		Name:          "Sparkle",
		RepositoryURL: repositoryURL,
		Version:       version,
		PackageRefID:  packageRefID,
		ProductRefID:  productRefID,
		BuildFileID:   buildFileID,
		IDPrefix:      idPrefix,
	}
}

// Default returns the dependency with the built-in requirement.
func Default() Dependency {
	return New(DefaultRepositoryURL, DefaultVersion)
}

// Validate checks that the requirement can be written into a descriptor
// without producing an entry Xcode would reject.
func (d Dependency) Validate() error {
	if strings.TrimSpace(d.RepositoryURL) == "" {
		return errors.New("repository URL must not be empty")
	}
	if _, err := semver.StrictNewVersion(d.Version); err != nil {
		return fmt.Errorf("invalid version %q: %w", d.Version, err)
	}
	return nil
}
