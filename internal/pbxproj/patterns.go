package pbxproj

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/glowapp/sparklectl/internal/sparkle"
)

// Anchor dependency entries. The editor has no general way to pick an
// insertion point, so it keys every edit to these known Lottie identifiers,
// which must appear verbatim in the descriptor.
const (
	anchorName         = "Lottie"
	anchorPackageName  = "lottie-spm"
	anchorBuildFileID  = "275915892F132A9200D0E60D"
	anchorProductRefID = "27AE10B12F10B1FC00E00DBC"
	anchorPackageRefID = "27AE10B02F10B1FC00E00DBC"
)

// Closing markers of the two sections that accept an anchor-independent
// fallback insertion.
const (
	endPackageRefSection = `/* End XCRemoteSwiftPackageReference section */`
	endProductDepSection = `/* End XCSwiftPackageProductDependency section */`
)

// insertion is one guarded edit. The anchored pattern places the new entry
// relative to the anchor dependency; fallback, when present, places it just
// before the section's closing marker instead.
type insertion struct {
	section      string
	anchored     *regexp.Regexp
	anchoredRepl string
	fallback     *regexp.Regexp
	fallbackRepl string
}

// apply returns the edited content and whether any insertion point matched.
func (i insertion) apply(content string) (string, bool) {
	if i.anchored.MatchString(content) {
		return i.anchored.ReplaceAllString(content, i.anchoredRepl), true
	}
	if i.fallback != nil && i.fallback.MatchString(content) {
		return i.fallback.ReplaceAllString(content, i.fallbackRepl), true
	}
	return content, false
}

// escapeRepl protects dynamic text (repository URLs, versions) from being
// interpreted as capture references by ReplaceAllString.
func escapeRepl(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

// insertions builds the six edits of an add, in descriptor order.
func insertions(dep sparkle.Dependency) []insertion {
	buildFileEntry := fmt.Sprintf(
		"\t\t%s /* %s in Frameworks */ = {isa = PBXBuildFile; productRef = %s /* %s */; };\n",
		dep.BuildFileID, dep.Name, dep.ProductRefID, dep.Name)

	packageRefBlock := fmt.Sprintf(
		"\t\t%s /* XCRemoteSwiftPackageReference %q */ = {\n"+
			"\t\t\tisa = XCRemoteSwiftPackageReference;\n"+
			"\t\t\trepositoryURL = %q;\n"+
			"\t\t\trequirement = {\n"+
			"\t\t\t\tkind = exactVersion;\n"+
			"\t\t\t\tversion = %s;\n"+
			"\t\t\t};\n"+
			"\t\t};\n",
		dep.PackageRefID, dep.Name, dep.RepositoryURL, dep.Version)

	productDepBlock := fmt.Sprintf(
		"\t\t%s /* XCSwiftPackageProductDependency %q */ = {\n"+
			"\t\t\tisa = XCSwiftPackageProductDependency;\n"+
			"\t\t\tpackage = %s /* XCRemoteSwiftPackageReference %q */;\n"+
			"\t\t\tproductName = %s;\n"+
			"\t\t};\n",
		dep.ProductRefID, dep.Name, dep.PackageRefID, dep.Name, dep.Name)

	anchorPackageRefBlock := fmt.Sprintf(
		`(?s)(\t\t%s /\* XCRemoteSwiftPackageReference "%s" \*/ = \{\n\t\t\tisa = XCRemoteSwiftPackageReference;.*?\n\t\t\};\n)`,
		anchorPackageRefID, anchorPackageName)

	anchorProductDepBlock := fmt.Sprintf(
		`(?s)(\t\t%s /\* %s \*/ = \{\n\t\t\tisa = XCSwiftPackageProductDependency;.*?\n\t\t\};\n)`,
		anchorProductRefID, anchorName)

	return []insertion{
		{
			section: "PBXBuildFile entry",
			anchored: regexp.MustCompile(fmt.Sprintf(
				`(\t\t%s /\* %s in Frameworks \*/ = \{isa = PBXBuildFile; productRef = %s /\* %s \*/; \};\n)(/\* End PBXBuildFile section \*/)`,
				anchorBuildFileID, anchorName, anchorProductRefID, anchorName)),
			anchoredRepl: "${1}" + escapeRepl(buildFileEntry) + "${2}",
		},
		{
			section: "Frameworks build phase entry",
			anchored: regexp.MustCompile(fmt.Sprintf(
				`(\t\t\t\t%s /\* %s in Frameworks \*/,\n)`,
				anchorBuildFileID, anchorName)),
			anchoredRepl: fmt.Sprintf("${1}\t\t\t\t%s /* %s in Frameworks */,\n",
				dep.BuildFileID, dep.Name),
		},
		{
			section: "packageProductDependencies entry",
			anchored: regexp.MustCompile(fmt.Sprintf(
				`(packageProductDependencies = \(\n\t\t\t\t%s /\* %s \*/,\n)`,
				anchorProductRefID, anchorName)),
			anchoredRepl: fmt.Sprintf("${1}\t\t\t\t%s /* %s */,\n",
				dep.ProductRefID, dep.Name),
		},
		{
			section: "packageReferences entry",
			anchored: regexp.MustCompile(fmt.Sprintf(
				`(packageReferences = \(\n\t\t\t\t%s /\* XCRemoteSwiftPackageReference "%s" \*/,\n)`,
				anchorPackageRefID, anchorPackageName)),
			anchoredRepl: fmt.Sprintf("${1}\t\t\t\t%s /* XCRemoteSwiftPackageReference %q */,\n",
				dep.PackageRefID, dep.Name),
		},
		{
			section:      "XCRemoteSwiftPackageReference block",
			anchored:     regexp.MustCompile(anchorPackageRefBlock),
			anchoredRepl: "${1}" + escapeRepl(packageRefBlock),
			fallback:     regexp.MustCompile(regexp.QuoteMeta(endPackageRefSection)),
			fallbackRepl: escapeRepl(packageRefBlock) + endPackageRefSection,
		},
		{
			section:      "XCSwiftPackageProductDependency block",
			anchored:     regexp.MustCompile(anchorProductDepBlock),
			anchoredRepl: "${1}" + escapeRepl(productDepBlock),
			fallback:     regexp.MustCompile(regexp.QuoteMeta(endProductDepSection)),
			fallbackRepl: escapeRepl(productDepBlock) + endProductDepSection,
		},
	}
}

// removals builds the deletion patterns of a remove. Entries match on the
// reserved identifier prefix rather than the exact IDs, so stale entries from
// older runs are cleaned up too.
func removals(dep sparkle.Dependency) []*regexp.Regexp {
	prefix := regexp.QuoteMeta(dep.IDPrefix) + `\d+`
	name := regexp.QuoteMeta(dep.Name)

	return []*regexp.Regexp{
		// packageReferences entry
		regexp.MustCompile(fmt.Sprintf(
			`\t\t\t\t%s /\* XCRemoteSwiftPackageReference "%s" \*/,\n`, prefix, name)),
		// packageProductDependencies entry
		regexp.MustCompile(fmt.Sprintf(`\t\t\t\t%s /\* %s \*/,\n`, prefix, name)),
		// Frameworks build phase entry
		regexp.MustCompile(fmt.Sprintf(`\t\t\t\t%s /\* %s in Frameworks \*/,\n`, prefix, name)),
		// PBXBuildFile entry
		regexp.MustCompile(fmt.Sprintf(
			`\t\t%s /\* %s in Frameworks \*/ = \{isa = PBXBuildFile; productRef = %s /\* %s \*/; \};\n`,
			prefix, name, prefix, name)),
		// XCRemoteSwiftPackageReference block
		regexp.MustCompile(fmt.Sprintf(
			`(?s)\t\t%s /\* XCRemoteSwiftPackageReference "%s" \*/ = \{\n.*?\n\t\t\};\n`, prefix, name)),
		// XCSwiftPackageProductDependency block
		regexp.MustCompile(fmt.Sprintf(
			`(?s)\t\t%s /\* XCSwiftPackageProductDependency "%s" \*/ = \{\n.*?\n\t\t\};\n`, prefix, name)),
	}
}

// stripAll applies every removal pattern and returns the cleaned content.
func stripAll(content string, dep sparkle.Dependency) string {
	for _, re := range removals(dep) {
		content = re.ReplaceAllString(content, "")
	}
	return content
}
