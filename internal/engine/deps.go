package engine

import (
	"fmt"
	"strings"

	"github.com/quarry-cpp/quarry/internal/catalog"
)

// Aggregate link list variable names referenced by the generated build
// files.
const (
	LinkLibrariesVar     = "QUARRY_LINK_LIBRARIES"
	TestLinkLibrariesVar = "QUARRY_TEST_LINK_LIBRARIES"
)

// GenerateDependencies renders the dependencies artifact: one fetch/find
// block per resolved library, followed by the main and test-only aggregate
// link lists. The input is already ordered and deduplicated by the
// pipeline, so re-running with the same input reproduces the same bytes.
func GenerateDependencies(resolutions []Resolution) string {
	var sb strings.Builder

	sb.WriteString(`# =============================================================================
# Dependencies (managed by Quarry - regenerate with 'quarry deps')
# =============================================================================
# Do not edit manually; this file is rewritten as a whole.

include(FetchContent)

`)

	for _, res := range resolutions {
		sb.WriteString(libraryBlock(res))
		sb.WriteString("\n")
	}

	writeLinkList(&sb, LinkLibrariesVar, aggregateLinks(resolutions, false))
	sb.WriteString("\n")
	writeLinkList(&sb, TestLinkLibrariesVar, aggregateLinks(resolutions, true))

	return sb.String()
}

// libraryBlock renders the per-library section: option variables, raw
// pre/post text, and the fetch declaration or find_package call.
func libraryBlock(res Resolution) string {
	lib := res.Library

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n", lib.Name))

	for _, line := range res.VarLines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	// cmake_pre/cmake_post are opaque trusted text, inserted verbatim.
	if lib.CMakePre != "" {
		sb.WriteString(strings.TrimSpace(lib.CMakePre))
		sb.WriteString("\n")
	}

	if lib.SystemPackage {
		pkg := lib.FindPackageName
		if pkg == "" {
			pkg = lib.Name
		}
		sb.WriteString(fmt.Sprintf("find_package(%s REQUIRED)\n", pkg))
	} else if lib.Fetch != nil {
		sb.WriteString("FetchContent_Declare(\n")
		sb.WriteString(fmt.Sprintf("    %s\n", lib.ID))
		sb.WriteString(fmt.Sprintf("    GIT_REPOSITORY %s\n", lib.Fetch.Repository))
		sb.WriteString(fmt.Sprintf("    GIT_TAG %s\n", lib.Fetch.Tag))
		if lib.Fetch.SourceSubdir != "" {
			sb.WriteString(fmt.Sprintf("    SOURCE_SUBDIR %s\n", lib.Fetch.SourceSubdir))
		}
		sb.WriteString(")\n")
		sb.WriteString(fmt.Sprintf("FetchContent_MakeAvailable(%s)\n", lib.ID))
	}

	if lib.CMakePost != "" {
		sb.WriteString(strings.TrimSpace(lib.CMakePost))
		sb.WriteString("\n")
	}

	for _, line := range res.DefineLines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// aggregateLinks collects link targets across resolutions, deduplicated
// preserving first-seen order. testing selects the test-only aggregate.
func aggregateLinks(resolutions []Resolution, testing bool) []string {
	seen := make(map[string]bool)
	var targets []string

	for _, res := range resolutions {
		if (res.Library.Category == catalog.CategoryTesting) != testing {
			continue
		}
		for _, target := range res.LinkTargets() {
			if seen[target] {
				continue
			}
			seen[target] = true
			targets = append(targets, target)
		}
	}

	return targets
}

func writeLinkList(sb *strings.Builder, name string, targets []string) {
	if len(targets) == 0 {
		sb.WriteString(fmt.Sprintf("set(%s)\n", name))
		return
	}

	sb.WriteString(fmt.Sprintf("set(%s\n", name))
	for _, target := range targets {
		sb.WriteString(fmt.Sprintf("    %s\n", target))
	}
	sb.WriteString(")\n")
}
