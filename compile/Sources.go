package compile

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * Source table
 ***************************************/

// The table is data, not code: adding a toolchain release must never
// require touching logic.

//go:embed sources.json
var rawSourcesJson []byte

type ToolchainSource struct {
	URL    string            `json:"url"`
	Sha256 utils.Fingerprint `json:"sha256"`
}

type SourcesTable map[string]map[DistributionType]map[HostOs]map[HostArch]ToolchainSource

var getSourcesTable = sync.OnceValue(func() SourcesTable {
	table := SourcesTable{}
	if err := base.JsonDeserialize(&table, bytes.NewReader(rawSourcesJson)); err != nil {
		base.LogPanic(LogCompile, "invalid embedded source table: %v", err)
	}
	return table
})

// GetToolchainSource fails closed: a missing key at any level is a fatal
// configuration error naming the combination, never a nearest match.
func GetToolchainSource(version string, dist DistributionType, os HostOs, arch HostArch) (ToolchainSource, error) {
	table := getSourcesTable()

	variants, ok := table[version]
	if !ok {
		return ToolchainSource{}, fmt.Errorf(
			"llvm-prebuilt: unknown version %q, known versions are %v",
			version, GetToolchainVersions())
	}
	oses, ok := variants[dist]
	if !ok {
		return ToolchainSource{}, fmt.Errorf(
			"llvm-prebuilt: version %s does not publish a %v distribution",
			version, dist)
	}
	archs, ok := oses[os]
	if !ok {
		return ToolchainSource{}, fmt.Errorf(
			"llvm-prebuilt: binary package for LLVM %s (%v) not available for %v",
			version, dist, os)
	}
	source, ok := archs[arch]
	if !ok {
		return ToolchainSource{}, fmt.Errorf(
			"llvm-prebuilt: binary package for LLVM %s (%v) not available for %v/%v",
			version, dist, os, arch)
	}
	return source, nil
}

// HasToolchainSource is the non-fatal lookup used by variant selection.
func HasToolchainSource(version string, dist DistributionType, os HostOs, arch HostArch) bool {
	_, err := GetToolchainSource(version, dist, os, arch)
	return err == nil
}

func GetToolchainVersions() []string {
	table := getSourcesTable()
	versions := make([]string, 0, len(table))
	for it := range table {
		versions = append(versions, it)
	}
	sort.Strings(versions)
	return versions
}

func GetToolchainDistributions(version string) (result []DistributionType) {
	variants := getSourcesTable()[version]
	for _, it := range GetDistributionTypes() {
		if _, ok := variants[it]; ok {
			result = append(result, it)
		}
	}
	return
}
