package compile

import (
	"sort"
	"strings"
	"testing"
)

func TestGetToolchainSource(t *testing.T) {
	source, err := GetToolchainSource("18.1.8", DIST_CLANG, OS_LINUX, ARCH_X86_64)
	if err != nil {
		t.Fatalf("GetToolchainSource: %v", err)
	}
	if source.URL == "" || !source.Sha256.Valid() {
		t.Errorf("GetToolchainSource: incomplete entry %+v", source)
	}
	if !strings.Contains(source.URL, "18.1.8") {
		t.Errorf("GetToolchainSource: url does not reference the version: %q", source.URL)
	}
}

func TestGetToolchainSource_FailsClosed(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		dist     DistributionType
		os       HostOs
		arch     HostArch
		expected string // substring the error must carry
	}{
		{"unknown version", "99.0.0", DIST_CLANG, OS_LINUX, ARCH_X86_64, "99.0.0"},
		{"missing distribution", "17.0.6", DIST_ARM_EMBEDDED, OS_LINUX, ARCH_X86_64, "arm-embedded"},
		{"missing os", "17.0.6", DIST_CLANG, OS_MACOS, ARCH_X86_64, "Macos"},
		{"missing arch", "17.0.6", DIST_CLANG, OS_WINDOWS, ARCH_ARM64, "armv8"},
	}
	for _, it := range tests {
		t.Run(it.name, func(t *testing.T) {
			_, err := GetToolchainSource(it.version, it.dist, it.os, it.arch)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), it.expected) {
				t.Errorf("error should name the offending combination, got %v", err)
			}
		})
	}
}

func TestHasToolchainSource(t *testing.T) {
	if !HasToolchainSource("19.1.5", DIST_ARM_EMBEDDED, OS_WINDOWS, ARCH_X86_64) {
		t.Errorf("HasToolchainSource: expected a hit")
	}
	if HasToolchainSource("19.1.5", DIST_ARM_EMBEDDED, OS_WINDOWS, ARCH_ARM64) {
		t.Errorf("HasToolchainSource: expected a miss")
	}
}

func TestGetToolchainVersions(t *testing.T) {
	versions := GetToolchainVersions()
	if !sort.StringsAreSorted(versions) {
		t.Errorf("GetToolchainVersions: expected sorted output, got %v", versions)
	}
	for _, expected := range []string{"17.0.6", "18.1.8", "19.1.5", "19.1.7"} {
		if _, ok := sort.Find(len(versions), func(i int) int { return strings.Compare(expected, versions[i]) }); !ok {
			t.Errorf("GetToolchainVersions: missing %q in %v", expected, versions)
		}
	}
}

func TestGetToolchainDistributions(t *testing.T) {
	dists := GetToolchainDistributions("19.1.7")
	if len(dists) != 2 {
		t.Fatalf("GetToolchainDistributions: expected 2 variants, got %v", dists)
	}
	if dists[0] != DIST_CLANG || dists[1] != DIST_APPLE_DMG {
		t.Errorf("GetToolchainDistributions: unexpected variants %v", dists)
	}
	if len(GetToolchainDistributions("no-such-version")) != 0 {
		t.Errorf("GetToolchainDistributions: unknown version should list nothing")
	}
}

func TestApplesDmgEntriesUseDmgAssets(t *testing.T) {
	for _, version := range GetToolchainVersions() {
		source, err := GetToolchainSource(version, DIST_APPLE_DMG, OS_MACOS, ARCH_ARM64)
		if err != nil {
			continue
		}
		if !strings.HasSuffix(source.URL, ".dmg") {
			t.Errorf("%s: apple-dmg entry should reference a disk image, got %q", version, source.URL)
		}
	}
}
