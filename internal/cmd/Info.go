package cmd

import (
	"fmt"
	"os"

	"github.com/poppolopoppo/llvm-prebuilt/compile"
	"github.com/poppolopoppo/llvm-prebuilt/internal/hal"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * info command
 ***************************************/

var CommandInfo = utils.NewCommand(
	CATEGORY_TOOLCHAIN, "info",
	"show the resolved toolchain, its package identity and install state",
	utils.OptionCommandRun(func(cc utils.CommandContext) error {
		toolchainFlags := compile.GetToolchainFlags()
		tc, err := compile.NewToolchain(toolchainFlags)
		if err != nil {
			return err
		}

		source, err := tc.Source()
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "toolchain:    %v\n", tc)
		fmt.Fprintf(os.Stdout, "version:      %s\n", tc.Version)
		fmt.Fprintf(os.Stdout, "distribution: %v (%s)\n", tc.Distribution, tc.Distribution.Description())
		fmt.Fprintf(os.Stdout, "host:         %v/%v\n", tc.HostOs, tc.HostArch)
		if tc.IsCross() {
			fmt.Fprintf(os.Stdout, "target cpu:   %s\n", tc.TargetCpu)
		}
		fmt.Fprintf(os.Stdout, "package id:   %v\n", tc.PackageId().ShortString())
		fmt.Fprintf(os.Stdout, "package dir:  %v\n", tc.PackageDir())
		fmt.Fprintf(os.Stdout, "url:          %s\n", source.URL)
		fmt.Fprintf(os.Stdout, "sha256:       %v\n", source.Sha256)

		host := hal.CurrentHostInfo()
		fmt.Fprintf(os.Stdout, "machine:      %s (%d cores, %v)\n",
			host.Fqdn, host.NumCores, host.TotalMemory)

		manifest, err := tc.FindInstallManifest()
		if err != nil {
			return err
		}
		if manifest == nil {
			fmt.Fprintf(os.Stdout, "installed:    no\n")
			return nil
		}
		fmt.Fprintf(os.Stdout, "installed:    %v (%d files, by %s)\n",
			manifest.InstalledAt.Local(), manifest.NumFiles, manifest.Fqdn)
		return nil
	}))

/***************************************
 * versions command
 ***************************************/

var CommandVersions = utils.NewCommand(
	CATEGORY_TOOLCHAIN, "versions",
	"list every toolchain release in the embedded source table",
	utils.OptionCommandRun(func(cc utils.CommandContext) error {
		hostOs, hostArch, err := compile.CurrentHost()
		if err != nil {
			return err
		}

		for _, version := range compile.GetToolchainVersions() {
			for _, dist := range compile.GetToolchainDistributions(version) {
				available := ""
				if !compile.HasToolchainSource(version, dist, hostOs, hostArch) {
					available = "  (not available for this host)"
				}
				fmt.Fprintf(os.Stdout, "%-10s %v%s\n", version, dist, available)
			}
		}
		return nil
	}))
