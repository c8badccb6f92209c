package cmd

import (
	"context"
	"net/url"
	"path"
	"time"

	"github.com/danjacques/gofslock/fslock"

	"github.com/poppolopoppo/llvm-prebuilt/compile"
	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/internal/hal"
	"github.com/poppolopoppo/llvm-prebuilt/internal/io"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * install command
 ***************************************/

type InstallFlags struct {
	Force utils.BoolVar
}

var gInstallFlags = &InstallFlags{
	Force: base.INHERITABLE_FALSE,
}

func (flags *InstallFlags) Flags(cfv utils.CommandFlagsVisitor) {
	cfv.Variable("Force", "reinstall even when the package is already present", &flags.Force)
}

var CommandInstall = utils.NewCommand(
	CATEGORY_TOOLCHAIN, "install",
	"download, verify and extract the selected toolchain",
	utils.OptionCommandParsableFlags("Install", "install options", gInstallFlags),
	utils.OptionCommandRun(func(cc utils.CommandContext) error {
		flags := compile.GetToolchainFlags()
		tc, err := compile.NewToolchain(flags)
		if err != nil {
			return err
		}
		return InstallToolchain(context.Background(), tc, gInstallFlags.Force.Get())
	}))

/***************************************
 * Install pipeline
 ***************************************/

// InstallToolchain is shared by every command needing the package on disk.
// A file lock serializes concurrent runs targeting the same package.
func InstallToolchain(ctx context.Context, tc compile.Toolchain, force bool) error {
	if !force && tc.IsInstalled() {
		base.LogVerbose(LogCmd, "%v already installed in %q", tc, tc.PackageDir())
		return nil
	}

	utils.UFS.Mkdir(utils.UFS.Transient)
	lockFile := utils.UFS.Transient.File(tc.PackageId().ShortString() + ".lock")

	lock, err := fslock.Lock(lockFile.String())
	for err == fslock.ErrLockHeld {
		base.LogWarningOnce(LogCmd, "%v is being installed by another process, waiting...", tc)
		time.Sleep(100 * time.Millisecond)
		lock, err = fslock.Lock(lockFile.String())
	}
	if err != nil {
		return err
	}
	defer lock.Unlock()

	// a concurrent run may have finished the install while we waited
	if !force && tc.IsInstalled() {
		return nil
	}
	return installToolchainLocked(ctx, tc)
}

func installToolchainLocked(ctx context.Context, tc compile.Toolchain) error {
	source, err := tc.Source()
	if err != nil {
		return err
	}

	archive, err := fetchArchive(ctx, source)
	if err != nil {
		return err
	}

	packageDir := tc.PackageDir()

	// wipe stale or partial content, the manifest is only written on success
	if packageDir.Exists() {
		if err = utils.UFS.RemoveAll(packageDir); err != nil {
			return err
		}
	}
	utils.UFS.Mkdir(packageDir)

	var extracted utils.FileSet
	if archive.Ext() == ".dmg" {
		extracted, err = io.ExtractDiskImage(ctx, archive, packageDir)
	} else {
		extracted, err = io.ExtractArchive(archive, packageDir, true, nil)
	}
	if err != nil {
		return err
	}

	files := base.StringSet{}
	for _, it := range extracted {
		files.Append(utils.SanitizePath(it.Relative(packageDir), '/'))
	}

	toolchainFlags := compile.GetToolchainFlags()
	if err = tc.WriteFilesList(files, toolchainFlags.Compression); err != nil {
		return err
	}

	host := hal.CurrentHostInfo()
	manifest := &compile.InstallManifest{
		PackageId:   tc.PackageId(),
		Toolchain:   tc,
		URL:         source.URL,
		Sha256:      source.Sha256,
		Fqdn:        host.Fqdn,
		NumCores:    host.NumCores,
		TotalMemory: host.TotalMemory,
		InstalledAt: time.Now().UTC(),
		NumFiles:    files.Len(),
	}
	if err = compile.WriteInstallManifest(tc.ManifestFile(), manifest); err != nil {
		return err
	}

	base.LogClaim(LogCmd, "installed %v (%d files) in %q", tc, files.Len(), packageDir)
	return nil
}

// fetchArchive reuses a transient download when its checksum still holds,
// otherwise it transfers the asset and validates it. Validation failures
// are fatal, a corrupted asset must never be extracted.
func fetchArchive(ctx context.Context, source compile.ToolchainSource) (utils.Filename, error) {
	parsed, err := url.Parse(source.URL)
	if err != nil {
		return utils.Filename{}, err
	}
	dst := utils.UFS.Transient.File(path.Base(parsed.Path))

	if dst.Exists() {
		if err = io.VerifyChecksum(dst, source.Sha256); err == nil {
			base.LogVerbose(LogCmd, "reusing cached download %q", dst)
			return dst, nil
		}
		base.LogWarning(LogCmd, "cached download rejected: %v", err)
	}

	if err = io.DownloadFile(ctx, dst, source.URL); err != nil {
		return utils.Filename{}, err
	}
	if err = io.VerifyChecksum(dst, source.Sha256); err != nil {
		return utils.Filename{}, err
	}
	return dst, nil
}
