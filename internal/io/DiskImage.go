package io

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * Apple disk images
 ***************************************/

// ExtractDiskImage mounts a dmg read-only, copies the bundled toolchain
// tree into dst and detaches. There is no rollback on a partial copy, the
// caller recognizes an incomplete install by its missing manifest.
func ExtractDiskImage(ctx context.Context, src utils.Filename, dst utils.Directory) (utils.FileSet, error) {
	if runtime.GOOS != "darwin" {
		return nil, fmt.Errorf("disk images can only be extracted on macOS hosts")
	}

	mountPoint := utils.UFS.Transient.Folder("mnt-" + strings.TrimSuffix(src.Basename, src.Ext()))
	utils.UFS.Mkdir(mountPoint)

	base.LogInfo(LogIO, "mounting %q on %q", src, mountPoint)
	attach := exec.CommandContext(ctx, "hdiutil", "attach",
		"-nobrowse", "-readonly", "-quiet",
		"-mountpoint", mountPoint.String(), src.String())
	if outp, err := attach.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("hdiutil attach %q: %v\n%s", src, err, outp)
	}

	defer func() {
		detach := exec.Command("hdiutil", "detach", "-quiet", mountPoint.String())
		if outp, err := detach.CombinedOutput(); err != nil {
			base.LogWarning(LogIO, "hdiutil detach %q: %v\n%s", mountPoint, err, outp)
		}
	}()

	root, err := diskImageRoot(mountPoint)
	if err != nil {
		return nil, err
	}
	return copyTree(root, dst)
}

// diskImageRoot locates the toolchain folder inside the mounted volume:
// upstream images wrap everything in a single versioned directory.
func diskImageRoot(mountPoint utils.Directory) (utils.Directory, error) {
	entries, err := os.ReadDir(mountPoint.String())
	if err != nil {
		return "", err
	}
	for _, it := range entries {
		if it.IsDir() && !strings.HasPrefix(it.Name(), ".") {
			return mountPoint.Folder(it.Name()), nil
		}
	}
	return "", fmt.Errorf("no toolchain folder found inside %q", mountPoint)
}

func copyTree(src, dst utils.Directory) (copied utils.FileSet, err error) {
	err = filepath.WalkDir(src.String(), func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		// symlinks inside the bundle point at the volume, skip them
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		rel, err := filepath.Rel(src.String(), path)
		if err != nil {
			return err
		}

		outp := dst.AbsoluteFile(rel)
		if err = utils.UFS.Copy(utils.MakeFilename(path), outp); err != nil {
			return err
		}
		if info, er := d.Info(); er == nil {
			_ = os.Chmod(outp.String(), info.Mode().Perm())
		}

		copied.Append(outp)
		return nil
	})
	return
}
