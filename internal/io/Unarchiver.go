package io

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/mholt/archiver/v3"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * Archive extraction
 ***************************************/

// archiveEntryPath recovers the in-archive relative path: archiver.File
// only exposes the basename, the full path hides in the format header.
func archiveEntryPath(f archiver.File) string {
	switch header := f.Header.(type) {
	case *tar.Header:
		return header.Name
	case zip.FileHeader:
		return header.Name
	default:
		return f.Name()
	}
}

// StripArchiveRoot drops the single top-level folder upstream archives wrap
// their content in. Returns "" for the root entry itself.
func StripArchiveRoot(rel string) string {
	if at := strings.IndexByte(rel, '/'); at != -1 {
		return rel[at+1:]
	}
	return ""
}

// ExtractArchive walks src into dst and returns every file written.
// stripRoot unwraps the archive's top-level folder, acceptList (when not
// nil) filters entries by their relative path.
func ExtractArchive(src utils.Filename, dst utils.Directory, stripRoot bool, acceptList *regexp.Regexp) (extracted utils.FileSet, err error) {
	base.LogInfo(LogIO, "extracting %q to %q", src, dst)

	err = archiver.Walk(src.String(), func(f archiver.File) error {
		defer f.Close()
		if f.IsDir() {
			return nil
		}

		rel := utils.SanitizePath(archiveEntryPath(f), '/')
		rel = strings.TrimPrefix(rel, "./")
		base.AssertMessage(func() bool { return len(rel) > 0 }, "empty entry path in %q", src)

		// refuse traversal outside of dst
		for _, part := range strings.Split(rel, "/") {
			if part == ".." {
				return fmt.Errorf("archive %q: refusing entry escaping destination: %q", src, rel)
			}
		}

		if stripRoot {
			if rel = StripArchiveRoot(rel); rel == "" {
				return nil
			}
		}
		if acceptList != nil && !acceptList.MatchString(rel) {
			return nil
		}

		outp := dst.AbsoluteFile(rel)
		if err := utils.UFS.MkdirEx(outp.Dirname); err != nil {
			return err
		}

		// llvm releases ship bin/clang++ and the runtime libraries as
		// symlinks, flattening them would leave the toolchain unusable
		if header, ok := f.Header.(*tar.Header); ok && header.Typeflag == tar.TypeSymlink {
			if err := extractSymlink(outp, rel, header.Linkname); err != nil {
				return fmt.Errorf("archive %q: %v", src, err)
			}
			extracted.Append(outp)
			return nil
		}

		fd, err := os.OpenFile(outp.String(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode().Perm())
		if err != nil {
			return err
		}
		if _, err = io.Copy(fd, f); err != nil {
			fd.Close()
			return err
		}
		if err = fd.Close(); err != nil {
			return err
		}

		if mtime := f.ModTime(); !mtime.IsZero() {
			_ = utils.UFS.SetMTime(outp, mtime)
		}

		extracted.Append(outp)
		return nil
	})

	if err != nil {
		return extracted, fmt.Errorf("extract %q: %v", src, err)
	}
	base.AssertMessage(func() bool { return extracted.Len() > 0 }, "%v: did not extract any files", src)

	base.LogVerbose(LogIO, "extracted %d files from %q", extracted.Len(), src)
	return extracted, nil
}

// extractSymlink recreates a link entry, refusing targets that would
// resolve outside of the extraction root.
func extractSymlink(outp utils.Filename, rel, linkname string) error {
	target := utils.SanitizePath(linkname, '/')
	if filepath.IsAbs(linkname) || strings.HasPrefix(target, "/") {
		return fmt.Errorf("refusing absolute symlink target %q for %q", linkname, rel)
	}
	if resolved := path.Join(path.Dir(rel), target); resolved == ".." || strings.HasPrefix(resolved, "../") {
		return fmt.Errorf("refusing symlink escaping destination: %q -> %q", rel, linkname)
	}

	// O_TRUNC semantics for links: replace whatever a previous run left
	_ = os.Remove(outp.String())
	return os.Symlink(target, outp.String())
}
