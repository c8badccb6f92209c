package utils

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestDirectory_FolderFile(t *testing.T) {
	dir := MakeDirectory(filepath.Join("root", "cache"))
	sub := dir.Folder("packages", "19.1.7")
	if sub.String() != filepath.Join("root", "cache", "packages", "19.1.7") {
		t.Errorf("Folder: got %v", sub)
	}
	file := sub.File("manifest.json")
	if file.Basename != "manifest.json" || !file.Dirname.Equals(sub) {
		t.Errorf("File: got %v", file)
	}
}

func TestFilename_ReplaceExt(t *testing.T) {
	file := MakeFilename(filepath.Join("a", "files.list"))
	replaced := file.ReplaceExt(".lz4")
	if replaced.Basename != "files.lz4" {
		t.Errorf("ReplaceExt: got %q", replaced.Basename)
	}
}

func TestFilename_Relative(t *testing.T) {
	dir := MakeDirectory(filepath.Join("root", "pkg"))
	file := dir.AbsoluteFile(filepath.Join("bin", "clang"))
	if rel := file.Relative(dir); rel != filepath.Join("bin", "clang") {
		t.Errorf("Relative: got %q", rel)
	}
}

func TestUFS_CreateOpen(t *testing.T) {
	tmpDir := t.TempDir()
	file := UFS.File(filepath.Join(tmpDir, "sub", "file.txt"))

	err := UFS.Create(file, func(w io.Writer) error {
		_, err := w.Write([]byte("hello"))
		return err
	})
	if err != nil {
		t.Fatalf("UFS.Create: %v", err)
	}
	if !file.Exists() {
		t.Fatalf("UFS.Create: file does not exist")
	}

	var content []byte
	err = UFS.OpenFile(file, func(f *os.File) error {
		var er error
		content, er = io.ReadAll(f)
		return er
	})
	if err != nil {
		t.Fatalf("UFS.OpenFile: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("UFS.OpenFile: got %q", content)
	}
}

func TestUFS_Copy_PreservesMTime(t *testing.T) {
	tmpDir := t.TempDir()
	src := UFS.File(filepath.Join(tmpDir, "src.txt"))
	dst := UFS.File(filepath.Join(tmpDir, "dst.txt"))

	if err := UFS.Create(src, func(w io.Writer) error {
		_, err := w.Write([]byte("payload"))
		return err
	}); err != nil {
		t.Fatalf("UFS.Create: %v", err)
	}
	if err := UFS.Copy(src, dst); err != nil {
		t.Fatalf("UFS.Copy: %v", err)
	}
	if !UFS.MTime(dst).Equal(UFS.MTime(src)) {
		t.Errorf("UFS.Copy: mtime not preserved (%v != %v)", UFS.MTime(dst), UFS.MTime(src))
	}
}

func TestSanitizePath(t *testing.T) {
	if got := SanitizePath(`a\b/c`, '/'); got != "a/b/c" {
		t.Errorf("SanitizePath: got %q", got)
	}
}

func TestMakeGlobRegexp(t *testing.T) {
	if MakeGlobRegexp() != nil {
		t.Errorf("MakeGlobRegexp: expected nil for empty accept list")
	}

	re := MakeGlobRegexp("bin/*", "lib/clang/*.h")
	tests := []struct {
		in       string
		expected bool
	}{
		{"bin/clang", true},
		{"BIN/CLANG", true}, // case-insensitive
		{"lib/clang/stddef.h", true},
		{"share/man/clang.1", false},
	}
	for _, it := range tests {
		if re.MatchString(it.in) != it.expected {
			t.Errorf("MakeGlobRegexp: %q expected %v", it.in, it.expected)
		}
	}
}
