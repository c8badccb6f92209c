package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/djherbis/times"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
)

var LogUFS = base.NewLogCategory("UFS")

/***************************************
 * Directory
 ***************************************/

type Directory string

func MakeDirectory(in string) Directory {
	return Directory(filepath.Clean(in))
}

func (d Directory) Valid() bool    { return len(d) > 0 }
func (d Directory) String() string { return string(d) }
func (d Directory) Basename() string {
	return filepath.Base(string(d))
}
func (d Directory) Parent() Directory {
	return Directory(filepath.Dir(string(d)))
}
func (d Directory) Folder(names ...string) Directory {
	return Directory(filepath.Join(append([]string{string(d)}, names...)...))
}
func (d Directory) File(name string) Filename {
	return Filename{Dirname: d, Basename: name}
}
func (d Directory) AbsoluteFile(rel string) Filename {
	return MakeFilename(filepath.Join(string(d), rel))
}
func (d Directory) AbsoluteFolder(rel string) Directory {
	return Directory(filepath.Join(string(d), rel))
}
func (d Directory) Equals(other Directory) bool {
	return d == other
}
func (d Directory) Exists() bool {
	info, err := os.Stat(string(d))
	return err == nil && info.IsDir()
}
func (d Directory) Relative(to Directory) string {
	if rel, err := filepath.Rel(string(to), string(d)); err == nil {
		return rel
	}
	return string(d)
}
func (d Directory) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
func (d *Directory) UnmarshalText(data []byte) error {
	*d = MakeDirectory(string(data))
	return nil
}

/***************************************
 * Filename
 ***************************************/

type Filename struct {
	Dirname  Directory
	Basename string
}

func MakeFilename(in string) Filename {
	cleaned := filepath.Clean(in)
	return Filename{
		Dirname:  Directory(filepath.Dir(cleaned)),
		Basename: filepath.Base(cleaned),
	}
}

func (f Filename) Valid() bool { return len(f.Basename) > 0 }
func (f Filename) String() string {
	return filepath.Join(string(f.Dirname), f.Basename)
}
func (f Filename) Ext() string {
	return filepath.Ext(f.Basename)
}
func (f Filename) ReplaceExt(ext string) Filename {
	return Filename{
		Dirname:  f.Dirname,
		Basename: strings.TrimSuffix(f.Basename, filepath.Ext(f.Basename)) + ext,
	}
}
func (f Filename) Relative(to Directory) string {
	if rel, err := filepath.Rel(string(to), f.String()); err == nil {
		return rel
	}
	return f.String()
}
func (f Filename) Equals(other Filename) bool {
	return f == other
}
func (f Filename) Exists() bool {
	info, err := os.Stat(f.String())
	return err == nil && !info.IsDir()
}
func (f Filename) Info() (os.FileInfo, error) {
	return os.Stat(f.String())
}
func (f Filename) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
func (f *Filename) UnmarshalText(data []byte) error {
	*f = MakeFilename(string(data))
	return nil
}

/***************************************
 * FileSet
 ***************************************/

type FileSet []Filename

func NewFileSet(x ...Filename) FileSet {
	return base.CopySlice(x...)
}

func (fs FileSet) Len() int { return len(fs) }
func (fs FileSet) Contains(f Filename) bool {
	for _, it := range fs {
		if it.Equals(f) {
			return true
		}
	}
	return false
}
func (fs *FileSet) Append(f ...Filename) *FileSet {
	*fs = append(*fs, f...)
	return fs
}
func (fs *FileSet) AppendUniq(f ...Filename) *FileSet {
	for _, it := range f {
		if !fs.Contains(it) {
			*fs = append(*fs, it)
		}
	}
	return fs
}
func (fs *FileSet) Clear() *FileSet {
	*fs = (*fs)[:0]
	return fs
}

/***************************************
 * UFS: unified file system facade
 ***************************************/

type UFST struct {
	Working Directory

	// Cache is the per-user root holding everything this tool writes.
	Cache     Directory
	Transient Directory // download staging, safe to wipe
	Packages  Directory // extracted toolchains, keyed by package id

	Executable Filename
}

var UFS UFST

func (ufs *UFST) Dir(in string) Directory { return MakeDirectory(in) }
func (ufs *UFST) File(in string) Filename { return MakeFilename(in) }

func (ufs *UFST) MkdirEx(d Directory) error {
	return os.MkdirAll(d.String(), 0755)
}
func (ufs *UFST) Mkdir(d Directory) {
	if err := ufs.MkdirEx(d); err != nil {
		base.LogPanic(LogUFS, "mkdir %q: %v", d, err)
	}
}

func (ufs *UFST) CreateFile(dst Filename, write func(*os.File) error) error {
	if err := ufs.MkdirEx(dst.Dirname); err != nil {
		return err
	}
	outp, err := os.Create(dst.String())
	if err != nil {
		return err
	}
	if err = write(outp); err != nil {
		outp.Close()
		return err
	}
	return outp.Close()
}

// Create buffers writes, for the many small text files we generate.
func (ufs *UFST) Create(dst Filename, write func(io.Writer) error) error {
	return ufs.CreateFile(dst, func(outp *os.File) error {
		buffered := bufio.NewWriter(outp)
		if err := write(buffered); err != nil {
			return err
		}
		return buffered.Flush()
	})
}

func (ufs *UFST) OpenFile(src Filename, read func(*os.File) error) error {
	inp, err := os.Open(src.String())
	if err != nil {
		return err
	}
	defer inp.Close()
	return read(inp)
}

func (ufs *UFST) Copy(src, dst Filename) error {
	err := ufs.CreateFile(dst, func(outp *os.File) error {
		return ufs.OpenFile(src, func(inp *os.File) error {
			_, err := io.Copy(outp, inp)
			return err
		})
	})
	if err != nil {
		return err
	}
	// keep mtime consistent so downstream timestamp checks are stable
	return ufs.SetMTime(dst, ufs.MTime(src))
}

func (ufs *UFST) MTime(f Filename) time.Time {
	if stat, err := times.Stat(f.String()); err == nil {
		return stat.ModTime()
	}
	return time.Time{}
}
func (ufs *UFST) SetMTime(f Filename, mtime time.Time) error {
	if mtime.IsZero() {
		return nil
	}
	return os.Chtimes(f.String(), mtime, mtime)
}

func (ufs *UFST) Remove(f Filename) error {
	return os.Remove(f.String())
}
func (ufs *UFST) RemoveAll(d Directory) error {
	base.LogVerbose(LogUFS, "remove all in %q", d)
	return os.RemoveAll(d.String())
}

/***************************************
 * Path helpers
 ***************************************/

func SanitizePath(in string, sep rune) string {
	return strings.Map(func(r rune) rune {
		if r == '\\' || r == '/' {
			return sep
		}
		return r
	}, in)
}

// MakeGlobRegexp translates "lib/*"-style accept lists the way the archive
// extractor expects; returns nil when every file should match.
func MakeGlobRegexp(globs ...string) *regexp.Regexp {
	if len(globs) == 0 {
		return nil
	}
	patterns := make([]string, len(globs))
	for i, it := range globs {
		escaped := regexp.QuoteMeta(it)
		escaped = strings.ReplaceAll(escaped, `\*`, `.*`)
		escaped = strings.ReplaceAll(escaped, `\?`, `.`)
		patterns[i] = escaped
	}
	return regexp.MustCompile(fmt.Sprint(`(?i)^(?:`, strings.Join(patterns, `|`), `)$`))
}
