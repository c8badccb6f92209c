package compile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * Install manifest
 ***************************************/

const (
	MANIFEST_BASENAME  = "manifest.json"
	FILESLIST_BASENAME = "files.list"
)

// InstallManifest records what was installed and where it came from, so a
// later run can recognize the package without re-downloading anything.
type InstallManifest struct {
	PackageId utils.Fingerprint `json:"package_id"`
	Toolchain Toolchain         `json:"toolchain"`

	URL    string            `json:"url"`
	Sha256 utils.Fingerprint `json:"sha256"`

	// provenance of the machine which performed the install
	Fqdn        string           `json:"fqdn,omitempty"`
	NumCores    int              `json:"num_cores,omitempty"`
	TotalMemory base.SizeInBytes `json:"total_memory,omitempty"`

	InstalledAt time.Time `json:"installed_at"`
	NumFiles    int       `json:"num_files"`
}

func (tc Toolchain) ManifestFile() utils.Filename {
	return tc.PackageDir().File(MANIFEST_BASENAME)
}

func WriteInstallManifest(dst utils.Filename, manifest *InstallManifest) error {
	return utils.UFS.Create(dst, func(wr io.Writer) error {
		return base.JsonSerialize(manifest, wr, base.OptionJsonPrettyPrint(true))
	})
}

func ReadInstallManifest(src utils.Filename) (*InstallManifest, error) {
	manifest := &InstallManifest{}
	err := utils.UFS.OpenFile(src, func(rd *os.File) error {
		return base.JsonDeserialize(manifest, rd)
	})
	return manifest, err
}

// FindInstallManifest looks for an existing install. A manifest recording a
// different package id means the folder holds stale content and must be
// replaced.
func (tc Toolchain) FindInstallManifest() (*InstallManifest, error) {
	manifestFile := tc.ManifestFile()
	if !manifestFile.Exists() {
		return nil, nil
	}
	manifest, err := ReadInstallManifest(manifestFile)
	if err != nil {
		return nil, err
	}
	if manifest.PackageId != tc.PackageId() {
		return nil, fmt.Errorf("package folder %q contains a foreign install (%v)",
			tc.PackageDir(), manifest.PackageId.ShortString())
	}
	return manifest, nil
}

func (tc Toolchain) IsInstalled() bool {
	manifest, err := tc.FindInstallManifest()
	return err == nil && manifest != nil
}

/***************************************
 * Installed files list
 ***************************************/

// The files list backs distclean and debugging, it is bulky so it gets
// compressed with the codec selected on the command line.

func (tc Toolchain) filesListFile(format base.CompressionFormat) utils.Filename {
	return tc.PackageDir().File(FILESLIST_BASENAME + format.Extname())
}

func (tc Toolchain) WriteFilesList(files base.StringSet, format base.CompressionFormat) error {
	return utils.UFS.Create(tc.filesListFile(format), func(wr io.Writer) error {
		compressed := base.NewCompressedWriter(wr, format)
		for _, it := range files {
			if _, err := fmt.Fprintln(compressed, it); err != nil {
				compressed.Close()
				return err
			}
		}
		return compressed.Close()
	})
}

// ReadFilesList tries every known codec extension, the writer's choice is
// not recorded anywhere else.
func (tc Toolchain) ReadFilesList() (files base.StringSet, err error) {
	for _, format := range base.GetCompressionFormats() {
		src := tc.filesListFile(format)
		if !src.Exists() {
			continue
		}
		err = utils.UFS.OpenFile(src, func(rd *os.File) error {
			compressed := base.NewCompressedReader(rd, format)
			defer compressed.Close()

			scanner := bufio.NewScanner(compressed)
			for scanner.Scan() {
				if line := scanner.Text(); line != "" {
					files.Append(line)
				}
			}
			return scanner.Err()
		})
		return
	}
	return files, fmt.Errorf("no files list found in %q", tc.PackageDir())
}
