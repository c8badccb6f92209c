package io

import (
	"fmt"
	"io"
	"os"

	sha256 "github.com/minio/sha256-simd"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * Checksum validation
 ***************************************/

// ChecksumFile computes the plain sha256 of a file, matching the digests
// published alongside upstream release assets.
func ChecksumFile(src utils.Filename) (result utils.Fingerprint, err error) {
	err = utils.UFS.OpenFile(src, func(rd *os.File) error {
		digester := sha256.New()
		if _, er := io.Copy(digester, rd); er != nil {
			return er
		}
		copy(result[:], digester.Sum(nil))
		return nil
	})
	return
}

// VerifyChecksum deletes the file on mismatch: a corrupted download must
// never survive to be trusted by a later run.
func VerifyChecksum(src utils.Filename, expected utils.Fingerprint) error {
	base.LogVerbose(LogIO, "verifying sha256 of %q", src)

	actual, err := ChecksumFile(src)
	if err != nil {
		return err
	}
	if actual != expected {
		_ = utils.UFS.Remove(src)
		return fmt.Errorf("checksum mismatch for %q:\n\texpected: %v\n\t  actual: %v",
			src, expected, actual)
	}
	return nil
}
