package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

func writeTestFile(t *testing.T, content string) utils.Filename {
	t.Helper()
	file := utils.MakeFilename(filepath.Join(t.TempDir(), "asset.tar.xz"))
	if err := os.WriteFile(file.String(), []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return file
}

func TestChecksumFile(t *testing.T) {
	// sha256("abc"), a published test vector
	file := writeTestFile(t, "abc")

	digest, err := ChecksumFile(file)
	if err != nil {
		t.Fatalf("ChecksumFile: %v", err)
	}
	if digest.String() != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Errorf("ChecksumFile: got %v", digest)
	}
}

func TestVerifyChecksum_Match(t *testing.T) {
	file := writeTestFile(t, "payload")

	expected, err := ChecksumFile(file)
	if err != nil {
		t.Fatalf("ChecksumFile: %v", err)
	}
	if err := VerifyChecksum(file, expected); err != nil {
		t.Errorf("VerifyChecksum: %v", err)
	}
	if !file.Exists() {
		t.Errorf("VerifyChecksum: a valid file must be kept")
	}
}

func TestVerifyChecksum_MismatchRemovesFile(t *testing.T) {
	file := writeTestFile(t, "corrupted")

	err := VerifyChecksum(file, utils.StringFingerprint("something else"))
	if err == nil {
		t.Fatalf("VerifyChecksum: expected a mismatch error")
	}
	if !strings.Contains(err.Error(), "checksum mismatch") {
		t.Errorf("VerifyChecksum: unexpected error %v", err)
	}
	if file.Exists() {
		t.Errorf("VerifyChecksum: a corrupted file must be removed")
	}
}
