package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStringsFingerprint_LengthPrefix(t *testing.T) {
	seed := StringFingerprint("test-seed")
	// ("ab","c") and ("a","bc") must not collide
	a := StringsFingerprint(seed, "ab", "c")
	b := StringsFingerprint(seed, "a", "bc")
	if a == b {
		t.Errorf("StringsFingerprint: part boundaries are not hashed")
	}
	if a != StringsFingerprint(seed, "ab", "c") {
		t.Errorf("StringsFingerprint: not deterministic")
	}
}

func TestStringsFingerprint_Seed(t *testing.T) {
	a := StringsFingerprint(StringFingerprint("seed-a"), "x")
	b := StringsFingerprint(StringFingerprint("seed-b"), "x")
	if a == b {
		t.Errorf("StringsFingerprint: seed does not contribute to the hash")
	}
}

func TestFingerprint_SetString(t *testing.T) {
	original := StringFingerprint("payload")
	var parsed Fingerprint
	if err := parsed.Set(original.String()); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if parsed != original {
		t.Errorf("Set: expected %v, got %v", original, parsed)
	}

	if err := parsed.Set("deadbeef"); err == nil {
		t.Errorf("Set: expected an error for a truncated digest")
	}
	if err := parsed.Set(strings.Repeat("zz", 32)); err == nil {
		t.Errorf("Set: expected an error for non-hex input")
	}
}

func TestFingerprint_Valid(t *testing.T) {
	var zero Fingerprint
	if zero.Valid() {
		t.Errorf("Valid: zero fingerprint should be invalid")
	}
	if !StringFingerprint("x").Valid() {
		t.Errorf("Valid: computed fingerprint should be valid")
	}
}

func TestFileFingerprint(t *testing.T) {
	tmpDir := t.TempDir()
	file := UFS.File(filepath.Join(tmpDir, "payload.txt"))
	if err := UFS.CreateFile(file, func(f *os.File) error {
		_, err := f.WriteString("payload")
		return err
	}); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}

	fromFile, err := FileFingerprint(file, Fingerprint{})
	if err != nil {
		t.Fatalf("FileFingerprint: %v", err)
	}
	fromReader, err := ReaderFingerprint(strings.NewReader("payload"), Fingerprint{})
	if err != nil {
		t.Fatalf("ReaderFingerprint: %v", err)
	}
	if fromFile != fromReader {
		t.Errorf("FileFingerprint: expected %v, got %v", fromReader, fromFile)
	}
}
