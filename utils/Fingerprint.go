package utils

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"sync"

	sha256 "github.com/minio/sha256-simd"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
)

var LogFingerprint = base.NewLogCategory("Fingerprint")

/***************************************
 * Fingerprint
 ***************************************/

type Fingerprint [sha256.Size]byte

func (x Fingerprint) Slice() []byte {
	return x[:]
}
func (x Fingerprint) String() string {
	return hex.EncodeToString(x[:])
}
func (x Fingerprint) ShortString() string {
	return hex.EncodeToString(x[:8])
}
func (x Fingerprint) Valid() bool {
	for _, it := range x {
		if it != 0 {
			return true
		}
	}
	return false
}
func (x *Fingerprint) Set(in string) error {
	data, err := hex.DecodeString(in)
	if err != nil {
		return err
	}
	if len(data) != sha256.Size {
		return fmt.Errorf("fingerprint: unexpected string length %q", in)
	}
	copy(x[:], data)
	return nil
}
func (x Fingerprint) MarshalText() ([]byte, error) {
	buf := [sha256.Size * 2]byte{}
	hex.Encode(buf[:], x[:])
	return buf[:], nil
}
func (x *Fingerprint) UnmarshalText(data []byte) error {
	return x.Set(string(data))
}

/***************************************
 * Digesters
 ***************************************/

var digesterPool = sync.Pool{
	New: func() interface{} {
		return sha256.New()
	},
}

func allocateDigester() hash.Hash {
	digester := digesterPool.Get().(hash.Hash)
	digester.Reset()
	return digester
}

func StringFingerprint(in string) (result Fingerprint) {
	return Fingerprint(sha256.Sum256([]byte(in)))
}

// StringsFingerprint hashes each part behind a length prefix, so that
// ("ab","c") and ("a","bc") never collide.
func StringsFingerprint(seed Fingerprint, parts ...string) (result Fingerprint) {
	digester := allocateDigester()
	defer digesterPool.Put(digester)

	digester.Write(seed[:])

	var prefix [4]byte
	for _, it := range parts {
		binary.LittleEndian.PutUint32(prefix[:], uint32(len(it)))
		digester.Write(prefix[:])
		digester.Write([]byte(it))
	}

	copy(result[:], digester.Sum(nil))
	return
}

func ReaderFingerprint(rd io.Reader, seed Fingerprint) (result Fingerprint, err error) {
	digester := allocateDigester()
	defer digesterPool.Put(digester)

	digester.Write(seed[:])

	if _, err = io.Copy(digester, rd); err != nil {
		return
	}

	copy(result[:], digester.Sum(nil))
	return
}

func FileFingerprint(src Filename, seed Fingerprint) (Fingerprint, error) {
	var result Fingerprint
	err := UFS.OpenFile(src, func(rd *os.File) (er error) {
		result, er = ReaderFingerprint(rd, seed)
		return
	})
	return result, err
}
