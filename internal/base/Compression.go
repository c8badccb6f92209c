package base

import (
	"io"
	"strings"

	"github.com/DataDog/zstd"
	"github.com/pierrec/lz4/v4"
)

var LogCompression = NewLogCategory("Compression")

/***************************************
 * Compression Format
 ***************************************/

type CompressionFormat byte

const (
	COMPRESSION_NONE CompressionFormat = iota
	COMPRESSION_LZ4
	COMPRESSION_ZSTD
)

func GetCompressionFormats() []CompressionFormat {
	return []CompressionFormat{
		COMPRESSION_NONE,
		COMPRESSION_LZ4,
		COMPRESSION_ZSTD,
	}
}
func (x CompressionFormat) Description() string {
	switch x {
	case COMPRESSION_NONE:
		return "no compression"
	case COMPRESSION_LZ4:
		return "lz4 frame compression, favors speed"
	case COMPRESSION_ZSTD:
		return "zstd compression, favors ratio"
	default:
		UnexpectedValue(x)
		return ""
	}
}
func (x CompressionFormat) String() string {
	switch x {
	case COMPRESSION_NONE:
		return "NONE"
	case COMPRESSION_LZ4:
		return "LZ4"
	case COMPRESSION_ZSTD:
		return "ZSTD"
	default:
		UnexpectedValue(x)
		return ""
	}
}
func (x *CompressionFormat) Set(in string) (err error) {
	switch strings.ToUpper(in) {
	case COMPRESSION_NONE.String():
		*x = COMPRESSION_NONE
	case COMPRESSION_LZ4.String():
		*x = COMPRESSION_LZ4
	case COMPRESSION_ZSTD.String():
		*x = COMPRESSION_ZSTD
	default:
		err = MakeUnexpectedValueError(x, in)
	}
	return err
}
func (x CompressionFormat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
func (x *CompressionFormat) UnmarshalText(data []byte) error {
	return x.Set(string(data))
}

// Extname is appended to file names so the reader can be picked without
// sniffing the payload.
func (x CompressionFormat) Extname() string {
	switch x {
	case COMPRESSION_NONE:
		return ""
	case COMPRESSION_LZ4:
		return ".lz4"
	case COMPRESSION_ZSTD:
		return ".zst"
	default:
		UnexpectedValue(x)
		return ""
	}
}

/***************************************
 * Compressed reader/writer
 ***************************************/

type CompressedWriter interface {
	Flush() error
	io.WriteCloser
}

type nopCompression struct {
	io.Reader
	io.Writer
}

func (nopCompression) Flush() error { return nil }
func (nopCompression) Close() error { return nil }

type lz4ReadCloser struct {
	*lz4.Reader
}

func (lz4ReadCloser) Close() error { return nil }

func NewCompressedReader(rd io.Reader, format CompressionFormat) io.ReadCloser {
	switch format {
	case COMPRESSION_NONE:
		return nopCompression{Reader: rd}
	case COMPRESSION_LZ4:
		return lz4ReadCloser{lz4.NewReader(rd)}
	case COMPRESSION_ZSTD:
		return zstd.NewReader(rd)
	default:
		UnexpectedValue(format)
		return nil
	}
}

func NewCompressedWriter(wr io.Writer, format CompressionFormat) CompressedWriter {
	switch format {
	case COMPRESSION_NONE:
		return nopCompression{Writer: wr}
	case COMPRESSION_LZ4:
		return lz4.NewWriter(wr)
	case COMPRESSION_ZSTD:
		return zstd.NewWriter(wr)
	default:
		UnexpectedValue(format)
		return nil
	}
}
