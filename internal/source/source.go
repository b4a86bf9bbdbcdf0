// Package source opens PGN inputs. Besides plain files it understands
// the compressed forms game databases are commonly shipped in: gzip,
// zstandard, bzip2 and zip archives. Every source reports its size and
// read progress so long imports can show how far along they are.
package source

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/inhies/go-bytesize"

	"github.com/lgbarn/pgn-reader-go/internal/errors"
)

// Source is one PGN input. Open before use, Close when done.
type Source interface {
	Open() error
	Close() error
	// Reader returns the decompressed PGN character stream.
	Reader() io.Reader
	// Name returns the source's display name for diagnostics.
	Name() string
	// Size returns the size of the PGN data. For compressed sources it
	// is an estimate based on the compression ratio seen so far.
	Size() bytesize.ByteSize
	// BytesRead returns how much PGN data has been read.
	BytesRead() bytesize.ByteSize
}

// ByteCountingReader counts the bytes flowing through a reader.
// Wrapping both the compressed input and the decompressed output
// gives a running compression ratio for size estimates.
type ByteCountingReader struct {
	reader    io.Reader
	bytesRead bytesize.ByteSize
}

func (bcr *ByteCountingReader) Read(p []byte) (int, error) {
	n, err := bcr.reader.Read(p)
	bcr.bytesRead += bytesize.ByteSize(uint64(n))
	return n, err
}

type closeFn func() error

// openFile opens a file and returns it with its size.
func openFile(path string) (io.Reader, bytesize.ByteSize, closeFn, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, nil, err
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, 0, nil, err
	}
	return file, bytesize.ByteSize(stat.Size()), file.Close, nil
}

// FromPath returns the source matching the path's extension.
func FromPath(path string) (Source, error) {
	switch filepath.Ext(strings.ToLower(path)) {
	case ".pgn":
		return NewPlain(path), nil
	case ".gz":
		return NewGzip(path), nil
	case ".zst":
		return NewZst(path), nil
	case ".bz2":
		return NewBzip2(path), nil
	case ".zip":
		return NewZip(path), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%s", path)
	}
}

// IsPGNFile reports whether the filename names a plain PGN file.
func IsPGNFile(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pgn")
}

// IsPGNFileOrCompressed reports whether the filename names a PGN file,
// possibly compressed or archived.
func IsPGNFileOrCompressed(filename string) bool {
	name := strings.ToLower(filename)
	for _, suffix := range []string{".pgn", ".pgn.gz", ".pgn.zst", ".pgn.bz2", ".zip"} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// FromDir returns sources for the supported files of a directory,
// ignoring subdirectories and files of other types.
func FromDir(path string) ([]Source, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if src, err := FromPath(filepath.Join(path, entry.Name())); err == nil {
			sources = append(sources, src)
		}
	}
	return sources, nil
}
