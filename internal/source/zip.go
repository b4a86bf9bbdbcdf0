package source

import (
	"archive/zip"
	"io"

	"github.com/inhies/go-bytesize"

	"github.com/lgbarn/pgn-reader-go/internal/errors"
)

// Zip is a zip archive holding PGN files. All .pgn entries of the
// archive are read back to back as one stream.
type Zip struct {
	path    string
	archive *zip.ReadCloser
	reader  *ByteCountingReader
	size    bytesize.ByteSize
}

// NewZip creates a source for a zip archive of PGN files.
func NewZip(path string) *Zip {
	return &Zip{path: path}
}

func (s *Zip) Open() error {
	archive, err := zip.OpenReader(s.path)
	if err != nil {
		return err
	}

	var readers []io.Reader
	for _, entry := range archive.File {
		if !IsPGNFile(entry.Name) {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			archive.Close()
			return err
		}
		readers = append(readers, rc)
		s.size += bytesize.ByteSize(entry.UncompressedSize64)
	}
	if len(readers) == 0 {
		archive.Close()
		return errors.Wrapf(errors.ErrUnsupportedFormat, "%s: no .pgn entries", s.path)
	}

	s.archive = archive
	s.reader = &ByteCountingReader{reader: io.MultiReader(readers...)}
	return nil
}

func (s *Zip) Close() error {
	return s.archive.Close()
}

func (s *Zip) Reader() io.Reader {
	return s.reader
}

func (s *Zip) Name() string {
	return s.path
}

func (s *Zip) Size() bytesize.ByteSize {
	return s.size
}

func (s *Zip) BytesRead() bytesize.ByteSize {
	return s.reader.bytesRead
}
