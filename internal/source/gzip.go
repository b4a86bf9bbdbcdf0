package source

import (
	"io"

	"github.com/inhies/go-bytesize"
	"github.com/klauspost/compress/gzip"
)

// Gzip is a gzip-compressed PGN file.
type Gzip struct {
	path         string
	inputReader  *ByteCountingReader
	outputReader *ByteCountingReader
	close        closeFn
	size         bytesize.ByteSize
}

// NewGzip creates a source for a gzip-compressed PGN file.
func NewGzip(path string) *Gzip {
	return &Gzip{path: path}
}

func (s *Gzip) Open() error {
	reader, size, close, err := openFile(s.path)
	if err != nil {
		return err
	}
	s.inputReader = &ByteCountingReader{reader: reader}
	zr, err := gzip.NewReader(s.inputReader)
	if err != nil {
		_ = close()
		return err
	}
	s.outputReader = &ByteCountingReader{reader: zr}
	s.close = close
	s.size = size
	return nil
}

func (s *Gzip) Close() error {
	return s.close()
}

func (s *Gzip) Reader() io.Reader {
	return s.outputReader
}

func (s *Gzip) Name() string {
	return s.path
}

func (s *Gzip) Size() bytesize.ByteSize {
	if s.inputReader.bytesRead > 0 {
		return s.size * (s.outputReader.bytesRead / s.inputReader.bytesRead)
	}
	return s.size
}

func (s *Gzip) BytesRead() bytesize.ByteSize {
	return s.outputReader.bytesRead
}
