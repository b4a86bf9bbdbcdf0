package source

import (
	"io"

	"github.com/inhies/go-bytesize"
)

// Plain is an uncompressed PGN file.
type Plain struct {
	path   string
	reader *ByteCountingReader
	close  closeFn
	size   bytesize.ByteSize
}

// NewPlain creates a source for a plain PGN file.
func NewPlain(path string) *Plain {
	return &Plain{path: path}
}

func (s *Plain) Open() error {
	reader, size, close, err := openFile(s.path)
	if err != nil {
		return err
	}
	s.reader = &ByteCountingReader{reader: reader}
	s.close = close
	s.size = size
	return nil
}

func (s *Plain) Close() error {
	return s.close()
}

func (s *Plain) Reader() io.Reader {
	return s.reader
}

func (s *Plain) Name() string {
	return s.path
}

func (s *Plain) Size() bytesize.ByteSize {
	return s.size
}

func (s *Plain) BytesRead() bytesize.ByteSize {
	return s.reader.bytesRead
}
