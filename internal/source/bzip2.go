package source

import (
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/inhies/go-bytesize"
)

// Bzip2 is a bzip2-compressed PGN file.
type Bzip2 struct {
	path   string
	reader *bzip2.Reader
	close  closeFn
	size   bytesize.ByteSize
}

// NewBzip2 creates a source for a bzip2-compressed PGN file.
func NewBzip2(path string) *Bzip2 {
	return &Bzip2{path: path}
}

func (s *Bzip2) Open() error {
	reader, size, close, err := openFile(s.path)
	if err != nil {
		return err
	}
	s.reader, err = bzip2.NewReader(reader, nil)
	if err != nil {
		_ = close()
		return err
	}
	s.close = close
	s.size = size
	return nil
}

func (s *Bzip2) Close() error {
	return s.close()
}

func (s *Bzip2) Reader() io.Reader {
	return s.reader
}

func (s *Bzip2) Name() string {
	return s.path
}

func (s *Bzip2) Size() bytesize.ByteSize {
	if s.reader.InputOffset > 0 {
		return s.size * (bytesize.ByteSize(s.reader.OutputOffset) / bytesize.ByteSize(s.reader.InputOffset))
	}
	return s.size
}

func (s *Bzip2) BytesRead() bytesize.ByteSize {
	return bytesize.ByteSize(s.reader.OutputOffset)
}
