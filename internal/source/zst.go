package source

import (
	"io"

	"github.com/inhies/go-bytesize"
	"github.com/klauspost/compress/zstd"
)

// Zst is a zstandard-compressed PGN file, the format the large online
// game databases publish in.
type Zst struct {
	path         string
	inputReader  *ByteCountingReader
	outputReader *ByteCountingReader
	decoder      *zstd.Decoder
	close        closeFn
	size         bytesize.ByteSize
}

// NewZst creates a source for a zstandard-compressed PGN file.
func NewZst(path string) *Zst {
	return &Zst{path: path}
}

func (s *Zst) Open() error {
	reader, size, close, err := openFile(s.path)
	if err != nil {
		return err
	}
	s.inputReader = &ByteCountingReader{reader: reader}
	zr, err := zstd.NewReader(s.inputReader)
	if err != nil {
		_ = close()
		return err
	}
	s.outputReader = &ByteCountingReader{reader: zr}
	s.decoder = zr
	s.close = close
	s.size = size
	return nil
}

// Close releases the decoder's worker goroutines and closes the file.
func (s *Zst) Close() error {
	s.decoder.Close()
	return s.close()
}

func (s *Zst) Reader() io.Reader {
	return s.outputReader
}

func (s *Zst) Name() string {
	return s.path
}

func (s *Zst) Size() bytesize.ByteSize {
	if s.inputReader.bytesRead > 0 {
		return s.size * (s.outputReader.bytesRead / s.inputReader.bytesRead)
	}
	return s.size
}

func (s *Zst) BytesRead() bytesize.ByteSize {
	return s.outputReader.bytesRead
}
