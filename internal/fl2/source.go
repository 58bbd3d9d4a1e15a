package fl2

import (
	"errors"
	"fmt"
	"io"
)

// Source is a read-only, bounded random-access view over an FL2 container
// file. The size is captured once and stays fixed for the whole detection
// pass. A Source is never shared across goroutines.
type Source interface {
	io.ReaderAt
	Size() uint64
}

type readerSource struct {
	r    io.ReaderAt
	size uint64
}

// NewSource wraps any io.ReaderAt of known size into a Source.
func NewSource(r io.ReaderAt, size uint64) Source {
	return &readerSource{r: r, size: size}
}

func (s *readerSource) ReadAt(p []byte, off int64) (int, error) {
	return s.r.ReadAt(p, off)
}

func (s *readerSource) Size() uint64 {
	return s.size
}

// readBlock reads exactly n bytes starting at off. A block extending past
// the end of the source, or any short read, is a failure.
func readBlock(src Source, off, n uint64) ([]byte, error) {
	if off+n > src.Size() {
		return nil, fmt.Errorf("block [0x%X, 0x%X) exceeds source size %d", off, off+n, src.Size())
	}

	buf := make([]byte, n)
	nr, err := src.ReadAt(buf, int64(off))
	if err != nil && !(errors.Is(err, io.EOF) && nr == len(buf)) {
		return nil, err
	}
	return buf, nil
}
