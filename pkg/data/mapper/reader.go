package mapper

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/exp/mmap"
)

var ErrEof = errors.New("EOF")

// Reader reads fixed-size little endian records of type T from a memory mapped file.
type Reader[T any] struct {
	dataSourceName string
	entrySize      int
	reader         *mmap.ReaderAt
	bufferPool     *sync.Pool
}

func NewReader[T any](dataSourceName string) *Reader[T] {
	entrySize := binary.Size(*new(T))
	return &Reader[T]{
		dataSourceName: dataSourceName,
		entrySize:      entrySize,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, max(entrySize, 0))
				return &buffer
			},
		},
	}
}

func (r *Reader[T]) Open() error {
	if r.entrySize <= 0 {
		return fmt.Errorf("type has no fixed binary size")
	}
	var err error
	r.reader, err = mmap.Open(r.dataSourceName)
	if err != nil {
		return fmt.Errorf("unable to open data source %q: %w", r.dataSourceName, err)
	}
	return nil
}

func (r *Reader[T]) Close() {
	if r.reader != nil {
		_ = r.reader.Close()
	}
}

func (r *Reader[T]) Read(index int64, data *T) error {
	if r.reader == nil {
		return r.errNotOpen()
	}
	buffer := r.bufferPool.Get().(*[]byte)
	defer r.bufferPool.Put(buffer)

	offset := index * int64(r.entrySize)

	n, err := r.reader.ReadAt(*buffer, offset)
	if err != nil && err != io.EOF {
		return fmt.Errorf("unable to read: %w", err)
	}
	if n < r.entrySize {
		return ErrEof
	}

	if _, err := binary.Decode(*buffer, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("unable to decode entry %d: %w", index, err)
	}
	return nil
}

func (r *Reader[T]) EntryCount() (int64, error) {
	if r.reader == nil {
		return 0, r.errNotOpen()
	}
	totalSize := int64(r.reader.Len())
	if totalSize%int64(r.entrySize) != 0 {
		return 0, fmt.Errorf("file size is not a multiple of entry size")
	}
	return totalSize / int64(r.entrySize), nil
}

func (r *Reader[T]) errNotOpen() error {
	return fmt.Errorf("data source %q is not open", r.dataSourceName)
}
