package mapper

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

// Writer appends records in the layout Reader expects.
type Writer[T any] struct {
	file *os.File
	buf  *bufio.Writer
}

func Create[T any](dataSourceName string) (*Writer[T], error) {
	f, err := os.Create(dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("unable to create %q: %w", dataSourceName, err)
	}
	return &Writer[T]{file: f, buf: bufio.NewWriter(f)}, nil
}

func (w *Writer[T]) Write(entry T) error {
	return binary.Write(w.buf, binary.LittleEndian, entry)
}

func (w *Writer[T]) Close() error {
	if err := w.buf.Flush(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
