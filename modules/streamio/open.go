package streamio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/klauspost/compress/gzip"
)

var (
	ErrTooLarge = errors.New("input exceeds size limit")
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}

	bytesBuffer = sync.Pool{
		New: func() any {
			return bytes.NewBuffer(nil)
		},
	}
)

type readCloser struct {
	io.Reader
	closeFn func() error
}

func (r *readCloser) Close() error {
	return r.closeFn()
}

// NewReader wraps r and transparently decompresses zstd and gzip streams,
// recognised by their magic bytes. Other input passes through unchanged.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		z, err := GetZstdReader(br)
		if err != nil {
			return nil, err
		}
		return &readCloser{Reader: z, closeFn: func() error {
			PutZstdReader(z)
			return nil
		}}, nil
	case bytes.HasPrefix(head, gzipMagic):
		g, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return io.NopCloser(br), nil
}

// Open opens path for reading, "-" meaning standard input.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return NewReader(os.Stdin)
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := NewReader(fd)
	if err != nil {
		_ = fd.Close()
		return nil, err
	}
	return &readCloser{Reader: rc, closeFn: func() error {
		_ = rc.Close()
		return fd.Close()
	}}, nil
}

// ReadFile reads the whole (decompressed) content of path. A positive
// limit caps the number of bytes accepted.
func ReadFile(path string, limit int64) (string, error) {
	rc, err := Open(path)
	if err != nil {
		return "", err
	}
	defer rc.Close() // nolint
	var r io.Reader = rc
	if limit > 0 {
		r = io.LimitReader(rc, limit+1)
	}
	buf := bytesBuffer.Get().(*bytes.Buffer)
	buf.Reset()
	defer bytesBuffer.Put(buf)
	if _, err := buf.ReadFrom(r); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if limit > 0 && int64(buf.Len()) > limit {
		return "", fmt.Errorf("read %s: %w", path, ErrTooLarge)
	}
	return buf.String(), nil
}
