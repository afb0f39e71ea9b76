package streamio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const content = `alpha
beta
gamma
beta
`

func writeFile(t *testing.T, name string, fn func(f *os.File)) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	f, err := os.Create(p)
	require.NoError(t, err)
	fn(f)
	require.NoError(t, f.Close())
	return p
}

func TestReadPlain(t *testing.T) {
	p := writeFile(t, "plain.txt", func(f *os.File) {
		_, err := f.WriteString(content)
		require.NoError(t, err)
	})
	s, err := ReadFile(p, 0)
	require.NoError(t, err)
	require.Equal(t, content, s)
}

func TestReadZstd(t *testing.T) {
	p := writeFile(t, "a.txt.zst", func(f *os.File) {
		e, err := zstd.NewWriter(f)
		require.NoError(t, err)
		_, err = e.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, e.Close())
	})
	for range 3 {
		s, err := ReadFile(p, 0)
		require.NoError(t, err)
		require.Equal(t, content, s)
	}
}

func TestReadGzip(t *testing.T) {
	p := writeFile(t, "a.txt.gz", func(f *os.File) {
		w := gzip.NewWriter(f)
		_, err := w.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, w.Close())
	})
	s, err := ReadFile(p, 0)
	require.NoError(t, err)
	require.Equal(t, content, s)
}

func TestReadShortInput(t *testing.T) {
	rc, err := NewReader(strings.NewReader("x"))
	require.NoError(t, err)
	defer rc.Close()
	buf := make([]byte, 4)
	n, _ := rc.Read(buf)
	require.Equal(t, "x", string(buf[:n]))
}

func TestReadLimit(t *testing.T) {
	p := writeFile(t, "big.txt", func(f *os.File) {
		_, err := f.WriteString(content)
		require.NoError(t, err)
	})
	_, err := ReadFile(p, 4)
	require.ErrorIs(t, err, ErrTooLarge)
	s, err := ReadFile(p, int64(len(content)))
	require.NoError(t, err)
	require.Equal(t, content, s)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
