package streamio

import (
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var (
	zstdReader = sync.Pool{
		New: func() any {
			d, _ := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
			return &ZstdDecoder{
				Decoder: d,
			}
		},
	}
)

type ZstdDecoder struct {
	*zstd.Decoder
}

// GetZstdReader returns a ZstdDecoder from the pool reset to read from r.
// Return it with PutZstdReader once the stream is consumed.
func GetZstdReader(r io.Reader) (*ZstdDecoder, error) {
	z := zstdReader.Get().(*ZstdDecoder)
	if err := z.Reset(r); err != nil {
		zstdReader.Put(z)
		return nil, err
	}
	return z, nil
}

func PutZstdReader(z *ZstdDecoder) {
	_ = z.Reset(nil)
	zstdReader.Put(z)
}
