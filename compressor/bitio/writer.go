package bitio

import (
	"bufio"
	"io"

	bitstream "github.com/dgryski/go-bitstream"
	"github.com/pkg/errors"
)

// Writer packs bits most significant first. Nothing reaches the destination
// reliably until Flush is called.
type Writer struct {
	buf *bufio.Writer
	bw  *bitstream.BitWriter
}

func NewWriter(dst io.Writer) *Writer {
	w := new(Writer)
	w.buf = bufio.NewWriter(dst)
	w.bw = bitstream.NewWriter(w.buf)
	return w
}

func (w *Writer) WriteBit(bit bool) error {
	return errors.WithStack(w.bw.WriteBit(bitstream.Bit(bit)))
}

func (w *Writer) WriteBits(value uint64, nbits int) error {
	if nbits <= 0 || nbits > 64 {
		return errors.Errorf("cannot write %d bits at once", nbits)
	}
	return errors.WithStack(w.bw.WriteBits(value, nbits))
}

// Flush pads the final partial byte with zero bits and flushes buffered
// bytes to the destination.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(bitstream.Zero); err != nil {
		return errors.Wrap(err, "pad final byte")
	}
	return errors.Wrap(w.buf.Flush(), "flush")
}
