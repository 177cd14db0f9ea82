package bitio

import (
	"bufio"
	"io"

	bitstream "github.com/dgryski/go-bitstream"
	"github.com/pkg/errors"
)

// Reader reads single bits and fixed-width integers, most significant bit
// first. End of stream is reported as io.EOF.
type Reader struct {
	src io.Reader
	br  *bitstream.BitReader
}

func NewReader(src io.Reader) *Reader {
	r := new(Reader)
	r.src = src
	r.br = bitstream.NewReader(bufio.NewReader(src))
	return r
}

func (r *Reader) ReadBit() (bool, error) {
	bit, err := r.br.ReadBit()
	if err != nil {
		return false, normalize(err)
	}
	return bool(bit), nil
}

func (r *Reader) ReadBits(nbits int) (uint64, error) {
	if nbits <= 0 || nbits > 64 {
		return 0, errors.Errorf("cannot read %d bits at once", nbits)
	}
	v, err := r.br.ReadBits(nbits)
	if err != nil {
		return 0, normalize(err)
	}
	return v, nil
}

// Rewind moves back to the start of the underlying stream, dropping any
// buffered bits. The source must implement io.Seeker.
func (r *Reader) Rewind() error {
	seeker, ok := r.src.(io.Seeker)
	if !ok {
		return errors.New("underlying reader does not support rewinding")
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "rewind")
	}
	r.br = bitstream.NewReader(bufio.NewReader(r.src))
	return nil
}

func normalize(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return io.EOF
	}
	return errors.WithStack(err)
}
