package huffman

import (
	"bytes"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// CompressionWriter buffers everything written to it. Encoding needs the
// whole input, so the compressed stream is produced on Close.
type CompressionWriter struct {
	lock  sync.Mutex
	w     io.Writer
	input bytes.Buffer
}

type decompressionCore struct {
	isInputBufferClosed bool
	lock                sync.Mutex
	inputBuffer         *bytes.Buffer
	outputBuffer        *bytes.Buffer
}

type DecompressionWriter struct {
	core *decompressionCore
}

type DecompressionReader struct {
	core *decompressionCore
}

func NewCompressionWriter(writer io.Writer) io.WriteCloser {
	newCW := new(CompressionWriter)
	newCW.w = writer
	return newCW
}

func (cw *CompressionWriter) Write(data []byte) (int, error) {
	cw.lock.Lock()
	defer cw.lock.Unlock()
	return cw.input.Write(data)
}

func (cw *CompressionWriter) Close() error {
	cw.lock.Lock()
	defer cw.lock.Unlock()
	err := Compress(bytes.NewReader(cw.input.Bytes()), cw.w)
	cw.input.Reset()
	return err
}

func NewDecompressionReaderAndWriter() (io.ReadCloser, io.WriteCloser) {
	newDecompressionCore := new(decompressionCore)
	newDecompressionCore.inputBuffer, newDecompressionCore.outputBuffer = new(bytes.Buffer), new(bytes.Buffer)
	newDecompressionReader, newDecompressionWriter := new(DecompressionReader), new(DecompressionWriter)
	newDecompressionReader.core, newDecompressionWriter.core = newDecompressionCore, newDecompressionCore
	return newDecompressionReader, newDecompressionWriter
}

func (dw *DecompressionWriter) Write(data []byte) (int, error) {
	dw.core.lock.Lock()
	defer dw.core.lock.Unlock()
	if dw.core.isInputBufferClosed {
		return 0, errors.New("write to a closed decompression writer")
	}
	return dw.core.inputBuffer.Write(data)
}

// Close decodes the buffered input. Nothing is readable when decoding fails.
func (dw *DecompressionWriter) Close() error {
	dw.core.lock.Lock()
	defer dw.core.lock.Unlock()
	dw.core.isInputBufferClosed = true
	var decoded bytes.Buffer
	if err := Decompress(dw.core.inputBuffer, &decoded); err != nil {
		return err
	}
	_, err := dw.core.outputBuffer.Write(decoded.Bytes())
	return err
}

func (dr *DecompressionReader) Read(data []byte) (int, error) {
	dr.core.lock.Lock()
	defer dr.core.lock.Unlock()
	if !dr.core.isInputBufferClosed {
		return 0, errors.New("input buffer not closed")
	}
	return dr.core.outputBuffer.Read(data)
}

func (dr *DecompressionReader) Close() error {
	dr.core.lock.Lock()
	defer dr.core.lock.Unlock()
	dr.core.inputBuffer.Reset()
	dr.core.outputBuffer.Reset()
	return nil
}
