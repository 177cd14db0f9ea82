package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/FitrahHaque/Huffman-Engine/compressor/huffman"
	"github.com/cespare/xxhash/v2"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

var Engines = [...]string{
	"huffman",
}

var (
	info    = color.New(color.FgCyan)
	success = color.New(color.FgGreen)
)

type compressor struct {
	compressionEngine   string
	compressedContent   []byte
	decompressedContent []byte
}

var writers = map[string]func(io.Writer) io.WriteCloser{
	"huffman": huffman.NewCompressionWriter,
}

var readers = map[string]func() (io.ReadCloser, io.WriteCloser){
	"huffman": huffman.NewDecompressionReaderAndWriter,
}

// streams compress and decompress whole files without loading them.
var streams = map[string]struct {
	compress   func(io.ReadSeeker, io.Writer) error
	decompress func(io.Reader, io.Writer) error
}{
	"huffman": {huffman.Compress, huffman.Decompress},
}

func validate(algorithm string) error {
	if !slices.Contains(Engines[:], algorithm) {
		return errors.Errorf("unknown algorithm %q, choices include: %s", algorithm, strings.Join(Engines[:], ", "))
	}
	return nil
}

func (c *compressor) write(content []byte) (int, error) {
	var b bytes.Buffer
	w := writers[c.compressionEngine](&b)
	if _, err := w.Write(content); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, errors.Wrapf(err, "%s compression", c.compressionEngine)
	}
	c.compressedContent = b.Bytes()
	return len(c.compressedContent), nil
}

func (c *compressor) read() (int, error) {
	r, w := readers[c.compressionEngine]()
	defer r.Close()
	if _, err := w.Write(c.compressedContent); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, errors.Wrapf(err, "%s decompression", c.compressionEngine)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	c.decompressedContent = content
	return len(content), nil
}

func CompressFiles(algorithm string, files []string, fileExtension string) error {
	if err := validate(algorithm); err != nil {
		return err
	}
	for _, file := range files {
		if err := compressFile(algorithm, file, file+"."+fileExtension); err != nil {
			return errors.Wrapf(err, "compress %s", file)
		}
	}
	return nil
}

func compressFile(algorithm string, filePath string, outputFileName string) error {
	in, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer in.Close()
	stat, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.Create(outputFileName)
	if err != nil {
		return err
	}
	defer out.Close()

	info.Println("Compressing...")
	// both passes are reported on one bar
	bar := newProgressBar(2 * stat.Size())
	err = streams[algorithm].compress(&progressReader{ReadSeeker: in, bar: bar}, out)
	bar.Finish()
	if err != nil {
		os.Remove(outputFileName)
		return err
	}
	compressedStat, err := out.Stat()
	if err != nil {
		return err
	}
	report(stat.Size(), compressedStat.Size())
	return nil
}

func DecompressFiles(algorithm string, files []string, fileExtension string) error {
	if err := validate(algorithm); err != nil {
		return err
	}
	for _, file := range files {
		if err := decompressFile(algorithm, file, decompressedName(file, fileExtension)); err != nil {
			return errors.Wrapf(err, "decompress %s", file)
		}
	}
	return nil
}

func decompressedName(file string, fileExtension string) string {
	if trimmed, ok := strings.CutSuffix(file, "."+fileExtension); ok && trimmed != "" {
		return trimmed
	}
	return file + ".out"
}

func decompressFile(algorithm string, filePath string, outputFileName string) error {
	in, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer in.Close()
	stat, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.Create(outputFileName)
	if err != nil {
		return err
	}
	defer out.Close()

	info.Println("Decompressing...")
	bar := newProgressBar(stat.Size())
	err = streams[algorithm].decompress(&progressReader{ReadSeeker: in, bar: bar}, out)
	bar.Finish()
	if err != nil {
		os.Remove(outputFileName)
		return err
	}
	success.Printf("Decompressed %s into %s\n", filePath, outputFileName)
	return nil
}

func BenchmarkFiles(algorithm string, files []string) error {
	if err := validate(algorithm); err != nil {
		return err
	}
	for _, file := range files {
		if _, err := benchmarkFile(algorithm, file); err != nil {
			return errors.Wrapf(err, "benchmark %s", file)
		}
	}
	return nil
}

type benchmarkResult struct {
	originalSize, compressedSize   int
	compressTime, decompressTime   time.Duration
	originalDigest, restoredDigest uint64
}

// benchmarkFile runs a full in-memory round trip and compares digests of the
// original and restored content.
func benchmarkFile(algorithm string, filePath string) (benchmarkResult, error) {
	var result benchmarkResult
	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		return result, err
	}
	file := compressor{
		compressionEngine: algorithm,
	}
	start := time.Now()
	if _, err := file.write(fileContent); err != nil {
		return result, err
	}
	result.compressTime = time.Since(start)
	start = time.Now()
	if _, err := file.read(); err != nil {
		return result, err
	}
	result.decompressTime = time.Since(start)

	result.originalSize, result.compressedSize = len(fileContent), len(file.compressedContent)
	result.originalDigest = xxhash.Sum64(fileContent)
	result.restoredDigest = xxhash.Sum64(file.decompressedContent)
	if result.originalDigest != result.restoredDigest {
		return result, errors.Errorf("round trip mismatch: digest %016x, restored %016x", result.originalDigest, result.restoredDigest)
	}

	info.Printf("Benchmark %s (%s)\n", filePath, algorithm)
	report(int64(result.originalSize), int64(result.compressedSize))
	fmt.Printf("Compression time: %v\n", result.compressTime)
	fmt.Printf("Decompression time: %v\n", result.decompressTime)
	success.Printf("Round trip verified, xxhash %016x\n", result.originalDigest)
	return result, nil
}

func report(originalSize, compressedSize int64) {
	fmt.Printf("Original size (in bytes): %v\n", originalSize)
	fmt.Printf("Compressed size (in bytes): %v\n", compressedSize)
	if originalSize > 0 {
		fmt.Printf("Compression ratio: %.2f%%\n", float32(compressedSize)/float32(originalSize)*100)
	}
}
