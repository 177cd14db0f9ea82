package engine

import (
	"io"
	"os"

	pb "github.com/cheggaaa/pb/v3"
)

var progressOutput io.Writer = os.Stderr

func newProgressBar(total int64) *pb.ProgressBar {
	bar := pb.New64(total)
	bar.Set(pb.Bytes, true)
	bar.SetWriter(progressOutput)
	bar.Start()
	return bar
}

// progressReader counts bytes read on the bar and keeps the underlying
// stream seekable, so two-pass compression can rewind through it.
type progressReader struct {
	io.ReadSeeker
	bar *pb.ProgressBar
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.ReadSeeker.Read(p)
	pr.bar.Add(n)
	return n, err
}
