package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// xzFile closes the compressor before the file.
type xzFile struct {
	*xz.Writer
	f *os.File
}

func (x *xzFile) Close() error {
	if err := x.Writer.Close(); err != nil {
		x.f.Close()
		return fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return x.f.Close()
}

// openOutput returns stdout for an empty path, and otherwise creates the
// file. A .xz suffix compresses the output.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".xz") {
		return f, nil
	}
	zw, err := xz.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create xz writer: %w", err)
	}
	return &xzFile{Writer: zw, f: f}, nil
}
