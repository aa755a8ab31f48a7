// Package snapshot backs the JSON data directory up to S3-compatible
// object storage as zstd-compressed tar archives. A conditional-write
// leader lock keeps concurrent instances from uploading over each
// other, and restore rebuilds an empty data directory from the latest
// archive at startup.
package snapshot

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// WriteArchive streams the data directory as a zstd-compressed tar to
// w. Only regular .json documents are archived; temp files from
// in-flight atomic writes are skipped. Each document is written with an
// atomic rename, so every archived file is internally consistent even
// while the store is live.
func WriteArchive(dir string, w io.Writer) (int64, error) {
	counting := &countingWriter{w: w}
	encoder, err := zstd.NewWriter(counting, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return 0, fmt.Errorf("snapshot: create encoder: %w", err)
	}

	tw := tar.NewWriter(encoder)

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".json") {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		return addFile(tw, path, filepath.ToSlash(rel))
	})
	if walkErr != nil {
		_ = tw.Close()
		_ = encoder.Close()
		return 0, fmt.Errorf("snapshot: walk data dir: %w", walkErr)
	}

	if err := tw.Close(); err != nil {
		_ = encoder.Close()
		return 0, fmt.Errorf("snapshot: close tar: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return 0, fmt.Errorf("snapshot: close encoder: %w", err)
	}
	return counting.n, nil
}

func addFile(tw *tar.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		// The store may rename documents while we walk; a vanished
		// file is not an error.
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = name

	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err = io.Copy(tw, f)
	return err
}

// ExtractArchive unpacks a zstd-compressed tar produced by WriteArchive
// into dir. Entries that would escape dir are rejected.
func ExtractArchive(r io.Reader, dir string) error {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("snapshot: create decoder: %w", err)
	}
	defer decoder.Close()

	tr := tar.NewReader(decoder)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("snapshot: read tar: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		target := filepath.Join(dir, filepath.FromSlash(hdr.Name))
		rel, err := filepath.Rel(dir, target)
		if err != nil || strings.HasPrefix(rel, "..") {
			return fmt.Errorf("snapshot: archive entry %q escapes data dir", hdr.Name)
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("snapshot: create dir for %q: %w", hdr.Name, err)
		}
		if err := writeFile(target, tr); err != nil {
			return fmt.Errorf("snapshot: extract %q: %w", hdr.Name, err)
		}
	}
}

func writeFile(target string, r io.Reader) error {
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// countingWriter counts the compressed bytes for the size gauge.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
