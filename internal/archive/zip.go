// Package archive builds and extracts ZIP archives of generated project
// trees.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/quarry-cpp/quarry/internal/engine"
	qerrors "github.com/quarry-cpp/quarry/internal/errors"
	"github.com/quarry-cpp/quarry/internal/output"
)

// Build packs an artifact set into an in-memory ZIP. When prefix is
// non-empty every entry is placed under that top-level directory; an empty
// prefix produces a flat archive.
func Build(artifacts engine.ArtifactSet, prefix string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, artifact := range artifacts {
		name := artifact.Path
		if prefix != "" {
			name = prefix + "/" + name
		}

		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("creating zip entry %s: %w", name, err)
		}
		if _, err := io.WriteString(w, artifact.Content); err != nil {
			return nil, fmt.Errorf("writing zip entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing zip: %w", err)
	}
	return buf.Bytes(), nil
}

// Extract unpacks a ZIP archive under outputDir. Any entry that would
// resolve outside outputDir fails the whole extraction; entries already
// written stay on disk.
func Extract(data []byte, outputDir string) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("opening zip: %w", err)
	}

	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}

	for _, file := range zr.File {
		if filepath.IsAbs(file.Name) || strings.HasPrefix(file.Name, "/") {
			return qerrors.NewUnsafePathError(file.Name, file.Name)
		}
		target := filepath.Join(absOut, filepath.FromSlash(file.Name))

		absTarget, err := filepath.Abs(target)
		if err != nil {
			return fmt.Errorf("resolving entry %s: %w", file.Name, err)
		}
		if absTarget != absOut && !strings.HasPrefix(absTarget, absOut+string(os.PathSeparator)) {
			return qerrors.NewUnsafePathError(file.Name, absTarget)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(absTarget, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", file.Name, err)
			}
			continue
		}

		if err := extractFile(file, absTarget); err != nil {
			return err
		}
		output.Debug("extracted", "entry", file.Name)
	}

	return nil
}

func extractFile(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", file.Name, err)
	}

	rc, err := file.Open()
	if err != nil {
		return fmt.Errorf("opening zip entry %s: %w", file.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating file for %s: %w", file.Name, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("writing file for %s: %w", file.Name, err)
	}
	return nil
}
