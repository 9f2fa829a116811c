// Package archivestore persists downloaded artifact archives and unpacks them.
package archivestore

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const archiveFileMode = 0o644

// Adapter implements ports.ArchiveStorePort on the local filesystem.
type Adapter struct{}

// New creates a new archive store adapter.
func New() *Adapter {
	return &Adapter{}
}

// Write stores data at path through a temp file and rename, so the path
// either keeps its previous content or holds all of data.
func (a *Adapter) Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}
	if err := writeFileAtomic(path, data, archiveFileMode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Extract unpacks the zip archive at archivePath into destDir, creating it
// if needed. Entries that would land outside destDir are rejected.
func (a *Adapter) Extract(archivePath, destDir string) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	//nolint:errcheck // Deferred cleanup, error not actionable
	defer func() { _ = zr.Close() }()

	if len(zr.File) == 0 {
		return errors.New("empty archive")
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("creating extract directory: %w", err)
	}

	for _, f := range zr.File {
		if err := extractEntry(f, destDir); err != nil {
			return err
		}
	}
	return nil
}

//nolint:gosec // G305: Zip extraction with path validation to prevent zip-slip
func extractEntry(f *zip.File, dest string) error {
	target := filepath.Join(dest, f.Name)

	if err := validateExtractPath(target, dest); err != nil {
		return err
	}

	if f.FileInfo().IsDir() {
		return extractDirectory(target)
	}
	return extractRegularFile(target, f)
}

func validateExtractPath(target, dest string) error {
	if !strings.HasPrefix(filepath.Clean(target), filepath.Clean(dest)+string(os.PathSeparator)) {
		return fmt.Errorf("illegal file path in archive: %s", filepath.Base(target))
	}
	return nil
}

//nolint:gosec // G301: Standard directory permissions for extracted archives
func extractDirectory(target string) error {
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return nil
}

//nolint:gosec // G301,G304: Extracting zip with validated paths
func extractRegularFile(target string, f *zip.File) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", f.Name, err)
	}
	//nolint:errcheck // Deferred cleanup, error not actionable
	defer func() { _ = rc.Close() }()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, archiveFileMode)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if _, err := io.Copy(out, rc); err != nil {
		//nolint:errcheck // Best effort cleanup on error path
		_ = out.Close()
		return fmt.Errorf("writing file: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}
