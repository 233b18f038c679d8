// Package saveloader reads save images from plain files and compressed
// archives (ZIP, 7z, gzip, tar.gz, RAR).
package saveloader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Flash saves are 128 KiB, anything past 1 MiB is not a save
const maxSaveSize = 1024 * 1024

// Extensions are the file names accepted as save images, raw or inside archives
var Extensions = []string{".sav", ".srm", ".fla", ".bin"}

var (
	ErrNoSaveFile        = errors.New("no save file found in archive")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrFileTooLarge      = errors.New("file exceeds maximum size limit")
)

type formatType int

const (
	formatUnknown formatType = iota
	formatRaw
	formatZIP
	format7z
	formatGzip
	formatRAR
)

// Load reads a save image from path. Archives are detected by content and
// the first member with a save extension is returned together with its
// base name.
func Load(path string) ([]byte, string, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to detect format: %w", err)
	}

	switch detectFormat(mime.Extension(), path) {
	case formatRaw:
		f, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()

		data, err := limitedRead(f)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read save: %w", err)
		}
		return data, filepath.Base(path), nil

	case formatZIP:
		return extractFromZIP(path)

	case format7z:
		return extractFrom7z(path)

	case formatGzip:
		return extractFromGzip(path)

	case formatRAR:
		return extractFromRAR(path)

	default:
		return nil, "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, path, mime.String())
	}
}

// detectFormat prefers the detected content type and falls back to the
// file extension.
func detectFormat(mimeExt string, path string) formatType {
	switch mimeExt {
	case ".zip":
		return formatZIP
	case ".7z":
		return format7z
	case ".gz":
		return formatGzip
	case ".rar":
		return formatRAR
	}

	if isSaveFile(path) {
		return formatRaw
	}

	return formatUnknown
}

// isSaveFile checks if a filename has one of the save extensions (case-insensitive)
func isSaveFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// limitedRead reads from r up to maxSaveSize bytes, returning an error if exceeded
func limitedRead(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSaveSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxSaveSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
