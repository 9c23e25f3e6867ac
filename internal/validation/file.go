package validation

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// ErrFileInvalid is the sentinel for every file validation failure. Wrap
// checks via errors.Is map these to HTTP 400 at the boundary.
var ErrFileInvalid = errors.New("invalid file")

// MaxFileSize is the upload size ceiling for every slot.
const MaxFileSize = 10 << 20 // 10 MiB

// FileConstraints defines validation rules for file uploads
type FileConstraints struct {
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

var (
	// ImageConstraints defines validation rules for image uploads
	ImageConstraints = FileConstraints{
		AllowedMimeTypes: map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/webp": true,
			"image/gif":  true,
		},
		AllowedExtensions: map[string]bool{
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".webp": true,
			".gif":  true,
		},
		MaxSize: MaxFileSize,
	}

	// DocumentConstraints defines validation rules for PDF uploads
	DocumentConstraints = FileConstraints{
		AllowedMimeTypes: map[string]bool{
			"application/pdf": true,
		},
		AllowedExtensions: map[string]bool{
			".pdf": true,
		},
		MaxSize: MaxFileSize,
	}
)

// ValidateFile validates an upload against a constraint set before any
// storage call is made. The declared content type, the content type
// detected from magic numbers, and the file extension must all pass.
func ValidateFile(filename, declaredType string, size int64, file io.ReadSeeker, constraints FileConstraints) error {
	// Check file size first (before reading content)
	if size > constraints.MaxSize {
		maxMB := constraints.MaxSize / (1 << 20)
		return fmt.Errorf("%w: file too large, maximum size is %d MB", ErrFileInvalid, maxMB)
	}

	if declaredType != "" && !constraints.AllowedMimeTypes[declaredType] {
		return fmt.Errorf("%w: content type %s not allowed", ErrFileInvalid, declaredType)
	}

	// Read first 512 bytes for magic number detection.
	// http.DetectContentType reads max 512 bytes to determine MIME type.
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// Reset file pointer to beginning for the upload that follows
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return fmt.Errorf("failed to reset file pointer: %w", err)
	}

	// Detect actual content type from file content (magic numbers).
	// This cannot be faked by just changing the Content-Type header.
	detectedType := http.DetectContentType(buffer[:n])
	detectedType, _, _ = strings.Cut(detectedType, ";")
	if !constraints.AllowedMimeTypes[detectedType] {
		return fmt.Errorf("%w: invalid file type (detected: %s)", ErrFileInvalid, detectedType)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !constraints.AllowedExtensions[ext] {
		return fmt.Errorf("%w: invalid file extension: %s", ErrFileInvalid, ext)
	}

	return nil
}
