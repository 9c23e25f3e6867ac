package validation

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 32)...)

func TestValidateFileAcceptsPNG(t *testing.T) {
	r := bytes.NewReader(pngBytes)
	err := ValidateFile("photo.png", "image/png", int64(len(pngBytes)), r, ImageConstraints)
	require.NoError(t, err)

	// The reader must be rewound for the upload that follows.
	pos, err := r.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Zero(t, pos)
}

func TestValidateFileAcceptsPDF(t *testing.T) {
	content := []byte("%PDF-1.4\nsome content")
	err := ValidateFile("cv.pdf", "application/pdf", int64(len(content)), bytes.NewReader(content), DocumentConstraints)
	assert.NoError(t, err)
}

func TestValidateFileRejectsOversized(t *testing.T) {
	err := ValidateFile("big.png", "image/png", 12<<20, bytes.NewReader(pngBytes), ImageConstraints)
	assert.ErrorIs(t, err, ErrFileInvalid)
}

func TestValidateFileRejectsDeclaredType(t *testing.T) {
	err := ValidateFile("notes.txt", "text/plain", 10, strings.NewReader("hello"), DocumentConstraints)
	assert.ErrorIs(t, err, ErrFileInvalid)
}

func TestValidateFileRejectsSpoofedContent(t *testing.T) {
	// Declared and named as PNG, but the content is plain text.
	err := ValidateFile("fake.png", "image/png", 10, strings.NewReader("plain text"), ImageConstraints)
	assert.ErrorIs(t, err, ErrFileInvalid)
}

func TestValidateFileRejectsWrongExtension(t *testing.T) {
	err := ValidateFile("photo.bmp", "image/png", int64(len(pngBytes)), bytes.NewReader(pngBytes), ImageConstraints)
	assert.ErrorIs(t, err, ErrFileInvalid)
}

func TestValidateFileAllowsEmptyDeclaredType(t *testing.T) {
	// Some clients omit the part Content-Type header, detection still runs.
	err := ValidateFile("photo.png", "", int64(len(pngBytes)), bytes.NewReader(pngBytes), ImageConstraints)
	assert.NoError(t, err)
}
