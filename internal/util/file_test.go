package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMimeTypeSniffsContent(t *testing.T) {
	mt, err := ValidateMimeType(strings.NewReader("%PDF-1.4 content"), AllowedResumeMimeTypes)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mt)

	// docx is a zip container
	docx := append([]byte("PK\x03\x04"), make([]byte, 32)...)
	mt, err = ValidateMimeType(bytes.NewReader(docx), AllowedResumeMimeTypes)
	require.NoError(t, err)
	assert.Equal(t, "application/zip", mt)

	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 16)...)
	mt, err = ValidateMimeType(bytes.NewReader(png), AllowedImageMimeTypes)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mt)
}

func TestValidateMimeTypeRejectsMismatch(t *testing.T) {
	_, err := ValidateMimeType(strings.NewReader("just some text"), AllowedImageMimeTypes)
	assert.Error(t, err)

	_, err = ValidateMimeType(bytes.NewReader([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}), []string{MimePDF})
	assert.Error(t, err)
}

func TestHasAllowedExtension(t *testing.T) {
	assert.True(t, HasAllowedExtension("Resume.PDF", AllowedResumeExtensions))
	assert.False(t, HasAllowedExtension("resume.exe", AllowedResumeExtensions))
	assert.False(t, HasAllowedExtension("resume", AllowedResumeExtensions))
}
