package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"kuchikomi/pkg/errors"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain ascii", "receipt", "receipt"},
		{"uppercase lowered", "MyReceipt", "myreceipt"},
		{"non-ascii stripped", "レシート-photo", "-photo"},
		{"special chars replaced", "my receipt (1)", "my_receipt_1"},
		{"underscores collapsed", "a___b", "a_b"},
		{"edges trimmed", "__photo__", "photo"},
		{"dots and dashes kept", "img.2024-01", "img.2024-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFileName(tt.input))
		})
	}
}

func TestGenerateSafeFileName(t *testing.T) {
	name := GenerateSafeFileName("My Receipt.PNG", "user-1")

	assert.True(t, strings.HasPrefix(name, "user-1_"))
	assert.True(t, strings.HasSuffix(name, "_my_receipt.png"))

	// userId, millis, token, sanitized base
	parts := strings.Split(name, "_")
	assert.GreaterOrEqual(t, len(parts), 4)
	assert.Len(t, parts[2], 6)
}

func TestGenerateSafeFileNameWithoutExtension(t *testing.T) {
	name := GenerateSafeFileName("receipt", "u1")
	assert.True(t, strings.HasSuffix(name, ".jpg"))
}

func TestValidateFileType(t *testing.T) {
	assert.NoError(t, ValidateFileType("image/jpeg"))
	assert.NoError(t, ValidateFileType("image/webp"))
	assert.NoError(t, ValidateFileType("IMAGE/PNG"))

	err := ValidateFileType("image/bmp")
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	assert.True(t, errors.Is(ValidateFileType("application/pdf"), "VALIDATION_ERROR"))
}

func TestValidateFileSize(t *testing.T) {
	assert.NoError(t, ValidateFileSize(5*1024*1024, 5))
	assert.True(t, errors.Is(ValidateFileSize(6*1024*1024, 5), "VALIDATION_ERROR"))
}
