package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"kuchikomi/pkg/errors"
)

// AllowedImageTypes is the set of declared media types accepted for
// verification and message image uploads.
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateFileType rejects declared media types outside AllowedImageTypes.
func ValidateFileType(contentType string) error {
	if !AllowedImageTypes[strings.ToLower(contentType)] {
		return errors.Validation(fmt.Sprintf("Unsupported file type: %s. Allowed: jpeg, jpg, png, gif, webp", contentType), nil)
	}
	return nil
}

// ValidateFileSize rejects files over the configured limit.
func ValidateFileSize(size int64, maxSizeMB int64) error {
	if size > maxSizeMB*1024*1024 {
		return errors.Validation(fmt.Sprintf("File size exceeds the %d MB limit", maxSizeMB), nil)
	}
	return nil
}

// GenerateSafeFileName builds a collision-resistant object key:
// {userId}_{unixMillis}_{random6}_{sanitizedBaseName}.{extension}
func GenerateSafeFileName(originalName, userID string) string {
	extension := "jpg"
	nameWithoutExt := originalName
	if idx := strings.LastIndex(originalName, "."); idx >= 0 {
		if idx+1 < len(originalName) {
			extension = strings.ToLower(originalName[idx+1:])
		}
		nameWithoutExt = originalName[:idx]
	}

	safeName := SanitizeFileName(nameWithoutExt)
	timestamp := time.Now().UnixMilli()

	return fmt.Sprintf("%s_%d_%s_%s.%s", userID, timestamp, randomToken(6), safeName, extension)
}

// SanitizeFileName strips non-ASCII characters, replaces the remaining
// special characters (everything but letters, digits, '.' and '-') with
// underscores, collapses runs of underscores, trims leading/trailing
// underscores and lower-cases the result.
func SanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r > 127 {
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	s := b.String()
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	s = strings.Trim(s, "_")

	return strings.ToLower(s)
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomToken(length int) string {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tokenAlphabet))))
		if err != nil {
			b[i] = tokenAlphabet[0]
			continue
		}
		b[i] = tokenAlphabet[n.Int64()]
	}
	return string(b)
}
