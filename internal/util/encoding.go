// Package util holds small helpers shared across handlers and services.
package util

import (
	"encoding/base64"
	"fmt"
)

// MaxImageSize is the largest decoded size accepted for icons, profile
// images and post pictures (1 MiB).
const MaxImageSize = 1 << 20

// ErrImageTooLarge is returned when a decoded image exceeds MaxImageSize.
var ErrImageTooLarge = fmt.Errorf("image exceeds %d bytes", MaxImageSize)

// DecodeImage decodes a base64 image payload, enforcing the size cap on the
// decoded bytes. An empty input yields nil bytes and no error.
func DecodeImage(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, ErrImageTooLarge
	}
	return data, nil
}

// EncodeImage encodes binary image bytes for transfer. Nil or empty bytes
// yield the empty string, which marshals as an absent image.
func EncodeImage(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}
