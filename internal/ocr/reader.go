// README: Local Tesseract OCR fallback for images the AI cannot read.
package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// routeKeywords hint that a block of recognized text is a route request.
var routeKeywords = []string{
	"from", "to", "directions", "route", "how to get",
	"navigate", "travel", "go from", "way to", "path",
}

// Reader recognizes printed text in images using a local Tesseract install.
// A fresh client is created per call; the gosseract client is not safe for
// concurrent use.
type Reader struct {
	clientFactory func() *gosseract.Client
}

// NewReader constructs a Tesseract-backed Reader.
func NewReader() *Reader {
	return &Reader{clientFactory: gosseract.NewClient}
}

// ExtractText runs OCR over the image bytes and returns the recognized text.
func (r *Reader) ExtractText(ctx context.Context, image []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	c := r.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("ocr: set image: %w", err)
	}
	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: recognize text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// LooksLikeRouteRequest reports whether the recognized text plausibly
// contains a route request.
func (r *Reader) LooksLikeRouteRequest(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range routeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
