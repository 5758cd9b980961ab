package ai

import (
	"context"
)

// Provider defines the contract for interacting with the AI understanding
// service. The extractor and translator depend on this interface so that
// tests can inject fakes and so other providers can be swapped in later.
type Provider interface {
	// GenerateText sends a text-only prompt and returns the raw model reply.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateFromImage sends a prompt together with image bytes and returns
	// the raw model reply. format is the image subtype ("png", "jpeg").
	GenerateFromImage(ctx context.Context, prompt string, format string, image []byte) (string, error)
}
