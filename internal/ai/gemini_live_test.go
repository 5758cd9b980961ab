// README: Live Gemini test; skipped unless GEMINI_API_KEY is set.
package ai

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
)

// TestGeminiProviderLive exercises the real Gemini API in JSON mode. It is a
// smoke check for credentials and the response MIME setting, not a unit test.
func TestGeminiProviderLive(t *testing.T) {
	_ = godotenv.Load("../../.env")
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set; skipping live test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	provider, err := NewGeminiProvider(ctx, apiKey, "gemini-2.0-flash")
	if err != nil {
		t.Fatalf("init provider: %v", err)
	}
	defer provider.Close()

	reply, err := provider.GenerateText(ctx, `Reply with exactly this JSON object: {"ok": true}`)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var parsed struct {
		OK bool `json:"ok"`
	}
	if err := json.Unmarshal([]byte(CleanResponse(reply)), &parsed); err != nil {
		t.Fatalf("reply is not JSON: %v (reply %q)", err, reply)
	}
	if !parsed.OK {
		t.Errorf("unexpected reply %q", reply)
	}
}
