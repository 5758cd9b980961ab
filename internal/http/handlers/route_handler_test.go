// README: Tests for the text, upload and camera route handlers.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	akhttp "akshar/internal/http"
	"akshar/internal/route"
)

// stubPipeline is a test double for the extract->lookup pipeline.
type stubPipeline struct {
	result route.Result
	err    error
	lastIn route.RawInput
}

func (s *stubPipeline) Process(_ context.Context, in route.RawInput) (route.Result, error) {
	s.lastIn = in
	return s.result, s.err
}

type stubTranslator struct {
	reply string
	err   error
	calls int
}

func (s *stubTranslator) Translate(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func buildRouter(p *stubPipeline, tr *stubTranslator) http.Handler {
	gin.SetMode(gin.TestMode)
	return akhttp.NewRouter(akhttp.RouterDeps{
		Pipeline:   p,
		Translator: tr,
		Routes:     &stubWaypoints{},
		Places:     &stubPlaces{},
		Timeout:    5 * time.Second,
	})
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleResult() route.Result {
	return route.Result{
		Origin:      "Pune",
		Destination: "Mumbai",
		Mode:        route.ModeDriving,
		Distance:    "148.0 km",
		Duration:    "2 hours 30 minutes",
		Steps:       []route.Step{{Instruction: "Head north", Distance: "500 m"}},
	}
}

func TestFromText_Success(t *testing.T) {
	p := &stubPipeline{result: sampleResult()}
	r := buildRouter(p, &stubTranslator{})

	w := postJSON(r, "/api/routes/text", map[string]any{"query": "Pune to Mumbai by car"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if p.lastIn.Text != "Pune to Mumbai by car" {
		t.Errorf("pipeline got text %q", p.lastIn.Text)
	}

	var resp struct {
		Result     route.Result `json:"result"`
		Directions string       `json:"directions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Result.Origin != "Pune" || resp.Result.Destination != "Mumbai" {
		t.Errorf("unexpected result %+v", resp.Result)
	}
	if !strings.Contains(resp.Directions, "Route from Pune to Mumbai") {
		t.Errorf("directions missing header: %q", resp.Directions)
	}
}

func TestFromText_Translated(t *testing.T) {
	p := &stubPipeline{result: sampleResult()}
	tr := &stubTranslator{reply: "पुणे से मुंबई"}
	r := buildRouter(p, tr)

	w := postJSON(r, "/api/routes/text", map[string]any{
		"query":    "Pune to Mumbai by car",
		"language": "Hindi",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if tr.calls != 1 {
		t.Fatalf("expected 1 translate call, got %d", tr.calls)
	}

	var resp struct {
		Language             string `json:"language"`
		TranslatedDirections string `json:"translated_directions"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Language != "Hindi" || resp.TranslatedDirections != "पुणे से मुंबई" {
		t.Errorf("unexpected translation fields: %+v", resp)
	}
}

// A failed translation still returns the English directions.
func TestFromText_TranslationFailureDegrades(t *testing.T) {
	p := &stubPipeline{result: sampleResult()}
	tr := &stubTranslator{err: errors.New("model offline")}
	r := buildRouter(p, tr)

	w := postJSON(r, "/api/routes/text", map[string]any{
		"query":    "Pune to Mumbai by car",
		"language": "Hindi",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Directions           string `json:"directions"`
		TranslatedDirections string `json:"translated_directions"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Directions == "" {
		t.Error("expected English directions")
	}
	if resp.TranslatedDirections != "" {
		t.Errorf("expected no translation, got %q", resp.TranslatedDirections)
	}
}

// English requests never hit the translator.
func TestFromText_EnglishSkipsTranslator(t *testing.T) {
	tr := &stubTranslator{}
	r := buildRouter(&stubPipeline{result: sampleResult()}, tr)

	w := postJSON(r, "/api/routes/text", map[string]any{
		"query":    "Pune to Mumbai",
		"language": "English",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if tr.calls != 0 {
		t.Errorf("expected 0 translate calls, got %d", tr.calls)
	}
}

func TestFromText_MissingQuery(t *testing.T) {
	r := buildRouter(&stubPipeline{}, &stubTranslator{})
	w := postJSON(r, "/api/routes/text", map[string]any{"query": "   "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestFromText_InvalidJSON(t *testing.T) {
	r := buildRouter(&stubPipeline{}, &stubTranslator{})
	req := httptest.NewRequest(http.MethodPost, "/api/routes/text", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestFromText_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", route.ErrInvalidInput, http.StatusBadRequest},
		{"invalid mode", route.ErrInvalidMode, http.StatusBadRequest},
		{"extraction failed", route.ErrExtractionFailed, http.StatusUnprocessableEntity},
		{"route not found", route.ErrRouteNotFound, http.StatusNotFound},
		{"service unavailable", route.ErrServiceUnavailable, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := buildRouter(&stubPipeline{err: tt.err}, &stubTranslator{})
			w := postJSON(r, "/api/routes/text", map[string]any{"query": "a to b"})
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
			var resp struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.Error == "" {
				t.Error("expected an error message")
			}
			if resp.Error == "boom" {
				t.Error("internal error text leaked to client")
			}
		})
	}
}

func postImage(r http.Handler, path, filename string, data []byte, language string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("image", filename)
	_, _ = fw.Write(data)
	if language != "" {
		_ = mw.WriteField("language", language)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFromUpload_Success(t *testing.T) {
	p := &stubPipeline{result: sampleResult()}
	r := buildRouter(p, &stubTranslator{})

	w := postImage(r, "/api/routes/image", "sign.jpg", []byte{0xff, 0xd8, 0xff}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !p.lastIn.IsImage() {
		t.Fatal("pipeline did not receive an image input")
	}
	if p.lastIn.ImageFormat != "jpeg" {
		t.Errorf("expected jpeg format, got %q", p.lastIn.ImageFormat)
	}
	if len(p.lastIn.Image) != 3 {
		t.Errorf("expected 3 image bytes, got %d", len(p.lastIn.Image))
	}
}

func TestFromCamera_Success(t *testing.T) {
	p := &stubPipeline{result: sampleResult()}
	r := buildRouter(p, &stubTranslator{})

	w := postImage(r, "/api/routes/camera", "frame.png", []byte{0x89, 0x50}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if p.lastIn.ImageFormat != "png" {
		t.Errorf("expected png format, got %q", p.lastIn.ImageFormat)
	}
}

func TestFromUpload_MissingImage(t *testing.T) {
	r := buildRouter(&stubPipeline{}, &stubTranslator{})
	req := httptest.NewRequest(http.MethodPost, "/api/routes/image", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	r := buildRouter(&stubPipeline{result: sampleResult()}, &stubTranslator{})
	w := postJSON(r, "/api/routes/text", map[string]any{"query": "a to b"})
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header on response")
	}
}
